// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置与资源、组装游戏会话，
// 并实现 ebiten.Game 接口驱动场景。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/saloon/pkg/config"
	"github.com/decker502/saloon/pkg/game"
	"github.com/decker502/saloon/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Windowed 以窗口模式启动（默认全屏）
	Windowed bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	session                  *game.GameSession
	audioManager             *game.AudioManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 注册资源文件系统。
// 武器目录或场景配置无效时返回 *game.ConfigurationError，游戏不会启动。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载并校验玩法配置（失败即终止启动）
	arsenal, err := config.LoadArsenalConfig(config.ArsenalConfigPath)
	if err != nil {
		return nil, &game.ConfigurationError{Subject: config.ArsenalConfigPath, Err: err}
	}
	layout, err := config.LoadSaloonConfig(config.SaloonConfigPath)
	if err != nil {
		return nil, &game.ConfigurationError{Subject: config.SaloonConfigPath, Err: err}
	}

	catalog, err := game.NewWeaponCatalog(arsenal)
	if err != nil {
		return nil, err
	}
	armory, err := game.NewArmory(catalog, layout.DefaultWeapon)
	if err != nil {
		return nil, err
	}
	saloon, err := game.NewSaloon(layout)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] Arsenal: %d weapons, %d ammo types", len(catalog.WeaponNames()), len(catalog.AmmoIDs()))

	// 初始化音频上下文
	audioContext := audio.NewContext(config.AudioSampleRate)

	// 创建资源管理器并加载资源（缺失的文件以占位图形代替）
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(config.ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if err := resourceManager.LoadResourceGroup("init"); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	// 设置只在内存中保存
	settings := game.DefaultSettings()
	settings.Fullscreen = !cfg.Windowed
	settingsManager := game.NewSettingsManager(settings)

	audioManager := game.NewAudioManager(audioContext, resourceManager, settingsManager)
	audioManager.StartMusic()
	log.Printf("[App] AudioManager initialized")

	session := game.NewGameSession(
		catalog,
		armory,
		saloon,
		game.NewHitResolver(game.NewTimeSeededRandom()),
		audioManager,
		nil, // 菜单边界由场景按字体尺寸设置
	)

	saloonScene, err := scenes.NewSaloonScene(resourceManager, session, nil)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(saloonScene)

	return &App{
		sceneManager:    sceneManager,
		session:         session,
		audioManager:    audioManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Fullscreen 返回启动时是否应进入全屏
func (a *App) Fullscreen() bool {
	return a.settingsManager.GetSettings().Fullscreen
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
// 会话结束后返回 ebiten.Termination 正常退出游戏循环
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(config.TargetFPS)
	a.sceneManager.Update(deltaTime)

	if a.sceneManager.Finished() {
		log.Printf("[App] Session %s finished, exiting", a.session.ID())
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Session 返回游戏会话
func (a *App) Session() *game.GameSession {
	return a.session
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// IsConfigurationError 报告启动失败是否由配置数据引起
func IsConfigurationError(err error) bool {
	var cfgErr *game.ConfigurationError
	return errors.As(err, &cfgErr)
}

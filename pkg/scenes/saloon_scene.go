package scenes

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/decker502/saloon/pkg/config"
	"github.com/decker502/saloon/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 图片与字体资源ID（见 data/resources.yaml）
const (
	ImagePauseSign       = "IMAGE_PAUSE_SIGN"
	ImageBulletHole      = "IMAGE_BULLET_HOLE"
	ImageCursorHand      = "IMAGE_CURSOR_HAND"
	ImageCursorCrosshair = "IMAGE_CURSOR_CROSSHAIR"
	FontMenu             = "FONT_MENU"
)

// 界面布局
const (
	hudFontSize    = 20.0
	hudMarginX     = 16
	hudMarginY     = 12
	hudLineSpacing = 26
	decalRadius    = 5
	cursorSize     = 12
)

var (
	colorBackdrop    = color.RGBA{R: 92, G: 58, B: 32, A: 255}  // 背景缺失时的木色
	colorProp        = color.RGBA{R: 220, G: 40, B: 40, A: 255} // 道具轮廓
	colorBulletproof = color.RGBA{R: 120, G: 150, B: 200, A: 255}
	colorDecal       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colorMenuDim     = color.RGBA{A: 180}
	colorMenuText    = color.RGBA{R: 240, G: 230, B: 200, A: 255}
	colorMenuFocus   = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	colorHUD         = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorCursor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// SaloonScene 酒馆射击场景
//
// 每帧把 ebiten 输入转换为离散事件交给 GameSession.Step，
// 然后按顺序执行返回的绘制指令。场景本身不持有任何玩法状态。
type SaloonScene struct {
	session         *game.GameSession
	resourceManager *game.ResourceManager
	events          eventCollector

	menuFont *text.GoTextFace
	hudFont  *text.GoTextFace

	commands []game.RenderCommand
}

// NewSaloonScene 创建酒馆场景
//
// 参数：
//   - rm: 资源管理器（背景、弹孔、光标图片与字体）
//   - session: 游戏会话
//   - input: 输入来源，为 nil 时读取 ebiten 输入
//
// 返回：
//   - *SaloonScene: 场景实例
//   - error: 字体加载失败时返回错误
func NewSaloonScene(rm *game.ResourceManager, session *game.GameSession, input InputSource) (*SaloonScene, error) {
	if input == nil {
		input = ebitenInput{}
	}

	menuFont, err := rm.GetFontByID(FontMenu, config.MenuFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu font: %w", err)
	}
	hudFont, err := rm.GetFontByID(FontMenu, hudFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}

	s := &SaloonScene{
		session:         session,
		resourceManager: rm,
		events:          eventCollector{input: input},
		menuFont:        menuFont,
		hudFont:         hudFont,
	}
	session.Menu().SetLayout(s.menuLayout())
	s.commands = session.Step(nil)

	log.Printf("[SaloonScene] Created for session %s", session.ID())
	return s, nil
}

// menuLayout 按菜单字体的实际尺寸计算菜单项边界
func (s *SaloonScene) menuLayout() game.RowMenuLayout {
	labels := game.MenuLabels()
	layout := game.RowMenuLayout{
		CenterX:   config.GameWindowWidth / 2,
		TopY:      config.MenuTopY,
		RowHeight: config.MenuOptionHeight,
		Widths:    make([]int, len(labels)),
	}
	for i, label := range labels {
		w, h := text.Measure(label, s.menuFont, 0)
		layout.Widths[i] = int(w)
		layout.TextHeight = max(layout.TextHeight, int(h))
	}
	return layout
}

// Update 处理本帧输入
func (s *SaloonScene) Update(deltaTime float64) {
	if s.session.Terminated() {
		return
	}
	s.commands = s.session.Step(s.events.collect())
}

// Finished 会话结束后返回 true
func (s *SaloonScene) Finished() bool {
	return s.session.Terminated()
}

// Commands 返回最近一帧的绘制指令
func (s *SaloonScene) Commands() []game.RenderCommand {
	return s.commands
}

// Draw 按顺序执行绘制指令
func (s *SaloonScene) Draw(screen *ebiten.Image) {
	for _, cmd := range s.commands {
		switch c := cmd.(type) {
		case game.DrawBackground:
			s.drawBackground(screen, c)
		case game.DrawDecal:
			s.drawDecal(screen, c)
		case game.DrawProp:
			s.drawProp(screen, c)
		case game.DrawHUD:
			s.drawHUD(screen, c)
		case game.DrawMenu:
			s.drawMenu(screen, c)
		case game.DrawCursor:
			s.drawCursor(screen, c)
		}
	}
}

// drawBackground 背景图居中绘制，缺失时填充木色
func (s *SaloonScene) drawBackground(screen *ebiten.Image, c game.DrawBackground) {
	img := s.resourceManager.GetImageByID(c.ResourceID)
	if img == nil {
		screen.Fill(colorBackdrop)
		ebitenutil.DebugPrintAt(screen, c.ResourceID, hudMarginX, config.GameWindowHeight-24)
		return
	}
	screen.Fill(color.Black)
	drawImageCentered(screen, img, image.Pt(config.GameWindowWidth/2, config.GameWindowHeight/2))
}

// drawDecal 弹孔以命中点为中心
func (s *SaloonScene) drawDecal(screen *ebiten.Image, c game.DrawDecal) {
	if img := s.resourceManager.GetImageByID(ImageBulletHole); img != nil {
		drawImageCentered(screen, img, c.Pos)
		return
	}
	vector.FillCircle(screen, float32(c.Pos.X), float32(c.Pos.Y), decalRadius, colorDecal, true)
}

// drawProp 道具只绘制轮廓，防弹道具使用不同颜色
func (s *SaloonScene) drawProp(screen *ebiten.Image, c game.DrawProp) {
	clr := colorProp
	if c.Bulletproof {
		clr = colorBulletproof
	}
	r := c.Rect
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, clr, false)
}

// drawHUD 左上角显示武器、弹药与视角
func (s *SaloonScene) drawHUD(screen *ebiten.Image, c game.DrawHUD) {
	lines := []string{
		fmt.Sprintf("%s  (%s x %d)", c.Weapon, c.AmmoType, c.Rounds),
		fmt.Sprintf("View %d/%d", c.ViewIndex+1, c.ViewCount),
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudMarginX, float64(hudMarginY+i*hudLineSpacing))
		op.ColorScale.ScaleWithColor(colorHUD)
		text.Draw(screen, line, s.hudFont, op)
	}
}

// drawMenu 暂停菜单：压暗背景、招牌、菜单项与音乐状态
func (s *SaloonScene) drawMenu(screen *ebiten.Image, c game.DrawMenu) {
	screen.Fill(colorBackdrop)
	vector.FillRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, colorMenuDim, false)

	centerX := float64(config.GameWindowWidth / 2)
	if sign := s.resourceManager.GetImageByID(ImagePauseSign); sign != nil {
		drawImageCentered(screen, sign, image.Pt(int(centerX), config.MenuTopY/2))
	}

	for i, label := range c.Options {
		clr := colorMenuText
		if i == c.Selected {
			clr = colorMenuFocus
		}
		s.drawCenteredText(screen, label, s.menuFont, centerX, float64(config.MenuTopY+i*config.MenuOptionHeight), clr)
	}

	music := "OFF"
	if c.MusicOn {
		music = "ON"
	}
	status := fmt.Sprintf("Music: %s    Volume: %d%%", music, c.VolumePercent)
	statusY := config.MenuTopY + len(c.Options)*config.MenuOptionHeight + config.MenuStatusGap
	s.drawCenteredText(screen, status, s.hudFont, centerX, float64(statusY), colorMenuText)
}

// drawCursor 光标图片以指针为中心，缺失时用线条代替
func (s *SaloonScene) drawCursor(screen *ebiten.Image, c game.DrawCursor) {
	id := ImageCursorHand
	if c.Style == game.CursorCrosshair {
		id = ImageCursorCrosshair
	}
	if img := s.resourceManager.GetImageByID(id); img != nil {
		drawImageCentered(screen, img, c.Pos)
		return
	}

	x, y := float32(c.Pos.X), float32(c.Pos.Y)
	if c.Style == game.CursorCrosshair {
		vector.StrokeLine(screen, x-cursorSize, y, x+cursorSize, y, 1, colorCursor, true)
		vector.StrokeLine(screen, x, y-cursorSize, x, y+cursorSize, 1, colorCursor, true)
		vector.StrokeCircle(screen, x, y, cursorSize/2, 1, colorCursor, true)
		return
	}
	vector.FillCircle(screen, x, y, cursorSize/3, colorCursor, true)
}

// drawCenteredText 以 (x, y) 为中心绘制一行文字
func (s *SaloonScene) drawCenteredText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, str, face, op)
}

// drawImageCentered 以 center 为中心绘制图片
func drawImageCentered(screen, img *ebiten.Image, center image.Point) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(center.X-b.Dx()/2), float64(center.Y-b.Dy()/2))
	screen.DrawImage(img, op)
}

package config

// 窗口与帧率配置
const (
	// GameWindowWidth 游戏逻辑屏幕宽度
	GameWindowWidth = 1200
	// GameWindowHeight 游戏逻辑屏幕高度
	GameWindowHeight = 800
	// TargetFPS 目标帧率（ebiten 默认 TPS）
	TargetFPS = 60
	// WindowTitle 窗口标题
	WindowTitle = "TexDotText: Saloon Spin Cycle"
)

// 玩法常量
const (
	// MaxBulletHoles 每个视角最多记录的弹孔数量，满后新弹孔直接丢弃
	MaxBulletHoles = 10

	// StartingAmmo 每种弹药的初始数量
	StartingAmmo = 20

	// BackgroundRicochetChance 未命中任何道具时播放跳弹音效的概率
	BackgroundRicochetChance = 0.3
)

// 暂停菜单布局
const (
	// MenuOptionHeight 菜单项行高
	MenuOptionHeight = 50
	// MenuTopY 第一个菜单项中心的 Y 坐标
	MenuTopY = 300
	// MenuFontSize 菜单字体大小
	MenuFontSize = 36.0
	// MenuStatusGap 菜单项与音乐状态行之间的间距
	MenuStatusGap = 50
)

// 音频配置
const (
	// AudioSampleRate 音频上下文采样率
	AudioSampleRate = 48000
	// DefaultMusicVolume 背景音乐初始音量
	DefaultMusicVolume = 0.5
	// DefaultSoundVolume 音效音量
	DefaultSoundVolume = 0.8
	// MusicVolumeIncrement 菜单"音量+/-"每次调整的步长
	MusicVolumeIncrement = 0.1
)

// 数据文件路径（相对于嵌入文件系统根目录）
const (
	ArsenalConfigPath  = "data/arsenal.yaml"
	SaloonConfigPath   = "data/saloon.yaml"
	ResourceConfigPath = "data/resources.yaml"
)

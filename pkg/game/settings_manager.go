package game

import (
	"log"

	"github.com/decker502/saloon/pkg/config"
)

// GameSettings 音频与显示设置
// 只在内存中保存，进程退出即丢弃
type GameSettings struct {
	MusicVolume  float64 // 音乐音量 0.0 ~ 1.0
	SoundVolume  float64 // 音效音量 0.0 ~ 1.0
	MusicEnabled bool    // 音乐开关
	SoundEnabled bool    // 音效开关
	Fullscreen   bool    // 是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  config.DefaultMusicVolume,
		SoundVolume:  config.DefaultSoundVolume,
		MusicEnabled: true,
		SoundEnabled: true,
		Fullscreen:   true,
	}
}

// SettingsManager 设置管理器
// 负责设置的内存管理与取值范围约束
type SettingsManager struct {
	settings *GameSettings
}

// NewSettingsManager 创建设置管理器
//
// 参数：
//   - initial: 初始设置，为 nil 时使用 DefaultSettings()
func NewSettingsManager(initial *GameSettings) *SettingsManager {
	if initial == nil {
		initial = DefaultSettings()
	}
	settings := *initial
	settings.MusicVolume = clampVolume(settings.MusicVolume)
	settings.SoundVolume = clampVolume(settings.SoundVolume)

	log.Printf("[SettingsManager] Music %.2f (enabled=%v), sound %.2f (enabled=%v)",
		settings.MusicVolume, settings.MusicEnabled, settings.SoundVolume, settings.SoundEnabled)
	return &SettingsManager{settings: &settings}
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetMusicVolume 设置音乐音量，超出 0.0 ~ 1.0 的值会被截断
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// SetSoundVolume 设置音效音量，超出 0.0 ~ 1.0 的值会被截断
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetMusicEnabled 设置音乐开关
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}

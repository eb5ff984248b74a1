package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音频资源ID（见 data/resources.yaml）
const (
	SoundGunshot  = "SOUND_GUNSHOT"
	SoundRicochet = "SOUND_RICOCHET"
	SoundBreak    = "SOUND_BREAK"
	MusicSaloon   = "MUSIC_SALOON"
)

// AudioManager 音频管理器，AudioController 的 ebiten 实现
// 职责：
//   - 播放枪声、跳弹、破碎音效（每次创建独立播放器，允许重叠）
//   - 循环播放背景音乐，支持开关与音量调整
//   - 音量与开关状态保存在 SettingsManager 中
//
// 缺失的音频资源会被静默跳过，游戏逻辑不受影响。
type AudioManager struct {
	context         *audio.Context
	resourceManager *ResourceManager
	settingsManager *SettingsManager
	music           *audio.Player
	musicPlaying    bool
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - context: 音频上下文，可为 nil（无声模式）
//   - rm: 资源管理器（提供解码后的音频）
//   - sm: 设置管理器（音量与开关）
func NewAudioManager(context *audio.Context, rm *ResourceManager, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:         context,
		resourceManager: rm,
		settingsManager: sm,
	}
	if rm != nil {
		am.music = rm.GetMusicByID(MusicSaloon)
	}
	if am.music != nil {
		am.music.SetVolume(sm.GetSettings().MusicVolume)
	}
	return am
}

// StartMusic 按设置开始播放背景音乐（游戏启动时调用）
func (am *AudioManager) StartMusic() {
	if am.settingsManager.GetSettings().MusicEnabled {
		am.play()
	}
}

// PlayGunshot 播放枪声
func (am *AudioManager) PlayGunshot() {
	am.playSound(SoundGunshot)
}

// PlayRicochet 播放跳弹
func (am *AudioManager) PlayRicochet() {
	am.playSound(SoundRicochet)
}

// PlayBreak 播放破碎
func (am *AudioManager) PlayBreak() {
	am.playSound(SoundBreak)
}

// MusicToggle 切换背景音乐的播放/停止
func (am *AudioManager) MusicToggle() {
	if am.musicPlaying {
		am.stop()
	} else {
		am.play()
	}
	am.settingsManager.SetMusicEnabled(am.musicPlaying)
}

// SetVolume 设置背景音乐音量，立即应用到正在播放的音乐
func (am *AudioManager) SetVolume(volume float64) {
	am.settingsManager.SetMusicVolume(volume)
	if am.music != nil {
		am.music.SetVolume(am.settingsManager.GetSettings().MusicVolume)
	}
	log.Printf("[AudioManager] Music volume: %.2f", am.settingsManager.GetSettings().MusicVolume)
}

// IsMusicPlaying 返回背景音乐是否在播放
func (am *AudioManager) IsMusicPlaying() bool {
	return am.musicPlaying
}

// CurrentVolume 返回背景音乐音量
func (am *AudioManager) CurrentVolume() float64 {
	return am.settingsManager.GetSettings().MusicVolume
}

// play 从头循环播放背景音乐
// 没有音乐资源时也记录为"播放中"，使菜单状态与用户操作一致
func (am *AudioManager) play() {
	if am.musicPlaying {
		return
	}
	if am.music != nil {
		if err := am.music.Rewind(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to rewind music: %v", err)
		}
		am.music.Play()
	}
	am.musicPlaying = true
}

// stop 停止背景音乐
func (am *AudioManager) stop() {
	if !am.musicPlaying {
		return
	}
	if am.music != nil {
		am.music.Pause()
	}
	am.musicPlaying = false
}

// playSound 播放一次音效
func (am *AudioManager) playSound(soundID string) {
	settings := am.settingsManager.GetSettings()
	if !settings.SoundEnabled || am.context == nil || am.resourceManager == nil {
		return
	}

	pcm := am.resourceManager.GetSoundByID(soundID)
	if pcm == nil {
		return
	}

	player := am.context.NewPlayerFromBytes(pcm)
	player.SetVolume(settings.SoundVolume)
	player.Play()
}

package game

//go:generate go tool mockgen -destination=./mocks/audio_mock.go -package=mocks . AudioController,RandomSource

// AudioController 游戏核心使用的音频控制面
// 除两个状态查询（供暂停菜单显示）外，返回值不会反馈到玩法状态
type AudioController interface {
	PlayGunshot()
	PlayRicochet()
	PlayBreak()
	MusicToggle()
	SetVolume(volume float64)
	IsMusicPlaying() bool
	CurrentVolume() float64
}

// Effect 一次射击产生的音效
type Effect int

const (
	// EffectGunshot 枪声，每次有效开火必定最先产生
	EffectGunshot Effect = iota
	// EffectRicochet 跳弹
	EffectRicochet
	// EffectBreak 道具破碎
	EffectBreak
)

func (e Effect) String() string {
	switch e {
	case EffectGunshot:
		return "gunshot"
	case EffectRicochet:
		return "ricochet"
	case EffectBreak:
		return "break"
	default:
		return "unknown"
	}
}

// playEffect 把音效分发给音频控制器
func playEffect(audio AudioController, effect Effect) {
	switch effect {
	case EffectGunshot:
		audio.PlayGunshot()
	case EffectRicochet:
		audio.PlayRicochet()
	case EffectBreak:
		audio.PlayBreak()
	}
}

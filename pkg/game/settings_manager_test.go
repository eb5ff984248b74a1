package game

import "testing"

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	// 验证音乐音量默认值
	if settings.MusicVolume != 0.5 {
		t.Errorf("MusicVolume: got %v, want 0.5", settings.MusicVolume)
	}

	// 验证音效音量默认值
	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}

	if !settings.MusicEnabled {
		t.Error("MusicEnabled: got false, want true")
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}

	// 酒馆默认全屏启动
	if !settings.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
}

// TestNewSettingsManager 测试初始化时复制并约束初始设置
func TestNewSettingsManager(t *testing.T) {
	tests := []struct {
		name      string
		initial   *GameSettings
		wantMusic float64
		wantSound float64
	}{
		{name: "nil 使用默认值", initial: nil, wantMusic: 0.5, wantSound: 0.8},
		{name: "正常值", initial: &GameSettings{MusicVolume: 0.3, SoundVolume: 0.4}, wantMusic: 0.3, wantSound: 0.4},
		{name: "越界值被截断", initial: &GameSettings{MusicVolume: 1.7, SoundVolume: -0.2}, wantMusic: 1.0, wantSound: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(tt.initial)
			settings := sm.GetSettings()
			if settings.MusicVolume != tt.wantMusic {
				t.Errorf("MusicVolume: got %v, want %v", settings.MusicVolume, tt.wantMusic)
			}
			if settings.SoundVolume != tt.wantSound {
				t.Errorf("SoundVolume: got %v, want %v", settings.SoundVolume, tt.wantSound)
			}
		})
	}
}

// TestNewSettingsManager_CopiesInitial 修改管理器不影响传入的初始设置
func TestNewSettingsManager_CopiesInitial(t *testing.T) {
	initial := DefaultSettings()
	sm := NewSettingsManager(initial)

	sm.SetMusicVolume(0.1)
	sm.SetMusicEnabled(false)

	if initial.MusicVolume != 0.5 || !initial.MusicEnabled {
		t.Errorf("initial settings modified: %+v", initial)
	}
}

// TestSettingsManager_Setters 测试各项设置与音量截断
func TestSettingsManager_Setters(t *testing.T) {
	sm := NewSettingsManager(nil)

	volumeTests := []struct {
		input float64
		want  float64
	}{
		{0.0, 0.0},
		{0.25, 0.25},
		{1.0, 1.0},
		{-0.1, 0.0},
		{1.5, 1.0},
	}
	for _, tt := range volumeTests {
		sm.SetMusicVolume(tt.input)
		if got := sm.GetSettings().MusicVolume; got != tt.want {
			t.Errorf("SetMusicVolume(%v): got %v, want %v", tt.input, got, tt.want)
		}
		sm.SetSoundVolume(tt.input)
		if got := sm.GetSettings().SoundVolume; got != tt.want {
			t.Errorf("SetSoundVolume(%v): got %v, want %v", tt.input, got, tt.want)
		}
	}

	sm.SetMusicEnabled(false)
	sm.SetSoundEnabled(false)
	sm.SetFullscreen(false)
	settings := sm.GetSettings()
	if settings.MusicEnabled || settings.SoundEnabled || settings.Fullscreen {
		t.Errorf("toggles: got %+v, want all false", settings)
	}
}

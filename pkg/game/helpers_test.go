package game

import (
	"github.com/decker502/saloon/pkg/config"
	"github.com/decker502/saloon/pkg/game/mocks"
	"go.uber.org/mock/gomock"
)

const (
	colt       = "Colt Single Action Army"
	winchester = "Winchester Model 1873"
	elephant   = "Elephant Gun"
)

// testArsenal 测试用武器目录：两把普通武器 + 一把使用穿甲弹的武器
func testArsenal() *config.ArsenalConfig {
	return &config.ArsenalConfig{
		Weapons: []config.WeaponSpec{
			{Name: colt, AmmoType: ".45 Colt", Damage: 50, Accuracy: 0.8, Range: 100},
			{Name: winchester, AmmoType: ".44-40 Winchester", Damage: 60, Accuracy: 0.9, Range: 200},
			{Name: elephant, AmmoType: ".600 Nitro", Damage: 120, Accuracy: 0.7, Range: 150},
		},
		Ammo: []config.AmmoSpec{
			{ID: ".45 Colt", Penetration: 2},
			{ID: ".44-40 Winchester", Penetration: 3},
			{ID: ".600 Nitro", Penetration: 5, ArmorPiercing: true},
		},
	}
}

// testLayout 与发布数据相同的四视角布局
func testLayout() *config.SaloonConfig {
	return &config.SaloonConfig{
		DefaultWeapon: colt,
		Views: []config.ViewSpec{
			{Name: "front", Background: "IMAGE_SALOON_FRONT", Props: []config.PropSpec{
				{Type: "bottle", X: 100, Y: 200, Width: 50, Height: 50},
				{Type: "window", X: 300, Y: 400, Width: 100, Height: 100, Bulletproof: true},
			}},
			{Name: "right", Background: "IMAGE_SALOON_RIGHT", Props: []config.PropSpec{
				{Type: "picture", X: 200, Y: 300, Width: 75, Height: 75},
			}},
			{Name: "around", Background: "IMAGE_SALOON_AROUND", Props: []config.PropSpec{
				{Type: "lamp", X: 400, Y: 200, Width: 60, Height: 60},
			}},
			{Name: "left", Background: "IMAGE_SALOON_LEFT", Props: []config.PropSpec{
				{Type: "mirror", X: 150, Y: 350, Width: 80, Height: 80, Bulletproof: true},
			}},
		},
	}
}

// testHelper *testing.T 与 *rapid.T 共有的方法
type testHelper interface {
	Helper()
	Fatalf(format string, args ...any)
}

func newTestCatalog(t testHelper) *WeaponCatalog {
	t.Helper()
	catalog, err := NewWeaponCatalog(testArsenal())
	if err != nil {
		t.Fatalf("NewWeaponCatalog() error: %v", err)
	}
	return catalog
}

func newTestArmory(t testHelper) *Armory {
	t.Helper()
	armory, err := NewArmory(newTestCatalog(t), colt)
	if err != nil {
		t.Fatalf("NewArmory() error: %v", err)
	}
	return armory
}

func newTestSaloon(t testHelper) *Saloon {
	t.Helper()
	saloon, err := NewSaloon(testLayout())
	if err != nil {
		t.Fatalf("NewSaloon() error: %v", err)
	}
	return saloon
}

// stubRandom 固定返回同一个值的随机数来源
type stubRandom float64

func (s stubRandom) Float64() float64 {
	return float64(s)
}

// newMockAudio 创建音频 mock，状态查询可任意调用
func newMockAudio(ctrl *gomock.Controller) *mocks.MockAudioController {
	audio := mocks.NewMockAudioController(ctrl)
	audio.EXPECT().IsMusicPlaying().Return(true).AnyTimes()
	audio.EXPECT().CurrentVolume().Return(0.5).AnyTimes()
	return audio
}

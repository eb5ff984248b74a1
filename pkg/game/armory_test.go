package game

import (
	"errors"
	"testing"

	"github.com/decker502/saloon/pkg/config"
	"pgregory.net/rapid"
)

func TestNewArmory_StartingStock(t *testing.T) {
	armory := newTestArmory(t)

	if armory.CurrentWeapon().Name != colt {
		t.Errorf("CurrentWeapon: got %q, want %q", armory.CurrentWeapon().Name, colt)
	}
	for _, id := range newTestCatalog(t).AmmoIDs() {
		if got := armory.Stock(id); got != config.StartingAmmo {
			t.Errorf("Stock(%q): got %d, want %d", id, got, config.StartingAmmo)
		}
	}
}

func TestNewArmory_UnknownDefaultWeapon(t *testing.T) {
	_, err := NewArmory(newTestCatalog(t), "Gatling Gun")

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error: got %v, want *ConfigurationError", err)
	}
	if !errors.Is(err, ErrUnknownWeapon) {
		t.Errorf("error: got %v, want it to wrap ErrUnknownWeapon", err)
	}
}

func TestArmory_SwitchWeapon(t *testing.T) {
	armory := newTestArmory(t)

	if !armory.SwitchWeapon(winchester) {
		t.Error("SwitchWeapon(winchester): got false, want true")
	}
	if armory.CurrentWeapon().Name != winchester {
		t.Errorf("CurrentWeapon: got %q, want %q", armory.CurrentWeapon().Name, winchester)
	}
	if armory.CurrentAmmo().ID != ".44-40 Winchester" {
		t.Errorf("CurrentAmmo: got %q, want .44-40 Winchester", armory.CurrentAmmo().ID)
	}

	// 未知武器：静默忽略，保持当前武器
	if armory.SwitchWeapon("Gatling Gun") {
		t.Error("SwitchWeapon(unknown): got true, want false")
	}
	if armory.CurrentWeapon().Name != winchester {
		t.Errorf("CurrentWeapon after invalid switch: got %q, want %q", armory.CurrentWeapon().Name, winchester)
	}
}

func TestArmory_FireUntilEmpty(t *testing.T) {
	armory := newTestArmory(t)

	for i := 0; i < config.StartingAmmo; i++ {
		if !armory.Fire() {
			t.Fatalf("Fire #%d: got false, want true", i+1)
		}
	}
	if got := armory.Rounds(); got != 0 {
		t.Fatalf("Rounds after %d shots: got %d, want 0", config.StartingAmmo, got)
	}

	// 空枪：返回 false，库存保持 0
	for i := 0; i < 3; i++ {
		if armory.Fire() {
			t.Errorf("dry Fire #%d: got true, want false", i+1)
		}
	}
	if got := armory.Stock(".45 Colt"); got != 0 {
		t.Errorf("Stock after dry fire: got %d, want 0", got)
	}

	// 其他弹药不受影响
	if got := armory.Stock(".44-40 Winchester"); got != config.StartingAmmo {
		t.Errorf("Winchester stock: got %d, want %d", got, config.StartingAmmo)
	}
	armory.SwitchWeapon(winchester)
	if !armory.Fire() {
		t.Error("Fire with fresh weapon: got false, want true")
	}
}

// TestArmory_StockNeverNegative 任意换枪/开火序列下库存都不为负，且与成功开火次数一致
func TestArmory_StockNeverNegative(t *testing.T) {
	catalog := newTestCatalog(t)
	names := catalog.WeaponNames()

	rapid.Check(t, func(t *rapid.T) {
		armory, err := NewArmory(catalog, colt)
		if err != nil {
			t.Fatalf("NewArmory() error: %v", err)
		}
		fired := make(map[string]int)

		steps := rapid.IntRange(0, 200).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "switch") {
				armory.SwitchWeapon(rapid.SampledFrom(names).Draw(t, "weapon"))
				continue
			}
			before := armory.Rounds()
			ok := armory.Fire()
			if ok != (before > 0) {
				t.Fatalf("Fire with %d rounds returned %v", before, ok)
			}
			if ok {
				fired[armory.CurrentWeapon().AmmoType]++
			}
		}

		for _, id := range catalog.AmmoIDs() {
			stock := armory.Stock(id)
			if stock < 0 {
				t.Fatalf("Stock(%q) = %d, want >= 0", id, stock)
			}
			if stock != config.StartingAmmo-fired[id] {
				t.Fatalf("Stock(%q) = %d, want %d", id, stock, config.StartingAmmo-fired[id])
			}
		}
	})
}

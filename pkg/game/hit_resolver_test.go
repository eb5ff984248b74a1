package game

import (
	"image"
	"reflect"
	"testing"

	"github.com/decker502/saloon/pkg/config"
	"github.com/decker502/saloon/pkg/game/mocks"
	"go.uber.org/mock/gomock"
)

var (
	colt45 = AmmoDefinition{ID: ".45 Colt", Penetration: 2}
	nitro  = AmmoDefinition{ID: ".600 Nitro", Penetration: 5, ArmorPiercing: true}
)

func TestHitResolver_Resolve(t *testing.T) {
	tests := []struct {
		name          string
		aim           image.Point
		ammo          AmmoDefinition
		roll          float64
		wantEffects   []Effect
		wantTarget    string
		wantDestroyed bool
		wantDecal     bool
	}{
		{
			name:          "hit bottle",
			aim:           image.Pt(120, 220),
			ammo:          colt45,
			wantEffects:   []Effect{EffectGunshot, EffectBreak},
			wantTarget:    "bottle",
			wantDestroyed: true,
		},
		{
			name:        "bulletproof window deflects regular round",
			aim:         image.Pt(350, 450),
			ammo:        colt45,
			wantEffects: []Effect{EffectGunshot, EffectRicochet},
			wantTarget:  "window",
		},
		{
			name:          "armor piercing breaks window",
			aim:           image.Pt(350, 450),
			ammo:          nitro,
			wantEffects:   []Effect{EffectGunshot, EffectBreak},
			wantTarget:    "window",
			wantDestroyed: true,
		},
		{
			name:        "background without ricochet",
			aim:         image.Pt(700, 700),
			ammo:        colt45,
			roll:        0.3,
			wantEffects: []Effect{EffectGunshot},
			wantDecal:   true,
		},
		{
			name:        "background with ricochet still leaves decal",
			aim:         image.Pt(700, 700),
			ammo:        colt45,
			roll:        0.29,
			wantEffects: []Effect{EffectGunshot, EffectRicochet},
			wantDecal:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saloon := newTestSaloon(t)
			resolver := NewHitResolver(stubRandom(tt.roll))

			result := resolver.Resolve(saloon, tt.aim, tt.ammo)

			if !reflect.DeepEqual(result.Effects, tt.wantEffects) {
				t.Errorf("Effects: got %v, want %v", result.Effects, tt.wantEffects)
			}
			if tt.wantTarget == "" {
				if result.Target != nil {
					t.Errorf("Target: got %s, want nil", result.Target.TypeID)
				}
			} else if result.Target == nil || result.Target.TypeID != tt.wantTarget {
				t.Errorf("Target: got %v, want %s", result.Target, tt.wantTarget)
			}
			if result.Destroyed != tt.wantDestroyed {
				t.Errorf("Destroyed: got %v, want %v", result.Destroyed, tt.wantDestroyed)
			}
			if result.DecalPlaced != tt.wantDecal {
				t.Errorf("DecalPlaced: got %v, want %v", result.DecalPlaced, tt.wantDecal)
			}

			wantDecals := 0
			if tt.wantDecal {
				wantDecals = 1
			}
			if n := len(saloon.CurrentView().Decals()); n != wantDecals {
				t.Errorf("decals: got %d, want %d", n, wantDecals)
			}
		})
	}
}

// TestHitResolver_PropHitSkipsRoll 命中道具时不消耗随机数
func TestHitResolver_PropHitSkipsRoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandomSource(ctrl)

	saloon := newTestSaloon(t)
	NewHitResolver(rng).Resolve(saloon, image.Pt(120, 220), colt45)
}

func TestHitResolver_BackgroundRollsOncePerShot(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandomSource(ctrl)
	rng.EXPECT().Float64().Return(0.9).Times(2)

	saloon := newTestSaloon(t)
	resolver := NewHitResolver(rng)
	resolver.Resolve(saloon, image.Pt(5, 5), colt45)
	resolver.Resolve(saloon, image.Pt(6, 6), colt45)
}

func TestHitResolver_FirstMatchWins(t *testing.T) {
	saloon, err := NewSaloon(&config.SaloonConfig{
		DefaultWeapon: colt,
		Views: []config.ViewSpec{{Background: "BG", Props: []config.PropSpec{
			{Type: "A", X: 0, Y: 0, Width: 100, Height: 100},
			{Type: "B", X: 50, Y: 50, Width: 100, Height: 100},
		}}},
	})
	if err != nil {
		t.Fatalf("NewSaloon() error: %v", err)
	}
	resolver := NewHitResolver(stubRandom(0.9))
	p := image.Pt(75, 75)

	first := resolver.Resolve(saloon, p, colt45)
	if first.Target == nil || first.Target.TypeID != "A" {
		t.Fatalf("first shot target: got %v, want A", first.Target)
	}
	b := saloon.CurrentView().Props[1]
	if b.Destroyed() {
		t.Error("B destroyed by a shot resolved against A")
	}

	// A 已毁坏，同一点改为命中 B
	second := resolver.Resolve(saloon, p, colt45)
	if second.Target != b {
		t.Errorf("second shot target: got %v, want B", second.Target)
	}
}

func TestHitResolver_DestroyedPropIsBackground(t *testing.T) {
	saloon := newTestSaloon(t)
	resolver := NewHitResolver(stubRandom(0.9))
	aim := image.Pt(120, 220)

	if r := resolver.Resolve(saloon, aim, colt45); !r.Destroyed {
		t.Fatal("first shot should destroy the bottle")
	}

	r := resolver.Resolve(saloon, aim, colt45)
	if r.Target != nil {
		t.Errorf("Target after destruction: got %s, want nil", r.Target.TypeID)
	}
	if !r.DecalPlaced {
		t.Error("DecalPlaced: got false, want true")
	}
	if !reflect.DeepEqual(saloon.CurrentView().Decals(), []image.Point{aim}) {
		t.Errorf("Decals: got %v, want [%v]", saloon.CurrentView().Decals(), aim)
	}
}

func TestHitResolver_DecalCapOnMisses(t *testing.T) {
	saloon := newTestSaloon(t)
	resolver := NewHitResolver(stubRandom(0.9))

	var want []image.Point
	for i := 0; i < 15; i++ {
		aim := image.Pt(600+i, 100)
		r := resolver.Resolve(saloon, aim, colt45)
		if i < config.MaxBulletHoles {
			want = append(want, aim)
		}
		if r.DecalPlaced != (i < config.MaxBulletHoles) {
			t.Errorf("shot %d DecalPlaced: got %v", i+1, r.DecalPlaced)
		}
	}

	if got := saloon.CurrentView().Decals(); !reflect.DeepEqual(got, want) {
		t.Errorf("Decals: got %v, want %v", got, want)
	}
}

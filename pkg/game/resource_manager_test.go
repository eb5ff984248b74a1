package game

import (
	"slices"
	"testing"
	"testing/fstest"

	"github.com/decker502/saloon/pkg/embedded"
	"golang.org/x/image/font/gofont/goregular"
)

const testResourceYAML = `
version: "1.0"
base_path: assets
groups:
  init:
    images:
      - id: IMAGE_SALOON_FRONT
        path: images/saloon_001.jpg
      - id: IMAGE_BULLET_HOLE
        path: images/bullet_hole
    sounds:
      - id: SOUND_GUNSHOT
        path: sounds/gunshot.mp3
      - id: SOUND_BREAK
        path: sounds/break
    fonts:
      - id: FONT_MENU
        path: fonts/menu.ttf
      - id: FONT_MISSING
        path: fonts/missing.ttf
`

// initTestFS 挂载只包含资源表与一个字体文件的文件系统
func initTestFS(t *testing.T) {
	t.Helper()
	embedded.Init(
		fstest.MapFS{
			"assets/fonts/menu.ttf": {Data: goregular.TTF},
		},
		fstest.MapFS{
			"data/resources.yaml": {Data: []byte(testResourceYAML)},
		},
	)
	t.Cleanup(func() { embedded.Init(nil, nil) })
}

func newLoadedResourceManager(t *testing.T) *ResourceManager {
	t.Helper()
	initTestFS(t)
	rm := NewResourceManager(nil)
	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig() error: %v", err)
	}
	return rm
}

// TestNewResourceManager tests the creation of a new ResourceManager instance.
func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager(nil)

	if rm.imageCache == nil || rm.soundCache == nil || rm.musicCache == nil {
		t.Error("caches not initialized")
	}
	if rm.audioContext != nil {
		t.Error("audioContext: want nil")
	}
}

// TestLoadResourceConfig_ResourceMap verifies IDs map to full paths with default extensions.
func TestLoadResourceConfig_ResourceMap(t *testing.T) {
	rm := newLoadedResourceManager(t)

	tests := []struct {
		id   string
		want string
	}{
		{"IMAGE_SALOON_FRONT", "assets/images/saloon_001.jpg"},
		{"IMAGE_BULLET_HOLE", "assets/images/bullet_hole.png"},
		{"SOUND_GUNSHOT", "assets/sounds/gunshot.mp3"},
		{"SOUND_BREAK", "assets/sounds/break.ogg"},
		{"FONT_MENU", "assets/fonts/menu.ttf"},
	}
	for _, tt := range tests {
		got, ok := rm.PathOf(tt.id)
		if !ok {
			t.Errorf("PathOf(%s): not found", tt.id)
			continue
		}
		if got != tt.want {
			t.Errorf("PathOf(%s): got %q, want %q", tt.id, got, tt.want)
		}
	}

	want := []string{"FONT_MENU", "FONT_MISSING", "IMAGE_BULLET_HOLE", "IMAGE_SALOON_FRONT", "SOUND_BREAK", "SOUND_GUNSHOT"}
	if got := rm.ResourceIDs(); !slices.Equal(got, want) {
		t.Errorf("ResourceIDs: got %v, want %v", got, want)
	}

	if _, ok := rm.PathOf("IMAGE_UNKNOWN"); ok {
		t.Error("PathOf(IMAGE_UNKNOWN): want not found")
	}
}

// TestLoadResourceConfig_Missing tests the error path when the table is absent.
func TestLoadResourceConfig_Missing(t *testing.T) {
	initTestFS(t)
	rm := NewResourceManager(nil)

	if err := rm.LoadResourceConfig("data/nope.yaml"); err == nil {
		t.Error("expected error for missing config")
	}
}

// TestLoadResourceGroup_SkipsMissingFiles loads a group where only the font exists.
func TestLoadResourceGroup_SkipsMissingFiles(t *testing.T) {
	rm := newLoadedResourceManager(t)

	if err := rm.LoadResourceGroup("init"); err != nil {
		t.Fatalf("LoadResourceGroup() error: %v", err)
	}

	if img := rm.GetImageByID("IMAGE_SALOON_FRONT"); img != nil {
		t.Error("missing image: want nil")
	}
	if pcm := rm.GetSoundByID("SOUND_GUNSHOT"); pcm != nil {
		t.Error("sound without audio context: want nil")
	}
	if _, ok := rm.fontCache["assets/fonts/menu.ttf"]; !ok {
		t.Error("menu font not cached")
	}
}

// TestLoadResourceGroup_Errors tests unknown groups and unloaded config.
func TestLoadResourceGroup_Errors(t *testing.T) {
	if err := NewResourceManager(nil).LoadResourceGroup("init"); err == nil {
		t.Error("LoadResourceGroup before config: expected error")
	}

	rm := newLoadedResourceManager(t)
	if err := rm.LoadResourceGroup("nope"); err == nil {
		t.Error("LoadResourceGroup(nope): expected error")
	}
}

// TestGetFontByID covers caching and the fallback face.
func TestGetFontByID(t *testing.T) {
	rm := newLoadedResourceManager(t)
	if err := rm.LoadResourceGroup("init"); err != nil {
		t.Fatalf("LoadResourceGroup() error: %v", err)
	}

	face, err := rm.GetFontByID("FONT_MENU", 36)
	if err != nil {
		t.Fatalf("GetFontByID(FONT_MENU) error: %v", err)
	}
	if face.Source != rm.fontCache["assets/fonts/menu.ttf"] {
		t.Error("FONT_MENU should use the loaded font source")
	}
	again, _ := rm.GetFontByID("FONT_MENU", 36)
	if again != face {
		t.Error("second lookup should return the cached face")
	}

	fallback, err := rm.GetFontByID("FONT_MISSING", 24)
	if err != nil {
		t.Fatalf("GetFontByID(FONT_MISSING) error: %v", err)
	}
	if fallback.Source == nil || fallback.Source != rm.fallbackFont {
		t.Error("missing font should use the fallback source")
	}
	if fallback.Size != 24 {
		t.Errorf("fallback size: got %v, want 24", fallback.Size)
	}
}

package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"log"
	"maps"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/decker502/saloon/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, audio and fonts,
// ensuring that resources are decoded only once and reused throughout the game.
//
// Resources are addressed by the IDs declared in data/resources.yaml. Files
// missing from the asset directory are logged and skipped, so the game still
// runs without art; callers receive nil and draw a placeholder instead.
//
// Thread Safety Note:
// LoadResourceGroup decodes files on worker goroutines but publishes the
// results into the caches from the calling goroutine only. All other methods
// must be called from the game loop goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(config.AudioSampleRate)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig(config.ResourceConfigPath); err != nil {
//	    return err
//	}
//	if err := rm.LoadResourceGroup("init"); err != nil {
//	    return err
//	}
type ResourceManager struct {
	audioContext  *audio.Context                    // Global audio context used for playback
	imageCache    map[string]*ebiten.Image          // path -> Image
	soundCache    map[string][]byte                 // path -> decoded 16-bit stereo PCM
	musicCache    map[string]*audio.Player          // path -> looping Player
	fontCache     map[string]*text.GoTextFaceSource // path -> font source
	fontFaceCache map[string]*text.GoTextFace       // "path:size" -> face
	fallbackFont  *text.GoTextFaceSource            // Go Regular, parsed on first use

	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context. May be nil in tests, in which case
//     sound and music loading is skipped.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext:  audioContext,
		imageCache:    make(map[string]*ebiten.Image),
		soundCache:    make(map[string][]byte),
		musicCache:    make(map[string]*audio.Player),
		fontCache:     make(map[string]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
		resourceMap:   make(map[string]string),
	}
}

// LoadResourceConfig loads and parses the resource table.
//
// Parameters:
//   - configPath: Path inside the data filesystem (e.g., "data/resources.yaml")
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	config, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("invalid resource config %s: %w", configPath, err)
	}

	rm.config = config
	rm.buildResourceMap()
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_BULLET_HOLE -> assets/images/bullet_hole.png
//	SOUND_GUNSHOT     -> assets/sounds/gunshot.mp3
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath
		}
		for _, entries := range [][]ResourceEntry{group.Sounds, group.Music} {
			for _, sound := range entries {
				fullPath := buildFullPath(rm.config.BasePath, sound.Path)
				if filepath.Ext(fullPath) == "" {
					fullPath += ".ogg" // Default to OGG for sounds
				}
				rm.resourceMap[sound.ID] = fullPath
			}
		}
		for _, font := range group.Fonts {
			rm.resourceMap[font.ID] = buildFullPath(rm.config.BasePath, font.Path)
		}
	}
}

// PathOf returns the file path registered for a resource ID.
func (rm *ResourceManager) PathOf(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// ResourceIDs returns every registered resource ID in sorted order.
func (rm *ResourceManager) ResourceIDs() []string {
	return slices.Sorted(maps.Keys(rm.resourceMap))
}

// decoded holds the result of decoding one file on a worker goroutine.
type decoded struct {
	path  string
	kind  string // "image", "sound", "music", "font"
	image image.Image
	pcm   []byte
	font  *text.GoTextFaceSource
}

// LoadResourceGroup loads all resources in a group declared in resources.yaml.
//
// Files are read and decoded in parallel; missing files are logged and skipped.
// Any other read or decode failure aborts the whole group.
//
// Parameters:
//   - groupName: The name of the resource group (e.g., "init")
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	group, ok := rm.config.Groups[groupName]
	if !ok {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	type job struct {
		path string
		kind string
	}
	var jobs []job
	for _, e := range group.Images {
		jobs = append(jobs, job{rm.resourceMap[e.ID], "image"})
	}
	if rm.audioContext != nil {
		for _, e := range group.Sounds {
			jobs = append(jobs, job{rm.resourceMap[e.ID], "sound"})
		}
		for _, e := range group.Music {
			jobs = append(jobs, job{rm.resourceMap[e.ID], "music"})
		}
	}
	for _, e := range group.Fonts {
		jobs = append(jobs, job{rm.resourceMap[e.ID], "font"})
	}

	var (
		mu      sync.Mutex
		results = make([]decoded, 0, len(jobs))
		g       errgroup.Group
	)
	g.SetLimit(runtime.NumCPU())

	for _, j := range jobs {
		g.Go(func() error {
			d, err := rm.decodeFile(j.path, j.kind)
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("[ResourceManager] Warning: %s missing, using placeholder", j.path)
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, d)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load resource group %s: %w", groupName, err)
	}

	for _, d := range results {
		if err := rm.publish(d); err != nil {
			return fmt.Errorf("failed to load resource group %s: %w", groupName, err)
		}
	}

	log.Printf("[ResourceManager] Loaded group %s: %d of %d files", groupName, len(results), len(jobs))
	return nil
}

// decodeFile reads and decodes a single file. Safe to call from worker goroutines.
func (rm *ResourceManager) decodeFile(path, kind string) (decoded, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return decoded{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	d := decoded{path: path, kind: kind}
	switch kind {
	case "image":
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return decoded{}, fmt.Errorf("failed to decode image %s: %w", path, err)
		}
		d.image = img
	case "sound", "music":
		pcm, err := rm.decodeAudio(path, data)
		if err != nil {
			return decoded{}, err
		}
		d.pcm = pcm
	case "font":
		source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return decoded{}, fmt.Errorf("failed to create font source for %s: %w", path, err)
		}
		d.font = source
	}
	return d, nil
}

// decodeAudio decodes MP3 or OGG data into 16-bit stereo PCM at the context sample rate.
func (rm *ResourceManager) decodeAudio(path string, data []byte) ([]byte, error) {
	reader := bytes.NewReader(data)
	sampleRate := rm.audioContext.SampleRate()

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return pcm, nil
}

// publish stores a decoded file in the caches. Must run on the game loop goroutine.
func (rm *ResourceManager) publish(d decoded) error {
	switch d.kind {
	case "image":
		rm.imageCache[d.path] = ebiten.NewImageFromImage(d.image)
	case "sound":
		rm.soundCache[d.path] = d.pcm
	case "music":
		loop := audio.NewInfiniteLoop(bytes.NewReader(d.pcm), int64(len(d.pcm)))
		player, err := rm.audioContext.NewPlayer(loop)
		if err != nil {
			return fmt.Errorf("failed to create audio player for %s: %w", d.path, err)
		}
		rm.musicCache[d.path] = player
	case "font":
		rm.fontCache[d.path] = d.font
	}
	return nil
}

// GetImageByID returns a loaded image, or nil if it was never loaded or is missing.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	return rm.imageCache[rm.resourceMap[resourceID]]
}

// GetSoundByID returns the decoded PCM of a sound effect, or nil.
func (rm *ResourceManager) GetSoundByID(resourceID string) []byte {
	return rm.soundCache[rm.resourceMap[resourceID]]
}

// GetMusicByID returns the looping player for a music track, or nil.
func (rm *ResourceManager) GetMusicByID(resourceID string) *audio.Player {
	return rm.musicCache[rm.resourceMap[resourceID]]
}

// GetFontByID returns a text face of the given size for a font resource.
// When the font file is missing the bundled Go Regular face is used instead.
func (rm *ResourceManager) GetFontByID(resourceID string, size float64) (*text.GoTextFace, error) {
	path := rm.resourceMap[resourceID]
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if face, exists := rm.fontFaceCache[cacheKey]; exists {
		return face, nil
	}

	source := rm.fontCache[path]
	if source == nil {
		fallback, err := rm.fallbackFontSource()
		if err != nil {
			return nil, err
		}
		source = fallback
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// fallbackFontSource lazily parses the Go Regular font shipped with x/image.
func (rm *ResourceManager) fallbackFontSource() (*text.GoTextFaceSource, error) {
	if rm.fallbackFont != nil {
		return rm.fallbackFont, nil
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load fallback font: %w", err)
	}
	rm.fallbackFont = source
	return source, nil
}

package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
//	    music: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
type ResourceGroup struct {
	Images []ResourceEntry `yaml:"images"` // Still images (backgrounds, decals, cursors)
	Sounds []ResourceEntry `yaml:"sounds"` // One-shot sound effects
	Music  []ResourceEntry `yaml:"music"`  // Looping background music
	Fonts  []ResourceEntry `yaml:"fonts"`  // TrueType/OpenType fonts
}

// ResourceEntry maps a resource ID to a file path relative to base_path.
//
// Example:
//   - id: SOUND_GUNSHOT
//     path: sounds/gunshot.mp3
type ResourceEntry struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// ParseResourceConfig parses data/resources.yaml and rejects duplicate IDs.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	seen := make(map[string]string)
	for groupName, group := range config.Groups {
		for _, list := range [][]ResourceEntry{group.Images, group.Sounds, group.Music, group.Fonts} {
			for _, entry := range list {
				if entry.ID == "" || entry.Path == "" {
					return nil, fmt.Errorf("group %s: resource entry needs both id and path", groupName)
				}
				if other, dup := seen[entry.ID]; dup {
					return nil, fmt.Errorf("duplicate resource ID %s in groups %s and %s", entry.ID, other, groupName)
				}
				seen[entry.ID] = groupName
			}
		}
	}

	return &config, nil
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Parameters:
//   - basePath: The base path from ResourceConfig (e.g., "assets")
//   - relativePath: The resource's relative path (e.g., "images/saloon_001.jpg")
//
// Returns:
//   - The full file path (e.g., "assets/images/saloon_001.jpg")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}

package config

import (
	"fmt"

	"github.com/decker502/saloon/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// PropSpec 视角内一个可射击道具的配置
type PropSpec struct {
	Type        string `yaml:"type"`        // 道具类型（bottle, window, lamp ...）
	X           int    `yaml:"x"`           // 左上角 X（屏幕坐标）
	Y           int    `yaml:"y"`           // 左上角 Y（屏幕坐标）
	Width       int    `yaml:"width"`       // 宽度
	Height      int    `yaml:"height"`      // 高度
	Bulletproof bool   `yaml:"bulletproof"` // 是否防弹
}

// ViewSpec 一个全景视角的配置
type ViewSpec struct {
	Name       string     `yaml:"name"`       // 视角名称（日志用）
	Background string     `yaml:"background"` // 背景图资源ID
	Props      []PropSpec `yaml:"props"`      // 道具列表，顺序即命中判定顺序
}

// SaloonConfig 酒馆场景配置
type SaloonConfig struct {
	DefaultWeapon string     `yaml:"defaultWeapon"` // 开局武器
	Views         []ViewSpec `yaml:"views"`         // 视角循环序列
}

// LoadSaloonConfig 从嵌入文件系统加载酒馆布局
func LoadSaloonConfig(path string) (*SaloonConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read saloon config %s: %w", path, err)
	}

	config, err := ParseSaloonConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid saloon config %s: %w", path, err)
	}
	return config, nil
}

// ParseSaloonConfig 解析 YAML 格式的酒馆布局并校验
func ParseSaloonConfig(data []byte) (*SaloonConfig, error) {
	var config SaloonConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse saloon YAML: %w", err)
	}

	if err := validateSaloon(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// validateSaloon 校验布局：至少一个视角，道具尺寸为正
// 武器名是否存在由 game.NewArmory 对照武器目录校验
func validateSaloon(config *SaloonConfig) error {
	if config.DefaultWeapon == "" {
		return fmt.Errorf("defaultWeapon is required")
	}
	if len(config.Views) == 0 {
		return fmt.Errorf("at least one view is required")
	}

	for i, view := range config.Views {
		if view.Background == "" {
			return fmt.Errorf("view %d (%s): background is required", i, view.Name)
		}
		for j, prop := range view.Props {
			if prop.Width <= 0 || prop.Height <= 0 {
				return fmt.Errorf("view %d (%s): prop %d (%s) must have positive size, got %dx%d",
					i, view.Name, j, prop.Type, prop.Width, prop.Height)
			}
		}
	}

	return nil
}

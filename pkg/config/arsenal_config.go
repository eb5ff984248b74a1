package config

import (
	"fmt"

	"github.com/decker502/saloon/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// WeaponSpec 单把武器的配置
type WeaponSpec struct {
	Name     string  `yaml:"name"`     // 武器名称（目录主键）
	AmmoType string  `yaml:"ammoType"` // 使用的弹药类型ID
	Damage   int     `yaml:"damage"`   // 伤害
	Accuracy float64 `yaml:"accuracy"` // 精度 0.0 ~ 1.0
	Range    int     `yaml:"range"`    // 射程
}

// AmmoSpec 单种弹药的配置
type AmmoSpec struct {
	ID            string `yaml:"id"`            // 弹药类型ID（如 ".45 Colt"）
	Penetration   int    `yaml:"penetration"`   // 穿透力
	ArmorPiercing bool   `yaml:"armorPiercing"` // 是否为穿甲弹（可击毁防弹道具）
}

// ArsenalConfig 武器目录配置文件结构
// 使用列表而非映射，保证武器顺序稳定
type ArsenalConfig struct {
	Weapons []WeaponSpec `yaml:"weapons"`
	Ammo    []AmmoSpec   `yaml:"ammo"`
}

// LoadArsenalConfig 从嵌入文件系统加载武器目录
//
// 参数：
//   - path: 配置文件路径（如 "data/arsenal.yaml"）
//
// 返回：
//   - *ArsenalConfig: 解析并校验后的配置
//   - error: 读取、解析或校验失败
func LoadArsenalConfig(path string) (*ArsenalConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arsenal config %s: %w", path, err)
	}

	config, err := ParseArsenalConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid arsenal config %s: %w", path, err)
	}
	return config, nil
}

// ParseArsenalConfig 解析 YAML 格式的武器目录并校验
func ParseArsenalConfig(data []byte) (*ArsenalConfig, error) {
	var config ArsenalConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse arsenal YAML: %w", err)
	}

	if err := validateArsenal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// validateArsenal 校验武器目录的完整性
// 武器引用的弹药类型必须已声明，名称不可重复
func validateArsenal(config *ArsenalConfig) error {
	if len(config.Weapons) == 0 {
		return fmt.Errorf("at least one weapon is required")
	}
	if len(config.Ammo) == 0 {
		return fmt.Errorf("at least one ammo type is required")
	}

	ammoIDs := make(map[string]bool, len(config.Ammo))
	for _, ammo := range config.Ammo {
		if ammo.ID == "" {
			return fmt.Errorf("ammo type with empty id")
		}
		if ammoIDs[ammo.ID] {
			return fmt.Errorf("duplicate ammo type %q", ammo.ID)
		}
		if ammo.Penetration < 0 {
			return fmt.Errorf("ammo %s: penetration cannot be negative, got %d", ammo.ID, ammo.Penetration)
		}
		ammoIDs[ammo.ID] = true
	}

	names := make(map[string]bool, len(config.Weapons))
	for _, weapon := range config.Weapons {
		if weapon.Name == "" {
			return fmt.Errorf("weapon with empty name")
		}
		if names[weapon.Name] {
			return fmt.Errorf("duplicate weapon %q", weapon.Name)
		}
		names[weapon.Name] = true

		if !ammoIDs[weapon.AmmoType] {
			return fmt.Errorf("weapon %s: unknown ammo type %q", weapon.Name, weapon.AmmoType)
		}
		if weapon.Damage < 0 {
			return fmt.Errorf("weapon %s: damage cannot be negative, got %d", weapon.Name, weapon.Damage)
		}
		if weapon.Accuracy < 0 || weapon.Accuracy > 1 {
			return fmt.Errorf("weapon %s: accuracy must be within [0, 1], got %v", weapon.Name, weapon.Accuracy)
		}
		if weapon.Range < 0 {
			return fmt.Errorf("weapon %s: range cannot be negative, got %d", weapon.Name, weapon.Range)
		}
	}

	return nil
}

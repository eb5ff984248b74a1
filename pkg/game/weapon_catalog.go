package game

import (
	"fmt"

	"github.com/decker502/saloon/pkg/config"
)

// WeaponDefinition 武器定义（只读）
type WeaponDefinition struct {
	Name     string
	AmmoType string
	Damage   int
	Accuracy float64
	Range    int
}

// AmmoDefinition 弹药定义（只读）
type AmmoDefinition struct {
	ID            string
	Penetration   int
	ArmorPiercing bool
}

// WeaponCatalog 武器与弹药的静态目录
// 构建后不再修改，查询方法可以任意调用
type WeaponCatalog struct {
	weapons     map[string]WeaponDefinition
	ammo        map[string]AmmoDefinition
	weaponOrder []string
	ammoOrder   []string
}

// NewWeaponCatalog 根据武器目录配置构建目录
//
// 参数：
//   - cfg: 已解析的武器目录配置
//
// 返回：
//   - *WeaponCatalog: 目录实例
//   - error: *ConfigurationError，当武器引用了未声明的弹药或名称重复时
func NewWeaponCatalog(cfg *config.ArsenalConfig) (*WeaponCatalog, error) {
	if cfg == nil || len(cfg.Weapons) == 0 {
		return nil, &ConfigurationError{Subject: "weapon catalog", Err: fmt.Errorf("no weapons defined")}
	}

	c := &WeaponCatalog{
		weapons: make(map[string]WeaponDefinition, len(cfg.Weapons)),
		ammo:    make(map[string]AmmoDefinition, len(cfg.Ammo)),
	}

	for _, spec := range cfg.Ammo {
		if _, exists := c.ammo[spec.ID]; exists {
			return nil, &ConfigurationError{Subject: "ammo " + spec.ID, Err: fmt.Errorf("duplicate ammo type")}
		}
		c.ammo[spec.ID] = AmmoDefinition{
			ID:            spec.ID,
			Penetration:   spec.Penetration,
			ArmorPiercing: spec.ArmorPiercing,
		}
		c.ammoOrder = append(c.ammoOrder, spec.ID)
	}

	for _, spec := range cfg.Weapons {
		if _, exists := c.weapons[spec.Name]; exists {
			return nil, &ConfigurationError{Subject: "weapon " + spec.Name, Err: fmt.Errorf("duplicate weapon")}
		}
		if _, exists := c.ammo[spec.AmmoType]; !exists {
			return nil, &ConfigurationError{
				Subject: "weapon " + spec.Name,
				Err:     fmt.Errorf("%w: %s", ErrUnknownAmmo, spec.AmmoType),
			}
		}
		c.weapons[spec.Name] = WeaponDefinition{
			Name:     spec.Name,
			AmmoType: spec.AmmoType,
			Damage:   spec.Damage,
			Accuracy: spec.Accuracy,
			Range:    spec.Range,
		}
		c.weaponOrder = append(c.weaponOrder, spec.Name)
	}

	return c, nil
}

// DefinitionOf 按名称查询武器定义
// 名称不存在时返回 ErrUnknownWeapon
func (c *WeaponCatalog) DefinitionOf(name string) (WeaponDefinition, error) {
	def, ok := c.weapons[name]
	if !ok {
		return WeaponDefinition{}, fmt.Errorf("%w: %s", ErrUnknownWeapon, name)
	}
	return def, nil
}

// AmmoDefinitionOf 按弹药类型ID查询弹药定义
// ID 不存在时返回 ErrUnknownAmmo
func (c *WeaponCatalog) AmmoDefinitionOf(ammoTypeID string) (AmmoDefinition, error) {
	def, ok := c.ammo[ammoTypeID]
	if !ok {
		return AmmoDefinition{}, fmt.Errorf("%w: %s", ErrUnknownAmmo, ammoTypeID)
	}
	return def, nil
}

// WeaponNames 按目录顺序返回全部武器名称
func (c *WeaponCatalog) WeaponNames() []string {
	names := make([]string, len(c.weaponOrder))
	copy(names, c.weaponOrder)
	return names
}

// AmmoIDs 按目录顺序返回全部弹药类型ID
func (c *WeaponCatalog) AmmoIDs() []string {
	ids := make([]string, len(c.ammoOrder))
	copy(ids, c.ammoOrder)
	return ids
}

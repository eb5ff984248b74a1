package game

import (
	"log"

	"github.com/decker502/saloon/pkg/config"
)

// Armory 玩家的武器选择与弹药库存
// 库存对目录中每种弹药都有一项，初始为 config.StartingAmmo，永不为负
type Armory struct {
	catalog *WeaponCatalog
	current WeaponDefinition
	stock   map[string]int
}

// NewArmory 创建弹药库并装备默认武器
//
// 参数：
//   - catalog: 武器目录
//   - defaultWeapon: 开局武器名称
//
// 返回：
//   - *Armory: 弹药库实例
//   - error: *ConfigurationError，默认武器不在目录中时（启动即失败）
func NewArmory(catalog *WeaponCatalog, defaultWeapon string) (*Armory, error) {
	weapon, err := catalog.DefinitionOf(defaultWeapon)
	if err != nil {
		return nil, &ConfigurationError{Subject: "default weapon", Err: err}
	}

	stock := make(map[string]int)
	for _, id := range catalog.AmmoIDs() {
		stock[id] = config.StartingAmmo
	}

	return &Armory{
		catalog: catalog,
		current: weapon,
		stock:   stock,
	}, nil
}

// SwitchWeapon 切换当前武器
// 名称不在目录中时静默忽略并返回 false
func (a *Armory) SwitchWeapon(name string) bool {
	weapon, err := a.catalog.DefinitionOf(name)
	if err != nil {
		log.Printf("[Armory] Ignoring weapon switch: %v", err)
		return false
	}
	a.current = weapon
	return true
}

// Fire 尝试开火
// 当前武器的弹药库存大于 0 时扣减一发并返回 true；
// 否则返回 false 且不产生任何副作用（空枪）
func (a *Armory) Fire() bool {
	if a.stock[a.current.AmmoType] <= 0 {
		return false
	}
	a.stock[a.current.AmmoType]--
	return true
}

// CurrentWeapon 返回当前武器
func (a *Armory) CurrentWeapon() WeaponDefinition {
	return a.current
}

// CurrentAmmo 返回当前武器使用的弹药定义
func (a *Armory) CurrentAmmo() AmmoDefinition {
	// 目录构建时已保证武器引用的弹药存在
	ammo, _ := a.catalog.AmmoDefinitionOf(a.current.AmmoType)
	return ammo
}

// Stock 返回指定弹药的剩余数量，未知类型返回 0
func (a *Armory) Stock(ammoTypeID string) int {
	return a.stock[ammoTypeID]
}

// Rounds 返回当前武器剩余的弹药数量
func (a *Armory) Rounds() int {
	return a.stock[a.current.AmmoType]
}

package game

import "image"

// Prop 视角中一个可射击的道具（酒瓶、窗户、吊灯、镜子等）
//
// 命中规则：非防弹道具被任意弹药击中即毁坏；
// 防弹道具只有穿甲弹才能击毁，其他弹药只会跳弹。
// 毁坏后的道具不再参与命中判定和渲染。
type Prop struct {
	Rect        image.Rectangle
	TypeID      string
	Bulletproof bool

	destroyed bool
}

// NewProp 创建道具
func NewProp(rect image.Rectangle, typeID string, bulletproof bool) *Prop {
	return &Prop{
		Rect:        rect,
		TypeID:      typeID,
		Bulletproof: bulletproof,
	}
}

// Destroyed 返回道具是否已毁坏
func (p *Prop) Destroyed() bool {
	return p.destroyed
}

// Contains 判断瞄准点是否落在未毁坏的道具矩形内
// 矩形为左闭右开区间（与 image.Point.In 一致）
func (p *Prop) Contains(pt image.Point) bool {
	return !p.destroyed && pt.In(p.Rect)
}

// Hit 结算一次命中
//
// 参数：
//   - ammo: 命中所用弹药
//
// 返回：
//   - bool: 本次命中是否击毁了道具
func (p *Prop) Hit(ammo AmmoDefinition) bool {
	if p.destroyed {
		return false
	}
	if p.Bulletproof && !ammo.ArmorPiercing {
		return false
	}
	p.destroyed = true
	return true
}

package game

import (
	"image"
	"log"

	"github.com/decker502/saloon/pkg/config"
)

// ShotResult 一次有效射击的结算结果
type ShotResult struct {
	Effects     []Effect // 按产生顺序排列，第一个必定是 EffectGunshot
	Target      *Prop    // 命中的道具，打在背景上时为 nil
	Destroyed   bool     // Target 是否被本次射击击毁
	DecalPlaced bool     // 是否成功记录了弹孔
}

// HitResolver 命中判定
//
// 结算顺序：
//  1. 产生枪声
//  2. 按创建顺序扫描当前视角中未毁坏的道具，第一个包含瞄准点的即为目标
//  3. 有目标：按道具规则结算，击毁则产生破碎音效，否则产生跳弹音效
//  4. 无目标：以 config.BackgroundRicochetChance 的概率产生跳弹音效，
//     并且无论是否跳弹都尝试记录弹孔（受每视角上限约束）
type HitResolver struct {
	rng            RandomSource
	ricochetChance float64
}

// NewHitResolver 创建命中判定器
//
// 参数：
//   - rng: 随机数来源（背景跳弹判定使用）
func NewHitResolver(rng RandomSource) *HitResolver {
	return &HitResolver{
		rng:            rng,
		ricochetChance: config.BackgroundRicochetChance,
	}
}

// Resolve 结算一次已通过弹药检查的射击
//
// 参数：
//   - saloon: 场景图（读取当前视角，必要时记录弹孔）
//   - aim: 瞄准点（点击时的指针位置）
//   - ammo: 当前武器的弹药定义
//
// 返回：
//   - ShotResult: 结算结果
func (r *HitResolver) Resolve(saloon *Saloon, aim image.Point, ammo AmmoDefinition) ShotResult {
	result := ShotResult{Effects: []Effect{EffectGunshot}}
	view := saloon.CurrentView()

	if target := view.PropAt(aim); target != nil {
		result.Target = target
		if target.Hit(ammo) {
			result.Destroyed = true
			result.Effects = append(result.Effects, EffectBreak)
			log.Printf("[HitResolver] %s destroyed at %v", target.TypeID, aim)
		} else {
			result.Effects = append(result.Effects, EffectRicochet)
			log.Printf("[HitResolver] %s deflected %s at %v", target.TypeID, ammo.ID, aim)
		}
		return result
	}

	// 打在背景上：跳弹判定与弹孔记录相互独立
	if r.rng.Float64() < r.ricochetChance {
		result.Effects = append(result.Effects, EffectRicochet)
	}
	result.DecalPlaced = saloon.AddDecal(aim)

	return result
}

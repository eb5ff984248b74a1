package game

import (
	"math/rand/v2"
	"time"
)

// RandomSource 随机数来源，Float64 返回 [0, 1) 区间的值
// 注入到 HitResolver 中，测试时可替换为固定序列
type RandomSource interface {
	Float64() float64
}

// NewSeededRandom 创建指定种子的随机数来源
func NewSeededRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTimeSeededRandom 以当前时间为种子创建随机数来源
func NewTimeSeededRandom() *rand.Rand {
	return NewSeededRandom(uint64(time.Now().UnixNano()))
}

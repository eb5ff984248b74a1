package game

import "image"

// CursorStyle 光标样式
type CursorStyle int

const (
	// CursorHand 收枪时的手形光标
	CursorHand CursorStyle = iota
	// CursorCrosshair 拔枪后的准星
	CursorCrosshair
)

// RenderCommand 一帧的绘制指令，渲染层按顺序执行
// 渲染层只读取指令，不向游戏核心反馈任何状态
type RenderCommand interface {
	renderCommand()
}

// DrawBackground 绘制当前视角背景
type DrawBackground struct {
	ResourceID string
}

// DrawDecal 绘制一个弹孔
type DrawDecal struct {
	Pos image.Point
}

// DrawProp 绘制一个未毁坏的道具
type DrawProp struct {
	Rect        image.Rectangle
	TypeID      string
	Bulletproof bool
}

// DrawHUD 绘制武器与弹药信息
type DrawHUD struct {
	Weapon    string
	AmmoType  string
	Rounds    int
	ViewIndex int
	ViewCount int
}

// DrawMenu 绘制暂停菜单
type DrawMenu struct {
	Options       []string
	Selected      int
	MusicOn       bool
	VolumePercent int
}

// DrawCursor 绘制光标
type DrawCursor struct {
	Style CursorStyle
	Pos   image.Point
}

func (DrawBackground) renderCommand() {}
func (DrawDecal) renderCommand()      {}
func (DrawProp) renderCommand()       {}
func (DrawHUD) renderCommand()        {}
func (DrawMenu) renderCommand()       {}
func (DrawCursor) renderCommand()     {}

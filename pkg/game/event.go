package game

import "image"

// EventKind 输入事件类型
type EventKind int

const (
	// EventQuit 窗口关闭
	EventQuit EventKind = iota + 1
	// EventKeyDown 按键按下
	EventKeyDown
	// EventMouseDown 鼠标按下
	EventMouseDown
	// EventMouseMove 指针移动
	EventMouseMove
)

// Key 游戏关心的按键，与具体输入库解耦
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEnter
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
)

// MouseButton 鼠标按键
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota + 1
	MouseButtonMiddle
	MouseButtonRight
)

// Event 一条离散输入事件
type Event struct {
	Kind   EventKind
	Key    Key         // EventKeyDown
	Button MouseButton // EventMouseDown
	Pos    image.Point // EventMouseDown / EventMouseMove
}

// QuitEvent 构造窗口关闭事件
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyDownEvent 构造按键事件
func KeyDownEvent(key Key) Event {
	return Event{Kind: EventKeyDown, Key: key}
}

// MouseDownEvent 构造鼠标按下事件
func MouseDownEvent(button MouseButton, pos image.Point) Event {
	return Event{Kind: EventMouseDown, Button: button, Pos: pos}
}

// MouseMoveEvent 构造指针移动事件
func MouseMoveEvent(pos image.Point) Event {
	return Event{Kind: EventMouseMove, Pos: pos}
}

// digitIndex 数字键 1..9 对应的下标 0..8
func digitIndex(key Key) (int, bool) {
	if key < KeyDigit1 || key > KeyDigit9 {
		return 0, false
	}
	return int(key - KeyDigit1), true
}

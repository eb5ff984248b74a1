package scenes

import (
	"image"

	"github.com/decker502/saloon/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource 每帧的原始输入
// 默认实现直接读取 ebiten 的输入状态，测试中可替换
type InputSource interface {
	// AppendJustPressedKeys 追加本帧刚按下的键
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	// IsMouseButtonJustPressed 鼠标键是否在本帧刚按下
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	// CursorPosition 指针位置（逻辑屏幕坐标）
	CursorPosition() image.Point
	// IsWindowBeingClosed 用户是否请求关闭窗口
	IsWindowBeingClosed() bool
}

// ebitenInput 读取 ebiten 全局输入状态
type ebitenInput struct{}

func (ebitenInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenInput) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (ebitenInput) CursorPosition() image.Point {
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y)
}

func (ebitenInput) IsWindowBeingClosed() bool {
	return ebiten.IsWindowBeingClosed()
}

// keyMap ebiten 按键到游戏按键的映射，未列出的键被忽略
var keyMap = map[ebiten.Key]game.Key{
	ebiten.KeyEscape:      game.KeyEscape,
	ebiten.KeyArrowLeft:   game.KeyLeft,
	ebiten.KeyArrowRight:  game.KeyRight,
	ebiten.KeyArrowUp:     game.KeyUp,
	ebiten.KeyArrowDown:   game.KeyDown,
	ebiten.KeySpace:       game.KeySpace,
	ebiten.KeyEnter:       game.KeyEnter,
	ebiten.KeyNumpadEnter: game.KeyEnter,
	ebiten.KeyDigit1:      game.KeyDigit1,
	ebiten.KeyDigit2:      game.KeyDigit2,
	ebiten.KeyDigit3:      game.KeyDigit3,
	ebiten.KeyDigit4:      game.KeyDigit4,
	ebiten.KeyDigit5:      game.KeyDigit5,
	ebiten.KeyDigit6:      game.KeyDigit6,
	ebiten.KeyDigit7:      game.KeyDigit7,
	ebiten.KeyDigit8:      game.KeyDigit8,
	ebiten.KeyDigit9:      game.KeyDigit9,
}

// mouseButtons 按检查顺序排列的鼠标键
var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	game   game.MouseButton
}{
	{ebiten.MouseButtonLeft, game.MouseButtonLeft},
	{ebiten.MouseButtonMiddle, game.MouseButtonMiddle},
	{ebiten.MouseButtonRight, game.MouseButtonRight},
}

// eventCollector 把 ebiten 的轮询式输入转换为离散事件
type eventCollector struct {
	input       InputSource
	keys        []ebiten.Key
	lastCursor  image.Point
	cursorKnown bool
}

// collect 返回本帧的事件，顺序为：关闭、指针移动、按键、鼠标键
func (c *eventCollector) collect() []game.Event {
	var events []game.Event

	if c.input.IsWindowBeingClosed() {
		events = append(events, game.QuitEvent())
	}

	pos := c.input.CursorPosition()
	if !c.cursorKnown || pos != c.lastCursor {
		events = append(events, game.MouseMoveEvent(pos))
		c.lastCursor = pos
		c.cursorKnown = true
	}

	c.keys = c.input.AppendJustPressedKeys(c.keys[:0])
	for _, k := range c.keys {
		if key, ok := keyMap[k]; ok {
			events = append(events, game.KeyDownEvent(key))
		}
	}

	for _, b := range mouseButtons {
		if c.input.IsMouseButtonJustPressed(b.ebiten) {
			events = append(events, game.MouseDownEvent(b.game, pos))
		}
	}
	return events
}

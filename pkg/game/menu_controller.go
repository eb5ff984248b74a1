package game

import (
	"image"
	"log"
	"math"

	"github.com/decker502/saloon/pkg/config"
)

// MenuOption 暂停菜单项
type MenuOption int

const (
	MenuResume MenuOption = iota
	MenuQuit
	MenuMusicToggle
	MenuVolumeUp
	MenuVolumeDown
)

var menuLabels = []string{
	MenuResume:      "Resume",
	MenuQuit:        "Quit",
	MenuMusicToggle: "Music: ON/OFF",
	MenuVolumeUp:    "Volume Up",
	MenuVolumeDown:  "Volume Down",
}

// MenuLabels 按显示顺序返回菜单项文字
func MenuLabels() []string {
	labels := make([]string, len(menuLabels))
	copy(labels, menuLabels)
	return labels
}

// MenuAction 激活菜单项后需要会话处理的结果
type MenuAction int

const (
	// MenuActionNone 无需会话处理（包括音乐/音量调整）
	MenuActionNone MenuAction = iota
	// MenuActionResume 已恢复游戏
	MenuActionResume
	// MenuActionQuit 请求结束会话
	MenuActionQuit
)

// MenuController 暂停菜单状态机
//
// 两个状态：Playing / Paused，由 SessionState.Paused 表示。
// Toggle 无条件切换；暂停期间只接受菜单导航与激活。
// 音乐与音量选项委托给 AudioController，执行后保持暂停。
type MenuController struct {
	state    *SessionState
	audio    AudioController
	layout   MenuLayout
	selected int
}

// NewMenuController 创建暂停菜单控制器
//
// 参数：
//   - state: 会话状态（由 GameSession 持有）
//   - audio: 音频控制器
//   - layout: 菜单项边界，可为 nil（此时忽略鼠标点击）
func NewMenuController(state *SessionState, audio AudioController, layout MenuLayout) *MenuController {
	return &MenuController{
		state:  state,
		audio:  audio,
		layout: layout,
	}
}

// SetLayout 更新菜单项边界（字体加载完成后由渲染层设置）
func (m *MenuController) SetLayout(layout MenuLayout) {
	m.layout = layout
}

// Toggle 切换暂停状态
func (m *MenuController) Toggle() {
	m.state.Paused = !m.state.Paused
	log.Printf("[MenuController] Paused: %v", m.state.Paused)
}

// Paused 返回是否处于暂停状态
func (m *MenuController) Paused() bool {
	return m.state.Paused
}

// Selected 返回当前选中项
func (m *MenuController) Selected() MenuOption {
	return MenuOption(m.selected)
}

// MoveUp 选中上一项，首项再上移回到末项
func (m *MenuController) MoveUp() {
	n := len(menuLabels)
	m.selected = (m.selected - 1 + n) % n
}

// MoveDown 选中下一项，末项再下移回到首项
func (m *MenuController) MoveDown() {
	m.selected = (m.selected + 1) % len(menuLabels)
}

// Select 直接选中指定项，越界时忽略并返回 false
func (m *MenuController) Select(index int) bool {
	if index < 0 || index >= len(menuLabels) {
		return false
	}
	m.selected = index
	return true
}

// Activate 激活当前选中项
func (m *MenuController) Activate() MenuAction {
	switch MenuOption(m.selected) {
	case MenuResume:
		m.state.Paused = false
		log.Printf("[MenuController] Resume")
		return MenuActionResume
	case MenuQuit:
		log.Printf("[MenuController] Quit requested")
		return MenuActionQuit
	case MenuMusicToggle:
		m.audio.MusicToggle()
	case MenuVolumeUp:
		m.audio.SetVolume(math.Min(m.audio.CurrentVolume()+config.MusicVolumeIncrement, 1.0))
	case MenuVolumeDown:
		m.audio.SetVolume(math.Max(m.audio.CurrentVolume()-config.MusicVolumeIncrement, 0.0))
	}
	m.syncAudioState()
	return MenuActionNone
}

// Click 处理指针点击：命中某一项时选中并立即激活
// 未命中任何项时不做任何处理
func (m *MenuController) Click(pos image.Point) MenuAction {
	if m.layout == nil {
		return MenuActionNone
	}
	index, ok := m.layout.OptionAt(pos)
	if !ok || !m.Select(index) {
		return MenuActionNone
	}
	return m.Activate()
}

// HandleEvent 处理暂停期间的一条输入事件
func (m *MenuController) HandleEvent(ev Event) MenuAction {
	switch ev.Kind {
	case EventKeyDown:
		switch ev.Key {
		case KeyUp:
			m.MoveUp()
		case KeyDown:
			m.MoveDown()
		case KeyEnter:
			return m.Activate()
		}
	case EventMouseDown:
		return m.Click(ev.Pos)
	}
	return MenuActionNone
}

// syncAudioState 把音频控制器的状态同步到会话状态
func (m *MenuController) syncAudioState() {
	m.state.MusicOn = m.audio.IsMusicPlaying()
	m.state.Volume = m.audio.CurrentVolume()
}

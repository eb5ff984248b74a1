package game

import (
	"image"
	"log"
	"math"

	"github.com/google/uuid"
)

// SessionState 一局游戏的界面状态，只存在于进程内存中
type SessionState struct {
	Paused      bool
	WeaponDrawn bool
	MusicOn     bool
	Volume      float64
}

// GameSession 游戏会话
//
// 持有全部玩法状态，由外部每帧调用一次 Step 驱动：
// 按到达顺序处理本帧的全部输入事件，每条事件的状态修改在处理下一条之前完成，
// 然后返回本帧的绘制指令。所有状态修改都发生在调用 Step 的协程上。
type GameSession struct {
	id       uuid.UUID
	state    SessionState
	catalog  *WeaponCatalog
	armory   *Armory
	saloon   *Saloon
	resolver *HitResolver
	menu     *MenuController
	audio    AudioController

	cursor     image.Point
	terminated bool
	lastShot   *ShotResult
}

// NewGameSession 组装游戏会话
//
// 参数：
//   - catalog: 武器目录（数字键选枪使用其顺序）
//   - armory: 弹药库
//   - saloon: 场景图
//   - resolver: 命中判定器
//   - audio: 音频控制器
//   - layout: 暂停菜单边界，可为 nil，稍后通过 Menu().SetLayout 设置
func NewGameSession(
	catalog *WeaponCatalog,
	armory *Armory,
	saloon *Saloon,
	resolver *HitResolver,
	audio AudioController,
	layout MenuLayout,
) *GameSession {
	s := &GameSession{
		id:       uuid.New(),
		catalog:  catalog,
		armory:   armory,
		saloon:   saloon,
		resolver: resolver,
		audio:    audio,
	}
	s.state.MusicOn = audio.IsMusicPlaying()
	s.state.Volume = audio.CurrentVolume()
	s.menu = NewMenuController(&s.state, audio, layout)

	log.Printf("[GameSession] Session %s started with %s", s.id, armory.CurrentWeapon().Name)
	return s
}

// Step 处理一帧的输入事件并返回绘制指令
func (s *GameSession) Step(events []Event) []RenderCommand {
	for _, ev := range events {
		if s.terminated {
			break
		}
		s.handleEvent(ev)
	}
	return s.renderCommands()
}

// handleEvent 处理单条事件
func (s *GameSession) handleEvent(ev Event) {
	switch ev.Kind {
	case EventQuit:
		s.terminate("window closed")
		return
	case EventMouseMove:
		s.cursor = ev.Pos
	case EventKeyDown:
		if ev.Key == KeyEscape {
			s.menu.Toggle()
		} else if !s.state.Paused {
			s.handleGameplayKey(ev.Key)
		}
	case EventMouseDown:
		s.cursor = ev.Pos
		if ev.Button == MouseButtonLeft && s.state.WeaponDrawn && !s.state.Paused {
			s.fire(ev.Pos)
		}
	default:
		return
	}

	// 暂停期间（包括刚刚被 Escape 打开的那一帧）事件同时交给菜单
	if s.state.Paused {
		if s.menu.HandleEvent(ev) == MenuActionQuit {
			s.terminate("quit from menu")
		}
	}
}

// handleGameplayKey 处理游戏进行中的按键
func (s *GameSession) handleGameplayKey(key Key) {
	switch key {
	case KeyLeft:
		s.saloon.ChangeView(DirectionLeft)
	case KeyRight:
		s.saloon.ChangeView(DirectionRight)
	case KeySpace:
		s.state.WeaponDrawn = !s.state.WeaponDrawn
	default:
		if i, ok := digitIndex(key); ok {
			names := s.catalog.WeaponNames()
			if i < len(names) {
				s.armory.SwitchWeapon(names[i])
			}
		}
	}
}

// fire 执行一次开火：弹药不足时为空枪，不产生任何效果
func (s *GameSession) fire(aim image.Point) {
	if !s.armory.Fire() {
		log.Printf("[GameSession] Dry fire: %s out of %s", s.armory.CurrentWeapon().Name, s.armory.CurrentWeapon().AmmoType)
		return
	}

	result := s.resolver.Resolve(s.saloon, aim, s.armory.CurrentAmmo())
	for _, effect := range result.Effects {
		playEffect(s.audio, effect)
	}
	s.lastShot = &result
}

// terminate 结束会话
func (s *GameSession) terminate(reason string) {
	if s.terminated {
		return
	}
	s.terminated = true
	log.Printf("[GameSession] Session %s terminated: %s", s.id, reason)
}

// renderCommands 根据当前状态生成绘制指令
func (s *GameSession) renderCommands() []RenderCommand {
	cursor := DrawCursor{Style: CursorHand, Pos: s.cursor}
	if s.state.WeaponDrawn {
		cursor.Style = CursorCrosshair
	}

	if s.state.Paused {
		return []RenderCommand{
			DrawMenu{
				Options:       MenuLabels(),
				Selected:      int(s.menu.Selected()),
				MusicOn:       s.state.MusicOn,
				VolumePercent: int(math.Round(s.state.Volume * 100)),
			},
			cursor,
		}
	}

	view := s.saloon.CurrentView()
	decals := view.Decals()
	live := view.LiveProps()

	commands := make([]RenderCommand, 0, 3+len(decals)+len(live))
	commands = append(commands, DrawBackground{ResourceID: view.Background})
	for _, pos := range decals {
		commands = append(commands, DrawDecal{Pos: pos})
	}
	for _, prop := range live {
		commands = append(commands, DrawProp{Rect: prop.Rect, TypeID: prop.TypeID, Bulletproof: prop.Bulletproof})
	}

	weapon := s.armory.CurrentWeapon()
	commands = append(commands,
		DrawHUD{
			Weapon:    weapon.Name,
			AmmoType:  weapon.AmmoType,
			Rounds:    s.armory.Rounds(),
			ViewIndex: s.saloon.CurrentIndex(),
			ViewCount: s.saloon.ViewCount(),
		},
		cursor,
	)
	return commands
}

// ID 返回会话ID
func (s *GameSession) ID() uuid.UUID {
	return s.id
}

// State 返回会话状态的副本
func (s *GameSession) State() SessionState {
	return s.state
}

// Terminated 返回会话是否已结束
func (s *GameSession) Terminated() bool {
	return s.terminated
}

// Armory 返回弹药库
func (s *GameSession) Armory() *Armory {
	return s.armory
}

// Saloon 返回场景图
func (s *GameSession) Saloon() *Saloon {
	return s.saloon
}

// Menu 返回暂停菜单控制器
func (s *GameSession) Menu() *MenuController {
	return s.menu
}

// LastShot 返回最近一次有效射击的结果，尚未开火时返回 nil
func (s *GameSession) LastShot() *ShotResult {
	return s.lastShot
}

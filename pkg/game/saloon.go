package game

import (
	"image"
	"log"

	"github.com/decker502/saloon/pkg/config"
)

// Direction 视角切换方向
type Direction int

const (
	// DirectionLeft 向左切换（index-1）
	DirectionLeft Direction = iota + 1
	// DirectionRight 向右切换（index+1）
	DirectionRight
)

// View 酒馆的一个全景视角
// 持有背景图、道具列表（创建顺序）和弹孔列表（最多 config.MaxBulletHoles 个）
type View struct {
	Name       string
	Background string // 背景图资源ID
	Props      []*Prop

	decals []image.Point
}

// Decals 返回弹孔位置的副本，按记录顺序
func (v *View) Decals() []image.Point {
	decals := make([]image.Point, len(v.decals))
	copy(decals, v.decals)
	return decals
}

// LiveProps 返回未毁坏的道具，按创建顺序
func (v *View) LiveProps() []*Prop {
	live := make([]*Prop, 0, len(v.Props))
	for _, prop := range v.Props {
		if !prop.Destroyed() {
			live = append(live, prop)
		}
	}
	return live
}

// PropAt 返回第一个包含瞄准点的未毁坏道具
// 重叠道具只按列表顺序区分，先创建者优先
func (v *View) PropAt(pt image.Point) *Prop {
	for _, prop := range v.Props {
		if prop.Contains(pt) {
			return prop
		}
	}
	return nil
}

// addDecal 记录弹孔，满额后静默丢弃
func (v *View) addDecal(pos image.Point) bool {
	if len(v.decals) >= config.MaxBulletHoles {
		return false
	}
	v.decals = append(v.decals, pos)
	return true
}

// Saloon 酒馆场景图：全部视角与当前视角索引
// 当前索引始终位于 [0, ViewCount())
type Saloon struct {
	views   []*View
	current int
}

// NewSaloon 按布局配置创建视角与道具
// 道具在此一次性创建，整局游戏内不会重建
func NewSaloon(cfg *config.SaloonConfig) (*Saloon, error) {
	if cfg == nil || len(cfg.Views) == 0 {
		return nil, &ConfigurationError{Subject: "saloon layout", Err: errNoViews}
	}

	views := make([]*View, 0, len(cfg.Views))
	for _, spec := range cfg.Views {
		view := &View{
			Name:       spec.Name,
			Background: spec.Background,
			Props:      make([]*Prop, 0, len(spec.Props)),
			decals:     make([]image.Point, 0, config.MaxBulletHoles),
		}
		for _, p := range spec.Props {
			rect := image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
			view.Props = append(view.Props, NewProp(rect, p.Type, p.Bulletproof))
		}
		views = append(views, view)
	}

	log.Printf("[Saloon] Created %d views", len(views))
	return &Saloon{views: views}, nil
}

// ChangeView 切换视角，首尾循环
// 非法方向直接忽略
func (s *Saloon) ChangeView(direction Direction) {
	n := len(s.views)
	switch direction {
	case DirectionLeft:
		s.current = (s.current - 1 + n) % n
	case DirectionRight:
		s.current = (s.current + 1) % n
	default:
		return
	}
	log.Printf("[Saloon] Active view: %d (%s)", s.current, s.views[s.current].Name)
}

// CurrentView 返回当前视角
func (s *Saloon) CurrentView() *View {
	return s.views[s.current]
}

// CurrentIndex 返回当前视角索引
func (s *Saloon) CurrentIndex() int {
	return s.current
}

// ViewCount 返回视角数量
func (s *Saloon) ViewCount() int {
	return len(s.views)
}

// View 按索引返回视角，越界返回 nil
func (s *Saloon) View(index int) *View {
	if index < 0 || index >= len(s.views) {
		return nil
	}
	return s.views[index]
}

// AddDecal 在当前视角记录弹孔
// 当前视角已有 config.MaxBulletHoles 个弹孔时静默丢弃，返回是否记录成功
func (s *Saloon) AddDecal(pos image.Point) bool {
	return s.CurrentView().addDecal(pos)
}

package game

import "image"

// MenuLayout 把指针位置映射到菜单项
// 菜单项的实际边界取决于字体渲染，由渲染层提供实现
type MenuLayout interface {
	OptionAt(pos image.Point) (int, bool)
}

// RowMenuLayout 菜单项以 CenterX 为中心纵向排列，
// 第 i 项的中心位于 TopY + i*RowHeight，宽度取 Widths[i]
type RowMenuLayout struct {
	CenterX    int
	TopY       int
	RowHeight  int
	TextHeight int
	Widths     []int
}

// Bounds 返回第 i 项的矩形
func (l RowMenuLayout) Bounds(i int) image.Rectangle {
	centerY := l.TopY + i*l.RowHeight
	w := l.Widths[i]
	return image.Rect(
		l.CenterX-w/2,
		centerY-l.TextHeight/2,
		l.CenterX-w/2+w,
		centerY-l.TextHeight/2+l.TextHeight,
	)
}

// OptionAt 返回包含 pos 的菜单项下标
func (l RowMenuLayout) OptionAt(pos image.Point) (int, bool) {
	for i := range l.Widths {
		if pos.In(l.Bounds(i)) {
			return i, true
		}
	}
	return 0, false
}

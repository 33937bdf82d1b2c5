package surface

import (
	"image/color"
	"math"

	"github.com/decker502/squarepart/pkg/squarepart"
	"github.com/gdamore/tcell/v2"
)

// CellAspect 终端字符单元的高宽比
// 每个单元被拆成上下两个半块像素，使横竖线段的长度看起来一致
const CellAspect = 2

const (
	upperHalf = '▀'
	lowerHalf = '▄'
	fullBlock = '█'
)

// TermSurface 将绘制调用栅格化到 tcell 屏幕
//
// 表面宽度为列数，高度为行数 * CellAspect；线宽固定为一个半块像素。
type TermSurface struct {
	Transform

	screen tcell.Screen
	bg     tcell.Color
}

// NewTermSurface 创建绘制到 screen 的表面
func NewTermSurface(screen tcell.Screen) *TermSurface {
	return &TermSurface{
		screen: screen,
		bg:     tcell.ColorDefault,
	}
}

// Width 返回列数
func (s *TermSurface) Width() float64 {
	w, _ := s.screen.Size()
	return float64(w)
}

// Height 返回半块像素行数
func (s *TermSurface) Height() float64 {
	_, h := s.screen.Size()
	return float64(h * CellAspect)
}

// Clear 用背景色填充整个屏幕
func (s *TermSurface) Clear(c color.Color) {
	s.bg = TcellColor(c)
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.bg))
}

// StrokeLine 使用 Bresenham 算法栅格化线段
func (s *TermSurface) StrokeLine(x0, y0, x1, y1 float64, style squarepart.Style) {
	ax, ay := s.Apply(x0, y0)
	bx, by := s.Apply(x1, y1)

	px0, py0 := int(math.Round(ax)), int(math.Round(ay))
	px1, py1 := int(math.Round(bx)), int(math.Round(by))

	cellStyle := tcell.StyleDefault.Foreground(TcellColor(style.Color)).Background(s.bg)

	dx := abs(px1 - px0)
	dy := -abs(py1 - py0)
	sx, sy := 1, 1
	if px0 > px1 {
		sx = -1
	}
	if py0 > py1 {
		sy = -1
	}
	e := dx + dy
	for {
		s.plot(px0, py0, cellStyle)
		if px0 == px1 && py0 == py1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			px0 += sx
		}
		if e2 <= dx {
			e += dx
			py0 += sy
		}
	}
}

// plot 点亮一个半块像素
func (s *TermSurface) plot(px, py int, style tcell.Style) {
	w, h := s.screen.Size()
	if px < 0 || py < 0 || px >= w || py >= h*CellAspect {
		return
	}
	row := py / CellAspect
	upper := py%CellAspect == 0

	r := upperHalf
	if !upper {
		r = lowerHalf
	}
	prev, _, _, _ := s.screen.GetContent(px, row)
	if (prev == upperHalf && !upper) || (prev == lowerHalf && upper) || prev == fullBlock {
		r = fullBlock
	}
	s.screen.SetContent(px, row, r, nil, style)
}

// TcellColor 将 color.Color 转换为 tcell 的真彩色
func TcellColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var _ squarepart.Surface = (*TermSurface)(nil)

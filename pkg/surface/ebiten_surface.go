package surface

import (
	"image/color"

	"github.com/decker502/squarepart/pkg/squarepart"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface 将绘制调用转发到 ebiten.Image
type EbitenSurface struct {
	Transform

	dst       *ebiten.Image
	antialias bool
}

// NewEbitenSurface 创建绘制到 dst 的表面
// 每帧创建一次即可，变换栈不跨帧保留
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{
		dst:       dst,
		antialias: true,
	}
}

// Width 返回目标图像宽度
func (s *EbitenSurface) Width() float64 {
	return float64(s.dst.Bounds().Dx())
}

// Height 返回目标图像高度
func (s *EbitenSurface) Height() float64 {
	return float64(s.dst.Bounds().Dy())
}

// Clear 填充背景色
func (s *EbitenSurface) Clear(c color.Color) {
	s.dst.Fill(c)
}

// StrokeLine 在当前变换下绘制线段
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1 float64, style squarepart.Style) {
	ax, ay := s.Apply(x0, y0)
	bx, by := s.Apply(x1, y1)
	if ax == bx && ay == by {
		// 零长度线段不产生任何像素
		return
	}
	vector.StrokeLine(s.dst, float32(ax), float32(ay), float32(bx), float32(by),
		float32(style.StrokeWidth), style.Color, s.antialias)
}

var _ squarepart.Surface = (*EbitenSurface)(nil)

package squarepart

import (
	"image/color"
	"math"
	"time"
)

// recordedLine 记录一次 StrokeLine 调用（已应用当前变换）
type recordedLine struct {
	X0, Y0, X1, Y1 float64
	Style          Style
}

// recordingSurface 记录绘制调用的测试表面
type recordingSurface struct {
	w, h    float64
	clears  []color.Color
	lines   []recordedLine
	tx, ty  float64
	deg     float64
	stack   [][3]float64
	unbound int // Restore 多于 Save 的次数
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) Width() float64  { return s.w }
func (s *recordingSurface) Height() float64 { return s.h }

func (s *recordingSurface) Clear(c color.Color) {
	s.clears = append(s.clears, c)
	s.lines = nil
}

func (s *recordingSurface) Translate(dx, dy float64) {
	// 只支持“先平移后旋转”的调用顺序，足够覆盖节点绘制
	s.tx += dx
	s.ty += dy
}
func (s *recordingSurface) Rotate(degrees float64) { s.deg += degrees }

func (s *recordingSurface) Save() {
	s.stack = append(s.stack, [3]float64{s.tx, s.ty, s.deg})
}

func (s *recordingSurface) Restore() {
	if len(s.stack) == 0 {
		s.unbound++
		return
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.tx, s.ty, s.deg = top[0], top[1], top[2]
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1 float64, style Style) {
	ax, ay := s.apply(x0, y0)
	bx, by := s.apply(x1, y1)
	s.lines = append(s.lines, recordedLine{ax, ay, bx, by, style})
}

func (s *recordingSurface) apply(x, y float64) (float64, float64) {
	rad := s.deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return x*cos - y*sin + s.tx, x*sin + y*cos + s.ty
}

// fakeInvalidator 记录重绘请求
type fakeInvalidator struct {
	immediate int
	delayed   []time.Duration
}

func (f *fakeInvalidator) RequestRedraw() { f.immediate++ }

func (f *fakeInvalidator) RequestRedrawAfter(d time.Duration) {
	f.delayed = append(f.delayed, d)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

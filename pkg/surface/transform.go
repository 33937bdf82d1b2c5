// Package surface 提供 squarepart.Surface 的具体实现
//
// EbitenSurface 绘制到 ebiten.Image，TermSurface 绘制到 tcell 终端屏幕。
// 两者共用基于 ebiten.GeoM 的变换栈。
package surface

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transform Canvas 风格的变换栈
//
// 新的 Translate/Rotate 先作用于局部坐标，再作用已有变换，
// 与 Android Canvas 的 pre-concat 语义一致。零值为单位变换。
type Transform struct {
	geoM  ebiten.GeoM
	stack []ebiten.GeoM
}

// Save 保存当前变换
func (t *Transform) Save() {
	t.stack = append(t.stack, t.geoM)
}

// Restore 恢复最近一次保存的变换，栈为空时无效
func (t *Transform) Restore() {
	if len(t.stack) == 0 {
		return
	}
	t.geoM = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
}

// Translate 平移
func (t *Transform) Translate(dx, dy float64) {
	var op ebiten.GeoM
	op.Translate(dx, dy)
	t.preConcat(op)
}

// Rotate 以度为单位旋转
func (t *Transform) Rotate(degrees float64) {
	var op ebiten.GeoM
	op.Rotate(degrees * math.Pi / 180)
	t.preConcat(op)
}

// Apply 将局部坐标变换为表面坐标
func (t *Transform) Apply(x, y float64) (float64, float64) {
	return t.geoM.Apply(x, y)
}

// Depth 返回已保存的变换数量
func (t *Transform) Depth() int {
	return len(t.stack)
}

// Reset 清空变换栈并恢复单位变换
func (t *Transform) Reset() {
	t.geoM.Reset()
	t.stack = t.stack[:0]
}

// preConcat 令 op 先于当前变换生效
func (t *Transform) preConcat(op ebiten.GeoM) {
	op.Concat(t.geoM)
	t.geoM = op
}

package squarepart

import "math"

// Node 链上的一个刻度线
type Node struct {
	Index int
	State ScaleState
}

// Geometry 节点在表面上的几何参数
type Geometry struct {
	X, Y    float64 // 刻度线中心
	Degrees float64 // 旋转角度
	Length  float64 // 刻度线长度
}

// Geometry 计算节点在 width x height 表面上的位置
//
// gap = width/(count+1)，中心 x = gap*(i+1) + gap*scale，y 为表面中线，
// 旋转 i*(360/count) 度，长度 gap/2。尺寸为零或负数时退化为零长度线段。
func (n *Node) Geometry(width, height float64, count int) Geometry {
	width = math.Max(width, 0)
	height = math.Max(height, 0)
	gap := width / float64(count+1)
	return Geometry{
		X:       gap*float64(n.Index+1) + gap*n.State.Scale,
		Y:       height / 2,
		Degrees: float64(n.Index) * (360 / float64(count)),
		Length:  gap / 2,
	}
}

// Draw 绘制该节点的刻度线
func (n *Node) Draw(s Surface, style Style, count int) {
	g := n.Geometry(s.Width(), s.Height(), count)
	half := g.Length / 2

	s.Save()
	s.Translate(g.X, g.Y)
	s.Rotate(g.Degrees)
	s.StrokeLine(-half, 0, half, 0, style)
	s.Restore()
}

// Update 推进节点的动画，完成时以 (index, newScale) 调用 cb
func (n *Node) Update(m Motion, cb func(index int, scale float64)) {
	n.State.Update(m, func(prevScale float64) {
		if cb != nil {
			cb(n.Index, prevScale)
		}
	})
}

// StartUpdating 请求节点开始动画
func (n *Node) StartUpdating(cb func()) {
	n.State.StartUpdating(cb)
}

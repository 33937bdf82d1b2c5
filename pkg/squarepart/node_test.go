package squarepart

import "testing"

// TestNodeGeometry 测试节点位置、旋转和长度
func TestNodeGeometry(t *testing.T) {
	tests := []struct {
		name  string
		index int
		scale float64
		want  Geometry
	}{
		{"节点 0 静止", 0, 0, Geometry{X: 100, Y: 100, Degrees: 0, Length: 50}},
		{"节点 1 静止", 1, 0, Geometry{X: 200, Y: 100, Degrees: 90, Length: 50}},
		{"节点 3 静止", 3, 0, Geometry{X: 400, Y: 100, Degrees: 270, Length: 50}},
		{"节点 0 动画一半", 0, 0.5, Geometry{X: 150, Y: 100, Degrees: 0, Length: 50}},
		{"节点 2 完成", 2, 1, Geometry{X: 400, Y: 100, Degrees: 180, Length: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Node{Index: tt.index, State: ScaleState{Scale: tt.scale}}
			got := n.Geometry(500, 200, 4)
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) ||
				!approx(got.Degrees, tt.want.Degrees) || !approx(got.Length, tt.want.Length) {
				t.Errorf("Geometry() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestNodeGeometryDegenerateSurface 测试零尺寸表面退化为零长度线段
func TestNodeGeometryDegenerateSurface(t *testing.T) {
	for _, size := range [][2]float64{{0, 0}, {0, 300}, {-10, -10}} {
		n := Node{Index: 2, State: ScaleState{Scale: 0.3}}
		g := n.Geometry(size[0], size[1], 4)
		if g.X != 0 || g.Length != 0 {
			t.Errorf("Geometry(%v, %v) = %+v, want zero X and Length", size[0], size[1], g)
		}
	}
}

// TestNodeDrawBalancesSaveRestore 测试绘制后变换栈恢复
func TestNodeDrawBalancesSaveRestore(t *testing.T) {
	s := newRecordingSurface(500, 200)
	n := Node{Index: 1}
	n.Draw(s, Style{Color: DefaultStrokeColor, StrokeWidth: 2}, 4)

	if len(s.stack) != 0 || s.unbound != 0 {
		t.Errorf("unbalanced transform stack: depth=%d unbound=%d", len(s.stack), s.unbound)
	}
	if s.tx != 0 || s.ty != 0 || s.deg != 0 {
		t.Errorf("transform leaked: tx=%v ty=%v deg=%v", s.tx, s.ty, s.deg)
	}
	if len(s.lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(s.lines))
	}

	// 节点 1 旋转 90 度：竖直线段，中心 (200, 100)
	l := s.lines[0]
	if !approx(l.X0, 200) || !approx(l.X1, 200) || !approx(l.Y0, 75) || !approx(l.Y1, 125) {
		t.Errorf("line = %+v, want vertical segment (200,75)-(200,125)", l)
	}
}

// TestNodeUpdateReportsIndex 测试完成回调携带节点索引
func TestNodeUpdateReportsIndex(t *testing.T) {
	n := Node{Index: 3}
	n.StartUpdating(nil)

	var gotIndex int
	var gotScale float64
	calls := 0
	for i := 0; i < 11; i++ {
		n.Update(DefaultMotion, func(index int, scale float64) {
			calls++
			gotIndex, gotScale = index, scale
		})
	}
	if calls != 1 || gotIndex != 3 || gotScale != 1 {
		t.Errorf("calls=%d index=%d scale=%v, want 1, 3, 1", calls, gotIndex, gotScale)
	}
}

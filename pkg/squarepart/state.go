package squarepart

import "math"

// Motion 单步动画参数
type Motion struct {
	// Step 每个 tick 的缩放增量
	Step float64
	// Threshold 累计位移超过该值即视为完成
	Threshold float64
}

// DefaultMotion 默认参数：每 tick 0.1，阈值 1.0（每次完成需要 11 个 tick）
var DefaultMotion = Motion{Step: 0.1, Threshold: 1.0}

// ScaleState 单个节点的动画状态
//
// Dir == 0 表示空闲。PrevScale 是上一次完成时的落点，只会是 0 或 1。
type ScaleState struct {
	Scale     float64
	PrevScale float64
	Dir       float64
}

// IsIdle 返回节点是否处于空闲状态
func (s *ScaleState) IsIdle() bool {
	return s.Dir == 0
}

// Update 推进一个 tick
//
// 当 |Scale - PrevScale| 首次超过阈值时，Scale 吸附到 PrevScale + Dir，
// 状态回到空闲并以新的 PrevScale 调用 onComplete。
func (s *ScaleState) Update(m Motion, onComplete func(prevScale float64)) {
	s.Scale += m.Step * s.Dir
	if math.Abs(s.Scale-s.PrevScale) > m.Threshold {
		s.Scale = s.PrevScale + s.Dir
		s.Dir = 0
		s.PrevScale = s.Scale
		if onComplete != nil {
			onComplete(s.PrevScale)
		}
	}
}

// StartUpdating 在空闲时开始一次动画，动画进行中调用无效
func (s *ScaleState) StartUpdating(onStart func()) {
	if !s.IsIdle() {
		return
	}
	// PrevScale 只会是 0 或 1：0 -> +1，1 -> -1
	s.Dir = 1 - 2*s.PrevScale
	if onStart != nil {
		onStart()
	}
}

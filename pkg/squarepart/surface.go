// Package squarepart 实现刻度线链的动画状态机
//
// 一行固定数量的刻度线（节点）组成一条链。每次点击让当前活动节点在两个
// 位置之间动画一次，完成后活动节点沿链往返移动到下一个节点。
//
// 本包不依赖任何具体的图形后端：宿主通过 Surface 接收绘制调用，
// 通过 Invalidator 接收重绘请求。
package squarepart

import (
	"image/color"
	"time"
)

// Style 线段绘制样式
type Style struct {
	Color       color.Color
	StrokeWidth float64
}

// Surface 宿主提供的绘制表面
//
// 变换按画布语义累积：Translate/Rotate 作用于之后绘制的图元，
// Save/Restore 保存和恢复当前变换。
type Surface interface {
	Width() float64
	Height() float64

	// Clear 使用指定颜色填充整个表面
	Clear(c color.Color)

	Save()
	Restore()
	Translate(dx, dy float64)
	// Rotate 以度为单位旋转，正值为屏幕坐标系下的顺时针方向
	Rotate(degrees float64)

	StrokeLine(x0, y0, x1, y1 float64, style Style)
}

// Invalidator 接收重绘请求
//
// 请求是幂等的触发器而不是队列：多个未处理的请求会合并为一次重绘。
type Invalidator interface {
	// RequestRedraw 请求尽快重绘
	RequestRedraw()
	// RequestRedrawAfter 请求在 delay 之后重绘，不得阻塞调用方
	RequestRedrawAfter(delay time.Duration)
}

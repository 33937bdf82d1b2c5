package squarepart

import (
	"fmt"
	"strings"
)

// BoundaryMode 活动节点到达链端时的行为
type BoundaryMode int

const (
	// BoundaryReflect 方向翻转后立即移到相邻节点：0,1,2,3,2,1,0,1,...
	BoundaryReflect BoundaryMode = iota
	// BoundaryHold 方向翻转后端点节点保持活动一轮：0,1,2,3,3,2,1,0,0,1,...
	BoundaryHold
)

// String 返回配置文件中使用的名称
func (m BoundaryMode) String() string {
	switch m {
	case BoundaryReflect:
		return "reflect"
	case BoundaryHold:
		return "hold"
	default:
		return fmt.Sprintf("BoundaryMode(%d)", int(m))
	}
}

// ParseBoundaryMode 解析配置中的边界模式，空字符串视为 reflect
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reflect":
		return BoundaryReflect, nil
	case "hold":
		return BoundaryHold, nil
	default:
		return BoundaryReflect, fmt.Errorf("unknown boundary mode %q (want reflect or hold)", s)
	}
}

// Chain 固定长度的节点链和往返遍历控制器
//
// 节点存放在切片中，前后邻居就是 index±1。任一时刻只有 current 指向的
// 节点会被 Update 推进。
type Chain struct {
	nodes    []Node
	current  int
	dir      int
	motion   Motion
	boundary BoundaryMode
}

// NewChain 创建包含 count 个节点的链，count 小于 1 时按 1 处理
func NewChain(count int, motion Motion, boundary BoundaryMode) *Chain {
	if count < 1 {
		count = 1
	}
	nodes := make([]Node, count)
	for i := range nodes {
		nodes[i].Index = i
	}
	return &Chain{
		nodes:    nodes,
		current:  0,
		dir:      1,
		motion:   motion,
		boundary: boundary,
	}
}

// Len 返回节点数量
func (c *Chain) Len() int {
	return len(c.nodes)
}

// Node 返回指定索引的节点，越界返回 nil
func (c *Chain) Node(i int) *Node {
	if i < 0 || i >= len(c.nodes) {
		return nil
	}
	return &c.nodes[i]
}

// Current 返回活动节点索引
func (c *Chain) Current() int {
	return c.current
}

// Direction 返回遍历方向（+1 或 -1）
func (c *Chain) Direction() int {
	return c.dir
}

// Neighbor 返回 index 在 dir 方向上的邻居
//
// 该方向没有邻居时调用 onBoundary 并返回 index 本身。
func (c *Chain) Neighbor(index, dir int, onBoundary func()) int {
	next := index - 1
	if dir == 1 {
		next = index + 1
	}
	if next >= 0 && next < len(c.nodes) {
		return next
	}
	if onBoundary != nil {
		onBoundary()
	}
	return index
}

// Draw 绘制整条链，与活动节点无关
func (c *Chain) Draw(s Surface, style Style) {
	for i := range c.nodes {
		c.nodes[i].Draw(s, style, len(c.nodes))
	}
}

// Update 推进活动节点；完成时选择下一个活动节点并调用 cb
func (c *Chain) Update(cb func(index int, scale float64)) {
	c.nodes[c.current].Update(c.motion, func(index int, scale float64) {
		c.current = c.advance()
		if cb != nil {
			cb(index, scale)
		}
	})
}

// StartUpdating 请求活动节点开始动画
func (c *Chain) StartUpdating(cb func()) {
	c.nodes[c.current].StartUpdating(cb)
}

func (c *Chain) advance() int {
	flipped := false
	next := c.Neighbor(c.current, c.dir, func() {
		c.dir = -c.dir
		flipped = true
	})
	if flipped && c.boundary == BoundaryReflect {
		// 单节点链在反方向上同样没有邻居，留在原地
		next = c.Neighbor(c.current, c.dir, nil)
	}
	return next
}

package squarepart

import "math"

// ToneBaseFrequency 节点 0 完成时提示音的频率（Hz）
const ToneBaseFrequency = 660.0

// ToneFrequency 返回节点 index 完成时提示音的频率
// 每个节点比前一个高一个全音，负数按 0 处理
func ToneFrequency(index int) float64 {
	if index < 0 {
		index = 0
	}
	return ToneBaseFrequency * math.Pow(2, float64(2*index)/12)
}

// Package utils 提供宿主层的输入与平台工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPrimaryJustPressed 检查主指针是否在本帧刚刚按下
// 主指针：鼠标左键，或者本帧新出现的第一个触摸点
func IsPrimaryJustPressed() bool {
	return isPrimaryDown(
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		len(inpututil.AppendJustPressedTouchIDs(nil)),
	)
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// isPrimaryDown 判断一帧内的输入是否构成一次点击
// 多个新触摸点只算一次点击
func isPrimaryDown(mouseJustPressed bool, newTouches int) bool {
	return mouseJustPressed || newTouches > 0
}

package components

import "image/color"

// TargetComponent 气泡目标
//
// 圆心取自同一实体上的 PositionComponent。
// Popped 在箭头抵达时置为 true，之后只有显式重置才会恢复。
type TargetComponent struct {
	Radius      float64    // 半径（场景像素）
	FillColor   color.RGBA // 填充色
	BorderColor color.RGBA // 描边色
	Popped      bool       // 是否已被击破
}

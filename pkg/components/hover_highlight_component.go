package components

// HoverHighlightComponent 悬停高亮组件
// 指针停留在未击破的气泡上时激活，渲染系统据此绘制加粗外框
type HoverHighlightComponent struct {
	// Intensity 高亮强度（0.0 - 1.0）
	// 1.0 = 完整外框，0.0 = 无效果
	Intensity float64

	// IsActive 是否激活
	IsActive bool
}

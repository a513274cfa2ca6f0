package components

// PositionComponent 实体在场景坐标系中的位置
// 对于槽位实体，代表目标气泡的圆心
type PositionComponent struct {
	X float64
	Y float64
}

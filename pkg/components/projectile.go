package components

// ProjectileComponent 飞向同槽位目标的箭头
//
// 箭头只沿水平方向移动：CurrentX 从 OriginX 逐帧递减，Y 固定为 OriginY。
type ProjectileComponent struct {
	OriginX  float64 // 起点X（场景坐标）
	OriginY  float64 // 起点Y（场景坐标）
	CurrentX float64 // 当前箭头尖端X
	Active   bool    // 是否正在飞行
}

// ResetToOrigin 将箭头放回起点并停止飞行
func (p *ProjectileComponent) ResetToOrigin() {
	p.CurrentX = p.OriginX
	p.Active = false
}

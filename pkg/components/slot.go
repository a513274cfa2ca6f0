package components

// SlotComponent 标记一个槽位实体
//
// 每个槽位实体同时携带 TargetComponent 和 ProjectileComponent，
// 箭头与目标一一对应，无法被重新指派给其他目标。
type SlotComponent struct {
	Index int // 槽位序号（0 开始，与配置中的目标顺序一致）
}

// SlotPhase 槽位状态机的阶段
type SlotPhase int

const (
	// PhaseIdle 目标未击破，箭头静止
	PhaseIdle SlotPhase = iota
	// PhaseInFlight 箭头飞行中
	PhaseInFlight
	// PhasePopped 目标已击破（终态，直到重置）
	PhasePopped
)

// String 返回阶段名称（用于日志）
func (p SlotPhase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseInFlight:
		return "IN_FLIGHT"
	case PhasePopped:
		return "POPPED"
	default:
		return "UNKNOWN"
	}
}

// PhaseOf 根据目标和箭头的状态推导槽位阶段
func PhaseOf(target *TargetComponent, projectile *ProjectileComponent) SlotPhase {
	switch {
	case target.Popped:
		return PhasePopped
	case projectile.Active:
		return PhaseInFlight
	default:
		return PhaseIdle
	}
}

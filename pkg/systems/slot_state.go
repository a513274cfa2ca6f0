package systems

import (
	"sort"

	"github.com/decker502/bubblepop/pkg/components"
	"github.com/decker502/bubblepop/pkg/ecs"
)

// SlotState 槽位的只读快照（供测试和无界面验证工具使用）
type SlotState struct {
	Index    int
	X        float64
	Y        float64
	Radius   float64
	Popped   bool
	Active   bool
	CurrentX float64
	OriginX  float64
}

// Phase 返回快照对应的状态机阶段
func (s SlotState) Phase() components.SlotPhase {
	return components.PhaseOf(
		&components.TargetComponent{Popped: s.Popped},
		&components.ProjectileComponent{Active: s.Active},
	)
}

// slotEntity 槽位实体及其核心组件
type slotEntity struct {
	index  int
	id     ecs.EntityID
	pos    *components.PositionComponent
	target *components.TargetComponent
	proj   *components.ProjectileComponent
}

// querySlots 查询全部槽位实体，按 SlotComponent.Index 升序
// 缺少 SlotComponent 的实体不算槽位
func querySlots(em *ecs.EntityManager) []slotEntity {
	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.TargetComponent,
		*components.ProjectileComponent,
	](em)

	slots := make([]slotEntity, 0, len(ids))
	for _, id := range ids {
		slot, ok := ecs.GetComponent[*components.SlotComponent](em, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		target, _ := ecs.GetComponent[*components.TargetComponent](em, id)
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		slots = append(slots, slotEntity{
			index:  slot.Index,
			id:     id,
			pos:    pos,
			target: target,
			proj:   proj,
		})
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].index < slots[j].index })
	return slots
}

// slotAt 查找序号为 index 的槽位
func slotAt(em *ecs.EntityManager, index int) (slotEntity, bool) {
	for _, slot := range querySlots(em) {
		if slot.index == index {
			return slot, true
		}
	}
	return slotEntity{}, false
}

// SnapshotSlots 按槽位序号生成状态快照
func SnapshotSlots(em *ecs.EntityManager) []SlotState {
	slots := querySlots(em)
	states := make([]SlotState, 0, len(slots))
	for _, slot := range slots {
		states = append(states, SlotState{
			Index:    slot.index,
			X:        slot.pos.X,
			Y:        slot.pos.Y,
			Radius:   slot.target.Radius,
			Popped:   slot.target.Popped,
			Active:   slot.proj.Active,
			CurrentX: slot.proj.CurrentX,
			OriginX:  slot.proj.OriginX,
		})
	}
	return states
}

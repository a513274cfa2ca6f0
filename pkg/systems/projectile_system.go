package systems

import (
	"log"

	"github.com/decker502/bubblepop/pkg/config"
	"github.com/decker502/bubblepop/pkg/ecs"
)

// PopEvent 目标被击破事件
type PopEvent struct {
	Index  int          // 槽位序号
	Entity ecs.EntityID // 槽位实体
}

// PopListener 击破事件回调
type PopListener func(PopEvent)

// ProjectileSystem 负责箭头的发射与逐帧推进
//
// 每次 Step 调用将所有飞行中的箭头向左移动 step 像素，
// 箭头尖端到达 目标X + 半径 + clearance 时，在同一次调用中
// 击破目标、停止箭头并派发 PopEvent。
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
	step          float64
	clearance     float64
	listeners     []PopListener
}

// NewProjectileSystem 创建箭头系统
func NewProjectileSystem(em *ecs.EntityManager, cfg config.ProjectileConfig) *ProjectileSystem {
	step := cfg.Step
	if step <= 0 {
		step = config.DefaultProjectileStep
	}
	return &ProjectileSystem{
		entityManager: em,
		step:          step,
		clearance:     cfg.Clearance,
	}
}

// OnPop 注册击破事件回调，按注册顺序调用
func (s *ProjectileSystem) OnPop(fn PopListener) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// Launch 发射指定槽位的箭头
//
// 仅当目标未击破且箭头不在飞行中时生效，返回是否真正发射。
// 飞行中重复发射是无操作。
func (s *ProjectileSystem) Launch(index int) bool {
	slot, ok := slotAt(s.entityManager, index)
	if !ok {
		return false
	}
	if slot.target.Popped || slot.proj.Active {
		return false
	}

	slot.proj.Active = true
	log.Printf("[ProjectileSystem] 发射箭头: slot=%d, x=%.1f", index, slot.proj.CurrentX)
	return true
}

// Step 推进一帧
// 返回值: 调用结束后是否仍有箭头在飞行
func (s *ProjectileSystem) Step() bool {
	inFlight := false

	for _, slot := range querySlots(s.entityManager) {
		target, proj := slot.target, slot.proj
		if !proj.Active {
			continue
		}

		// 已击破的目标不应再有飞行中的箭头
		if target.Popped {
			proj.Active = false
			continue
		}

		proj.CurrentX -= s.step

		threshold := slot.pos.X + target.Radius + s.clearance
		if proj.CurrentX <= threshold {
			proj.CurrentX = threshold
			proj.Active = false
			target.Popped = true
			log.Printf("[ProjectileSystem] 目标击破: slot=%d", slot.index)
			s.publish(PopEvent{Index: slot.index, Entity: slot.id})
			continue
		}

		inFlight = true
	}

	return inFlight
}

// NextLaunchable 返回第一个可发射的槽位（未击破且箭头静止），没有则返回 -1
func (s *ProjectileSystem) NextLaunchable() int {
	for _, slot := range querySlots(s.entityManager) {
		if !slot.target.Popped && !slot.proj.Active {
			return slot.index
		}
	}
	return -1
}

// ResetAll 所有箭头回到起点、所有目标恢复未击破
func (s *ProjectileSystem) ResetAll() {
	for _, slot := range querySlots(s.entityManager) {
		slot.proj.ResetToOrigin()
		slot.target.Popped = false
	}
}

func (s *ProjectileSystem) publish(ev PopEvent) {
	for _, fn := range s.listeners {
		fn(ev)
	}
}

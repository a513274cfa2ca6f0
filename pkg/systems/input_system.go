package systems

import (
	"log"

	"github.com/decker502/bubblepop/pkg/components"
	"github.com/decker502/bubblepop/pkg/ecs"
	"github.com/decker502/bubblepop/pkg/utils"
)

// InputSystem 处理指针悬停与点击
//
// 所有坐标均为场景坐标，窗口坐标的换算由调用方完成。
type InputSystem struct {
	entityManager *ecs.EntityManager
	projectiles   *ProjectileSystem
	hoverIndex    int
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, projectiles *ProjectileSystem) *InputSystem {
	return &InputSystem{
		entityManager: em,
		projectiles:   projectiles,
		hoverIndex:    -1,
	}
}

// TargetAt 返回包含该点的第一个未击破目标的序号，没有则返回 -1
// 边界上的点（距离恰好等于半径）不算命中
func (s *InputSystem) TargetAt(x, y float64) int {
	for _, slot := range querySlots(s.entityManager) {
		if slot.target.Popped {
			continue
		}
		if utils.PointInCircle(x, y, slot.pos.X, slot.pos.Y, slot.target.Radius) {
			return slot.index
		}
	}
	return -1
}

// UpdateHover 指针移动时更新悬停目标，返回新的悬停序号
func (s *InputSystem) UpdateHover(x, y float64) int {
	s.setHover(s.TargetAt(x, y))
	return s.hoverIndex
}

// ClearHover 清除悬停状态
func (s *InputSystem) ClearHover() {
	s.setHover(-1)
}

// HoverIndex 当前悬停的槽位序号，-1 表示无
func (s *InputSystem) HoverIndex() int {
	return s.hoverIndex
}

// HandlePress 指针按下：命中未击破目标时发射对应箭头
// 返回是否发射成功（点空白处或箭头已在飞行中返回 false）
func (s *InputSystem) HandlePress(x, y float64) bool {
	index := s.TargetAt(x, y)
	if index < 0 {
		return false
	}
	return s.projectiles.Launch(index)
}

// LaunchNext 键盘发射：第一个可发射的槽位
func (s *InputSystem) LaunchNext() bool {
	index := s.projectiles.NextLaunchable()
	if index < 0 {
		return false
	}
	return s.projectiles.Launch(index)
}

func (s *InputSystem) setHover(index int) {
	if index == s.hoverIndex {
		return
	}
	if index >= 0 {
		log.Printf("[InputSystem] 悬停: slot=%d", index)
	}
	s.hoverIndex = index

	for _, slot := range querySlots(s.entityManager) {
		hl, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, slot.id)
		if !ok {
			continue
		}
		hl.IsActive = slot.index == index
		if hl.IsActive {
			hl.Intensity = 1.0
		} else {
			hl.Intensity = 0
		}
	}
}

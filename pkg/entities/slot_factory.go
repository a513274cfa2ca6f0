package entities

import (
	"fmt"
	"log"

	"github.com/decker502/bubblepop/pkg/components"
	"github.com/decker502/bubblepop/pkg/config"
	"github.com/decker502/bubblepop/pkg/ecs"
)

// NewSlot 创建一个槽位实体（气泡目标 + 对应箭头）
//
// 箭头起点Y与目标圆心Y相同，箭头只沿水平方向飞行。
//
// 参数:
//   - em: 实体管理器
//   - index: 槽位序号
//   - target: 目标配置
//   - projectile: 箭头参数
//
// 返回:
//   - ecs.EntityID: 创建的槽位实体ID
//   - error: 颜色解析失败时返回错误
func NewSlot(em *ecs.EntityManager, index int, target config.TargetConfig, projectile config.ProjectileConfig) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}

	fill, err := config.ParseHexColor(target.Fill)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("slot %d: %w", index, err)
	}
	border, err := config.ParseHexColor(target.Border)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("slot %d: %w", index, err)
	}

	entityID := em.CreateEntity()

	// 槽位序号决定命中检测、渲染和键盘发射的顺序
	ecs.AddComponent(em, entityID, &components.SlotComponent{Index: index})

	// 目标圆心（场景坐标）
	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: target.X,
		Y: target.Y,
	})

	ecs.AddComponent(em, entityID, &components.TargetComponent{
		Radius:      target.Radius,
		FillColor:   fill,
		BorderColor: border,
	})

	ecs.AddComponent(em, entityID, &components.ProjectileComponent{
		OriginX:  projectile.OriginX,
		OriginY:  target.Y,
		CurrentX: projectile.OriginX,
	})

	ecs.AddComponent(em, entityID, &components.HoverHighlightComponent{})

	return entityID, nil
}

// NewSlots 按配置顺序创建全部槽位
// 返回的切片下标即槽位序号
func NewSlots(em *ecs.EntityManager, cfg *config.SceneConfig) ([]ecs.EntityID, error) {
	if cfg == nil {
		return nil, fmt.Errorf("scene config cannot be nil")
	}

	slots := make([]ecs.EntityID, 0, len(cfg.Targets))
	for i, target := range cfg.Targets {
		id, err := NewSlot(em, i, target, cfg.Projectile)
		if err != nil {
			return nil, err
		}
		slots = append(slots, id)
	}

	log.Printf("[SlotFactory] 创建 %d 个槽位", len(slots))
	return slots, nil
}

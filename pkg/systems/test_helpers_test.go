package systems

import (
	"testing"

	"github.com/decker502/bubblepop/pkg/config"
	"github.com/decker502/bubblepop/pkg/ecs"
	"github.com/decker502/bubblepop/pkg/entities"
)

// testWorld 测试用的最小场景：四个槽位及全部系统
type testWorld struct {
	em          *ecs.EntityManager
	cfg         *config.SceneConfig
	slots       []ecs.EntityID
	projectiles *ProjectileSystem
	input       *InputSystem
	score       *ScoreSystem
	render      *RenderSystem
}

// newTestWorld 按默认场景配置创建测试场景
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	return newTestWorldWithConfig(t, config.DefaultSceneConfig())
}

// newTestWorldWithConfig 按给定配置创建测试场景
func newTestWorldWithConfig(t *testing.T, cfg *config.SceneConfig) *testWorld {
	t.Helper()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	em := ecs.NewEntityManager()
	slots, err := entities.NewSlots(em, cfg)
	if err != nil {
		t.Fatalf("NewSlots() error: %v", err)
	}

	w := &testWorld{em: em, cfg: cfg, slots: slots}
	w.projectiles = NewProjectileSystem(em, cfg.Projectile)
	w.input = NewInputSystem(em, w.projectiles)
	w.score = NewScoreSystem(len(slots))
	w.render = NewRenderSystem(em)
	w.projectiles.OnPop(w.score.HandlePop)
	return w
}

// state 返回指定槽位的快照
func (w *testWorld) state(t *testing.T, index int) SlotState {
	t.Helper()
	states := SnapshotSlots(w.em)
	if index >= len(states) {
		t.Fatalf("slot %d out of range (%d slots)", index, len(states))
	}
	return states[index]
}

// inFlight 是否有箭头正在飞行
func (w *testWorld) inFlight() bool {
	for _, s := range SnapshotSlots(w.em) {
		if s.Active {
			return true
		}
	}
	return false
}

// stepUntilIdle 反复调用 Step 直到没有箭头在飞行，返回调用次数
// 超过 limit 次视为不收敛
func (w *testWorld) stepUntilIdle(t *testing.T, limit int) int {
	t.Helper()
	for n := 1; n <= limit; n++ {
		if !w.projectiles.Step() {
			return n
		}
	}
	t.Fatalf("projectiles still in flight after %d steps", limit)
	return limit
}

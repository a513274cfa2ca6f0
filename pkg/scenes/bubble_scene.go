package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/bubblepop/pkg/config"
	"github.com/decker502/bubblepop/pkg/ecs"
	"github.com/decker502/bubblepop/pkg/entities"
	"github.com/decker502/bubblepop/pkg/game"
	"github.com/decker502/bubblepop/pkg/systems"
	"github.com/decker502/bubblepop/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SurfaceRectFunc 返回绘制表面当前在窗口中的位置
// 每次事件都重新获取，窗口尺寸变化后立即生效
type SurfaceRectFunc func() utils.SurfaceRect

// BubbleScene 气泡场景：一局游戏会话
//
// 持有全部槽位实体和系统。所有状态变化都发生在 Update 中：
// 先推进一帧动画，再处理键盘，最后处理指针。
type BubbleScene struct {
	entityManager *ecs.EntityManager
	config        *config.SceneConfig

	projectileSystem *systems.ProjectileSystem
	inputSystem      *systems.InputSystem
	scoreSystem      *systems.ScoreSystem
	renderSystem     *systems.RenderSystem

	scheduler       *game.FrameScheduler
	session         *game.Session
	audioManager    *game.AudioManager    // 可为 nil（静音）
	settingsManager *game.SettingsManager // 可为 nil（不显示/不保存设置）

	surfaceRect SurfaceRectFunc
}

// NewBubbleScene 创建气泡场景
//
// 参数:
//   - cfg: 已验证的场景配置
//   - am: 音频管理器（可为 nil）
//   - sm: 设置管理器（可为 nil）
//   - surfaceRect: 表面位置提供函数（为 nil 时窗口坐标即场景坐标）
func NewBubbleScene(cfg *config.SceneConfig, am *game.AudioManager, sm *game.SettingsManager, surfaceRect SurfaceRectFunc) (*BubbleScene, error) {
	if cfg == nil {
		return nil, fmt.Errorf("scene config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}

	em := ecs.NewEntityManager()
	slots, err := entities.NewSlots(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create slots: %w", err)
	}

	s := &BubbleScene{
		entityManager:   em,
		config:          cfg,
		scheduler:       game.NewFrameScheduler(),
		session:         game.NewSession(),
		audioManager:    am,
		settingsManager: sm,
		surfaceRect:     surfaceRect,
	}

	s.projectileSystem = systems.NewProjectileSystem(em, cfg.Projectile)
	s.inputSystem = systems.NewInputSystem(em, s.projectileSystem)
	s.scoreSystem = systems.NewScoreSystem(len(slots))
	s.renderSystem = systems.NewRenderSystem(em)

	s.projectileSystem.OnPop(s.scoreSystem.HandlePop)
	s.projectileSystem.OnPop(func(systems.PopEvent) {
		s.audioManager.PlaySound(game.SoundPop)
	})
	s.scoreSystem.OnComplete(func(score int) {
		log.Printf("[BubbleScene] session=%s round=%d 全部击破, score=%d, frames=%d",
			s.session.ShortID(), s.session.Round, score, s.scheduler.Frames())
		s.audioManager.PlaySound(game.SoundComplete)
	})

	log.Printf("[BubbleScene] session=%s 开始, %d 个目标", s.session.ShortID(), len(slots))
	return s, nil
}

// Update 每帧调用
func (s *BubbleScene) Update(deltaTime float64) {
	s.Advance(utils.GetKeyAction(), utils.GetInputState())
}

// Advance 用给定的输入推进一帧
// 与 Update 相同，但输入由调用方提供（测试和无界面验证使用）
func (s *BubbleScene) Advance(key utils.KeyAction, pointer utils.InputState) {
	// 上一帧登记的动画步进
	s.scheduler.Tick()

	switch key {
	case utils.KeyActionReset:
		s.Reset()
		return
	case utils.KeyActionLaunch:
		if s.inputSystem.LaunchNext() {
			s.onLaunched()
		}
	case utils.KeyActionToggleSound:
		if s.settingsManager != nil {
			enabled := s.settingsManager.ToggleSound()
			log.Printf("[BubbleScene] 音效: %v", enabled)
		}
	case utils.KeyActionToggleScore:
		s.toggleScore()
	}

	sx, sy, ok := s.windowToScene(float64(pointer.X), float64(pointer.Y))
	if !ok {
		s.inputSystem.ClearHover()
		return
	}
	if pointer.JustPressed {
		s.HandlePointerDown(sx, sy)
	} else {
		s.HandlePointerMove(sx, sy)
	}
}

// windowToScene 窗口坐标 → 场景坐标，指针在表面之外时 ok 为 false
func (s *BubbleScene) windowToScene(wx, wy float64) (float64, float64, bool) {
	if s.surfaceRect == nil {
		if wx < 0 || wy < 0 || wx >= s.config.Width || wy >= s.config.Height {
			return 0, 0, false
		}
		return wx, wy, true
	}
	rect := s.surfaceRect()
	if !rect.Contains(wx, wy) {
		return 0, 0, false
	}
	return utils.WindowToScene(wx, wy, rect, s.config.Width, s.config.Height)
}

// HandlePointerMove 指针移动（场景坐标）：只更新悬停状态
func (s *BubbleScene) HandlePointerMove(x, y float64) {
	s.inputSystem.UpdateHover(x, y)
}

// HandlePointerDown 指针按下（场景坐标）
// 命中未击破目标时发射箭头并登记动画，返回是否发射
func (s *BubbleScene) HandlePointerDown(x, y float64) bool {
	s.inputSystem.UpdateHover(x, y)
	if !s.inputSystem.HandlePress(x, y) {
		return false
	}
	s.onLaunched()
	return true
}

func (s *BubbleScene) onLaunched() {
	s.audioManager.PlaySound(game.SoundLaunch)
	s.scheduler.Request(s.projectileSystem.Step)
}

// toggleScore 显示/隐藏分数栏并保存设置
func (s *BubbleScene) toggleScore() {
	if s.settingsManager == nil {
		return
	}
	show := !s.settingsManager.GetSettings().ShowScore
	s.settingsManager.SetShowScore(show)
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[BubbleScene] Warning: %v", err)
	}
	log.Printf("[BubbleScene] 分数栏: %v", show)
}

// ScoreVisible 分数栏是否显示（没有设置管理器时总是显示）
func (s *BubbleScene) ScoreVisible() bool {
	return s.settingsManager == nil || s.settingsManager.GetSettings().ShowScore
}

// Reset 恢复初始状态：目标未击破、箭头回到起点、得分清零
// 重复调用结果相同
func (s *BubbleScene) Reset() {
	s.scheduler.Cancel()
	s.projectileSystem.ResetAll()
	s.inputSystem.ClearHover()
	s.scoreSystem.Reset()
	s.session.NextRound()
	log.Printf("[BubbleScene] session=%s 重置, round=%d", s.session.ShortID(), s.session.Round)
}

// Slots 返回全部槽位的状态快照
func (s *BubbleScene) Slots() []systems.SlotState {
	return systems.SnapshotSlots(s.entityManager)
}

// HoverIndex 当前悬停的槽位，-1 表示无
func (s *BubbleScene) HoverIndex() int {
	return s.inputSystem.HoverIndex()
}

// Score 当前得分
func (s *BubbleScene) Score() int {
	return s.scoreSystem.Score()
}

// Completed 本轮是否已全部击破
func (s *BubbleScene) Completed() bool {
	return s.scoreSystem.Completed()
}

// Animating 是否有已登记的动画步进
func (s *BubbleScene) Animating() bool {
	return s.scheduler.Pending()
}

// Session 当前会话
func (s *BubbleScene) Session() *game.Session {
	return s.session
}

// Draw 绘制到逻辑尺寸的表面上
func (s *BubbleScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)

	if !s.ScoreVisible() {
		return
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d / %d", s.scoreSystem.Score(), s.scoreSystem.Total()), 10, 10)
	if s.scoreSystem.Completed() {
		ebitenutil.DebugPrintAt(screen, "All bubbles popped! Press R to play again.", 10, 28)
	}
}

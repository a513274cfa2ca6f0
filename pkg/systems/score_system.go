package systems

import "log"

// ScoreSystem 统计击破数并在全部击破时触发一次完成回调
type ScoreSystem struct {
	total      int
	score      int
	completed  bool
	onComplete []func(score int)
}

// NewScoreSystem 创建计分系统
// total 为本局目标总数
func NewScoreSystem(total int) *ScoreSystem {
	return &ScoreSystem{total: total}
}

// HandlePop 处理击破事件（注册到 ProjectileSystem.OnPop）
func (s *ScoreSystem) HandlePop(ev PopEvent) {
	s.score++
	log.Printf("[ScoreSystem] 得分: %d/%d (slot=%d)", s.score, s.total, ev.Index)

	if s.completed || s.score < s.total {
		return
	}

	// 每局只触发一次，直到 Reset
	s.completed = true
	log.Printf("[ScoreSystem] 全部击破")
	for _, fn := range s.onComplete {
		fn(s.score)
	}
}

// OnComplete 注册完成回调
func (s *ScoreSystem) OnComplete(fn func(score int)) {
	if fn != nil {
		s.onComplete = append(s.onComplete, fn)
	}
}

// Score 当前得分
func (s *ScoreSystem) Score() int {
	return s.score
}

// Total 本局目标总数
func (s *ScoreSystem) Total() int {
	return s.total
}

// Completed 本局是否已全部击破
func (s *ScoreSystem) Completed() bool {
	return s.completed
}

// Reset 清零得分并解除完成锁
func (s *ScoreSystem) Reset() {
	s.score = 0
	s.completed = false
}

package game

// StepFunc 每帧执行一次的步进函数
// 返回 true 表示仍需在下一帧继续执行
type StepFunc func() bool

// FrameScheduler 帧调度器
//
// 模拟"下一次刷新时再执行"的调度方式：Request 登记一个步进函数，
// Tick 在每次 Ebitengine Update 时调用一次，执行已登记的函数；
// 函数返回 true 时自动为下一帧重新登记，返回 false 时停止调度。
//
// 同一帧内重复 Request 只会保留一个待执行函数，保证每帧最多步进一次。
type FrameScheduler struct {
	pending StepFunc
	frames  int // 累计执行的步进次数（调试用）
}

// NewFrameScheduler 创建帧调度器
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Request 为下一帧登记步进函数
// 已有待执行函数时，新函数替换旧函数（仍然只执行一次）
func (fs *FrameScheduler) Request(fn StepFunc) {
	if fn == nil {
		return
	}
	fs.pending = fn
}

// Pending 是否有待执行的步进函数
func (fs *FrameScheduler) Pending() bool {
	return fs.pending != nil
}

// Cancel 取消待执行的步进函数
func (fs *FrameScheduler) Cancel() {
	fs.pending = nil
}

// Tick 执行一次待执行的步进函数
//
// 返回：
//   - bool: 本次是否执行了步进函数
func (fs *FrameScheduler) Tick() bool {
	fn := fs.pending
	if fn == nil {
		return false
	}

	// 先清除再执行，步进函数内部可以再次 Request
	fs.pending = nil
	fs.frames++

	if fn() && fs.pending == nil {
		fs.pending = fn
	}
	return true
}

// Frames 返回累计执行的步进次数
func (fs *FrameScheduler) Frames() int {
	return fs.frames
}

package game

import (
	"time"

	"github.com/google/uuid"
)

// Session 一局游戏会话
//
// 场景状态归会话所有，会话在场景创建时生成；重置不会创建新会话，
// 只增加 Round 计数。
type Session struct {
	ID        string    // 会话唯一标识（用于日志关联）
	StartedAt time.Time // 会话开始时间
	Round     int       // 当前轮次，从 1 开始，每次重置后加 1
}

// NewSession 创建新会话
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Round:     1,
	}
}

// NextRound 进入下一轮
func (s *Session) NextRound() {
	s.Round++
}

// ShortID 返回会话ID前 8 位（日志前缀用）
func (s *Session) ShortID() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}

// Package repository 包含了数据访问层。
package repository

import (
	"mock-interview-go/internal/model"
	"sync"
)

// DefaultSessionID 是未携带 session_id 的请求使用的共享会话键，
// 保证单会话前端不做任何改动也能正常工作。
const DefaultSessionID = "default"

// DefaultLanguage 是新会话的默认面试语言。
const DefaultLanguage = "Python"

// SessionRepository 定义了会话状态的存取接口。
// 所有状态仅保存在进程内存中，随进程退出而消失。
type SessionRepository interface {
	GetOrCreate(id string) *model.Session
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

// NewSessionRepository 创建一个新的内存会话存储。
func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*model.Session),
	}
}

// GetOrCreate 按会话键返回会话，不存在时创建。空键落到共享的默认会话。
func (r *sessionRepository) GetOrCreate(id string) *model.Session {
	if id == "" {
		id = DefaultSessionID
	}

	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		return s
	}
	s = &model.Session{
		ID:       id,
		Language: DefaultLanguage,
	}
	r.sessions[id] = s
	return s
}

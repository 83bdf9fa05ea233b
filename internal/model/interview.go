// Package model 包含了应用的数据模型定义。
package model

import (
	"fmt"
	"sync"
)

// 消息角色常量，与模型后端的 chat 接口约定一致。
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage 代表对话中的一条消息。
type ChatMessage struct {
	Role    string `json:"role"` // "system"、"user" 或 "assistant"
	Content string `json:"content"`
}

// Problem 代表当前加载的面试题目上下文。
type Problem struct {
	Title       string `json:"title"`
	Description string `json:"description"` // 原始 HTML，含示例与约束
	Difficulty  string `json:"difficulty"`
}

// ContextText 将题目格式化为注入系统提示词的上下文文本。
func (p *Problem) ContextText() string {
	return fmt.Sprintf("%s (Difficulty: %s)\n\n%s", p.Title, p.Difficulty, p.Description)
}

// Session 代表一场面试会话的全部可变状态：对话历史、当前题目和目标语言。
// 会话内的读写必须在持有锁的情况下进行，同一会话的请求由此被串行化。
type Session struct {
	ID       string
	Language string
	Problem  *Problem
	History  []ChatMessage

	mu sync.Mutex
}

// Lock 获取会话锁。
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock 释放会话锁。
func (s *Session) Unlock() {
	s.mu.Unlock()
}

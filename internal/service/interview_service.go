package service

import (
	"context"
	"fmt"
	"mock-interview-go/internal/model"
	"mock-interview-go/internal/prompt"
	"mock-interview-go/internal/repository"
	"mock-interview-go/pkg/llm"
	"mock-interview-go/pkg/log"
	"strings"
)

// EmptyReplyFallback 是模型返回空内容时的兜底回复。
// 它会像普通回复一样写入对话历史并返回给前端。
const EmptyReplyFallback = "⚠️ Hmm, that didn't generate much—try rephrasing? (Check Ollama logs.)"

// ResetNotice 是识别到重置指令后返回的固定提示。
const ResetNotice = "Interview session ended. Chat history and problem context have been cleared."

// resetCommands 列出会在代码层直接清空会话的指令。
// 历史版本只在提示词里要求模型"假装"遗忘而从不真正清空状态，这里改为显式清空。
var resetCommands = []string{
	"end interview",
	"stop",
	"reset",
	"stop session and clear the memory",
}

// InterviewService 定义了面试对话的接口。
type InterviewService interface {
	// ProcessTurn 处理一轮对话：追加用户消息、重建系统提示词、调用模型后端并追加回复。
	ProcessTurn(ctx context.Context, sessionID, message, language string) (string, error)
	// SetLanguage 更新会话的面试语言并返回当前生效的语言。未识别的值原样透传。
	SetLanguage(sessionID, language string) string
}

type interviewService struct {
	sessions  repository.SessionRepository
	llmClient llm.Client
	template  *prompt.Template
}

// NewInterviewService 创建一个新的 InterviewService 实例。
func NewInterviewService(sessions repository.SessionRepository, llmClient llm.Client, template *prompt.Template) InterviewService {
	return &interviewService{
		sessions:  sessions,
		llmClient: llmClient,
		template:  template,
	}
}

func (s *interviewService) ProcessTurn(ctx context.Context, sessionID, message, language string) (string, error) {
	session := s.sessions.GetOrCreate(sessionID)
	// 持锁覆盖整个 读历史-调用后端-写回复 序列，同一会话的并发请求被串行化
	session.Lock()
	defer session.Unlock()

	if language != "" && language != session.Language {
		session.Language = language
	}

	if isResetCommand(message) {
		session.History = nil
		session.Problem = nil
		log.Infof("会话 %s 已重置", session.ID)
		return ResetNotice, nil
	}

	session.History = append(session.History, model.ChatMessage{Role: model.RoleUser, Content: message})

	// 系统提示词每轮重新渲染且不写入历史，换题和切换语言会追溯作用于全部历史
	systemPrompt := s.template.RenderSystem(session.Language, session.Problem)
	messages := make([]llm.Message, 0, len(session.History)+1)
	messages = append(messages, llm.Message{Role: model.RoleSystem, Content: systemPrompt})
	for _, m := range session.History {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}

	log.Infof("调用模型后端: session=%s, turns=%d", session.ID, len(messages))
	reply, err := s.llmClient.ChatMessages(ctx, messages)
	if err != nil {
		// 失败时用户消息保留在历史中，不追加助手侧
		log.Errorf("模型后端调用失败: %v", err)
		return "", fmt.Errorf("model backend request failed: %w", err)
	}

	if strings.TrimSpace(reply) == "" {
		reply = EmptyReplyFallback
	}
	session.History = append(session.History, model.ChatMessage{Role: model.RoleAssistant, Content: reply})

	return reply, nil
}

func (s *interviewService) SetLanguage(sessionID, language string) string {
	session := s.sessions.GetOrCreate(sessionID)
	session.Lock()
	defer session.Unlock()

	if language != "" {
		session.Language = language
	}
	return session.Language
}

func isResetCommand(message string) bool {
	m := strings.ToLower(strings.TrimSpace(message))
	for _, cmd := range resetCommands {
		if m == cmd {
			return true
		}
	}
	return false
}

package service

import (
	"context"
	"fmt"
	"mock-interview-go/internal/model"
	"mock-interview-go/internal/prompt"
	"mock-interview-go/pkg/llm"
	"mock-interview-go/pkg/log"
	"strings"
)

// NoSummaryFallback 是模型未生成任何总结内容时返回的文案。
const NoSummaryFallback = "No summary generated by Ollama."

// SummaryService 定义了面试总结的接口。
// 对话记录和题目标题由调用方提供，总结路径不读写会话状态。
type SummaryService interface {
	Summarize(ctx context.Context, transcript []model.ChatMessage, problemTitle string) (string, error)
}

type summaryService struct {
	llmClient llm.Client
	template  *prompt.SummaryTemplate
}

// NewSummaryService 创建一个新的 SummaryService 实例。
func NewSummaryService(llmClient llm.Client, template *prompt.SummaryTemplate) SummaryService {
	return &summaryService{
		llmClient: llmClient,
		template:  template,
	}
}

func (s *summaryService) Summarize(ctx context.Context, transcript []model.ChatMessage, problemTitle string) (string, error) {
	promptText, err := s.template.Render(transcript, problemTitle)
	if err != nil {
		log.Errorf("构建总结提示词失败: %v", err)
		return "", fmt.Errorf("Failed to generate summary: %v", err)
	}

	// 一次性的 system-only 调用，不携带任何历史
	reply, err := s.llmClient.ChatMessages(ctx, []llm.Message{
		{Role: model.RoleSystem, Content: promptText},
	})
	if err != nil {
		log.Errorf("总结请求失败: %v", err)
		return "", fmt.Errorf("Failed to generate summary: %v", err)
	}

	if strings.TrimSpace(reply) == "" {
		reply = NoSummaryFallback
	}
	return reply, nil
}

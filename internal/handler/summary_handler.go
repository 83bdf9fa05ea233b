package handler

import (
	"mock-interview-go/internal/model"
	"mock-interview-go/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 负责处理面试总结请求。
type SummaryHandler struct {
	summaryService service.SummaryService
}

// NewSummaryHandler 创建一个新的 SummaryHandler。
func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

type summarizeRequest struct {
	ChatHistory  []model.ChatMessage `json:"chat_history"`
	ProblemTitle string              `json:"problem_title"`
}

// Summarize 基于调用方提供的对话记录生成面试总结，不读写会话状态。
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "invalid request body"})
		return
	}

	reply, err := h.summaryService.Summarize(c.Request.Context(), req.ChatHistory, req.ProblemTitle)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

package handler

import (
	"fmt"
	"mock-interview-go/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InterviewHandler 负责处理对话轮次和语言切换请求。
type InterviewHandler struct {
	interviewService service.InterviewService
}

// NewInterviewHandler 创建一个新的 InterviewHandler。
func NewInterviewHandler(interviewService service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewService: interviewService}
}

type askRequest struct {
	Message   string `json:"message"`
	Language  string `json:"language"`
	SessionID string `json:"session_id"`
}

// Ask 处理一轮对话请求。
func (h *InterviewHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "invalid request body"})
		return
	}

	reply, err := h.interviewService.ProcessTurn(c.Request.Context(), req.SessionID, req.Message, req.Language)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

type setLanguageRequest struct {
	Language  string `json:"language"`
	SessionID string `json:"session_id"`
}

// SetLanguage 更新会话的面试语言。未识别的值原样透传而不报错。
func (h *InterviewHandler) SetLanguage(c *gin.Context) {
	var req setLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "invalid request body"})
		return
	}

	language := h.interviewService.SetLanguage(req.SessionID, req.Language)
	c.JSON(http.StatusOK, gin.H{
		"language": language,
		"message":  fmt.Sprintf("Language set to %s", language),
	})
}

// Package handler 包含了处理 HTTP 请求的控制器逻辑。
// 业务失败统一以 200 + {"error": ...} 返回，错误文案是前端依赖的契约。
package handler

import (
	"mock-interview-go/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProblemHandler 负责处理题目加载请求。
type ProblemHandler struct {
	problemService service.ProblemService
}

// NewProblemHandler 创建一个新的 ProblemHandler。
func NewProblemHandler(problemService service.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemService: problemService}
}

type setProblemRequest struct {
	ProblemDescription string `json:"problem_description"`
	SessionID          string `json:"session_id"`
}

// SetProblem 按 ID 或 URL 加载题目，并替换会话中的题目上下文。
func (h *ProblemHandler) SetProblem(c *gin.Context) {
	var req setProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": service.ErrEmptyInput.Error()})
		return
	}

	problem, err := h.problemService.LoadProblem(c.Request.Context(), req.SessionID, req.ProblemDescription)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"problem": gin.H{
			"title":       problem.Title,
			"description": problem.Description,
			"difficulty":  problem.Difficulty,
		},
		"raw": problem.Description,
	})
}

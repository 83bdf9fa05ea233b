package service

import (
	"context"
	"errors"
	"fmt"
	"mock-interview-go/internal/model"
	"mock-interview-go/internal/repository"
	"mock-interview-go/pkg/leetcode"
	"mock-interview-go/pkg/log"
	"regexp"
	"strings"
)

// problemSlugRe 提取 /problems/ 与下一个 / 或 ? 之间的路径段。
var problemSlugRe = regexp.MustCompile(`/problems/([^/?]+)`)

// ProblemService 定义了题目加载的接口。
type ProblemService interface {
	// LoadProblem 解析输入、拉取题目数据，并整体替换会话中的题目上下文。
	LoadProblem(ctx context.Context, sessionID, input string) (*model.Problem, error)
}

type problemService struct {
	sessions repository.SessionRepository
	client   *leetcode.Client
}

// NewProblemService 创建一个新的 ProblemService 实例。
func NewProblemService(sessions repository.SessionRepository, client *leetcode.Client) ProblemService {
	return &problemService{
		sessions: sessions,
		client:   client,
	}
}

// ParseProblemQuery 将用户输入规范化为题目查询键：
// 纯数字视为题目 ID；含 /problems/ 的链接提取 slug；其余输入视为非法。
func ParseProblemQuery(input string) (string, error) {
	in := strings.TrimSpace(input)
	if in == "" {
		return "", ErrEmptyInput
	}
	if isDigits(in) {
		return in, nil
	}
	if strings.Contains(in, "/problems/") {
		m := problemSlugRe.FindStringSubmatch(in)
		if m == nil {
			return "", ErrInvalidURL
		}
		return m[1], nil
	}
	return "", ErrInvalidInput
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *problemService) LoadProblem(ctx context.Context, sessionID, input string) (*model.Problem, error) {
	query, err := ParseProblemQuery(input)
	if err != nil {
		return nil, err
	}

	log.Infof("拉取题目数据: query=%s", query)
	raw, err := s.client.GetProblem(ctx, query)
	if err != nil {
		log.Errorf("题目接口请求失败: %v", err)
		if errors.Is(err, leetcode.ErrBadResponse) {
			return nil, ErrProblemServer
		}
		return nil, fmt.Errorf("Failed to fetch problem: %v", err)
	}

	problem := &model.Problem{
		Title:       raw.Title,
		Description: raw.Content,
		Difficulty:  raw.Difficulty,
	}
	if problem.Title == "" {
		problem.Title = fmt.Sprintf("Problem %s", strings.TrimSpace(input))
	}
	if problem.Difficulty == "" {
		problem.Difficulty = "Unknown"
	}

	// 整体替换会话中的题目上下文，不与旧题目合并
	session := s.sessions.GetOrCreate(sessionID)
	session.Lock()
	session.Problem = problem
	session.Unlock()

	return problem, nil
}

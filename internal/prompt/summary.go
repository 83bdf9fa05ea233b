package prompt

import (
	"encoding/json"
	"fmt"
	"mock-interview-go/internal/model"
	"strings"
)

// SummaryTemplate 定义面试总结的评分维度与输出格式，渲染为一次性的评估提示词。
type SummaryTemplate struct {
	Intro      string   // 含一个 %s 占位，填入题目标题
	Dimensions []string // 五个 0-10 评分维度
	Sections   []string // Markdown 输出段落模板
	Closing    string
}

// DefaultSummary 返回内置的面试总结模板。
func DefaultSummary() *SummaryTemplate {
	return &SummaryTemplate{
		Intro: "You are an expert AI interviewer. Summarize this coding interview for '%s':",
		Dimensions: []string{
			"Problem Understanding",
			"Communication",
			"Approach & Reasoning",
			"Code Quality & Complexity",
			"Edge Case Handling",
		},
		Sections: []string{
			"**Recommendation:** Hire / No Hire with a one-line justification.",
			"**Strengths:** Concise positives (reasoning, communication, edges).",
			"**Areas to Improve:** Concise areas to improve.",
			"**Suggestions:** 2-3 tips to focus on next (e.g., 'Mock more test cases').",
			"**Related Problems:** Suggest 3 similar LeetCode problems with IDs/titles (e.g., '88 - Merge Sorted Array: Builds array manip').",
		},
		Closing: "Keep encouraging, professional—aim for Hire/No Hire vibe.",
	}
}

// Render 把外部提供的对话记录嵌入评估提示词。总结路径不读写会话状态，
// 前端可以传入经过裁剪或缓存的记录。
func (t *SummaryTemplate) Render(transcript []model.ChatMessage, problemTitle string) (string, error) {
	historyJSON, err := json.MarshalIndent(transcript, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize chat history: %w", err)
	}

	var breakdown strings.Builder
	for i, d := range t.Dimensions {
		if i > 0 {
			breakdown.WriteString(", ")
		}
		breakdown.WriteString(d)
		breakdown.WriteString(" /10")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(t.Intro, problemTitle))
	sb.WriteString("\n\n=== Chat History ===\n")
	sb.Write(historyJSON)
	sb.WriteString("\n\n")
	sb.WriteString("CRITICAL: Do NOT rate the code if the candidate did not write any.\n")
	sb.WriteString("Output in Markdown:\n")
	sb.WriteString(fmt.Sprintf("**Rating: X/10** (Overall out of 10, with breakdown: %s)\n", breakdown.String()))
	for _, s := range t.Sections {
		sb.WriteString(s)
		sb.WriteString("\n")
	}
	sb.WriteString(t.Closing)

	return sb.String(), nil
}

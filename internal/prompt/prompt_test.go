package prompt

import (
	"testing"

	"mock-interview-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSystemWithoutProblem(t *testing.T) {
	tpl := Default()

	got := tpl.RenderSystem("Python", nil)
	assert.Contains(t, got, "Your name is Cody")
	assert.Contains(t, got, "Python")
	assert.NotContains(t, got, "=== Problem ===")
}

func TestRenderSystemWithProblem(t *testing.T) {
	tpl := Default()
	problem := &model.Problem{
		Title:       "Valid Anagram",
		Description: "<p>Given two strings...</p>",
		Difficulty:  "Easy",
	}

	got := tpl.RenderSystem("Go", problem)
	assert.Contains(t, got, "Go")
	assert.Contains(t, got, "=== Problem ===")
	assert.Contains(t, got, "Valid Anagram (Difficulty: Easy)")
	assert.Contains(t, got, "<p>Given two strings...</p>")
}

func TestRenderSystemKeepsContractWording(t *testing.T) {
	got := Default().RenderSystem("C++", nil)

	// 行为规则和内容红线的措辞是模型行为契约，必须原样出现
	assert.Contains(t, got, "Do NOT accidentally solve the problem.")
	assert.Contains(t, got, "Never name specific data structures or algorithms as hints.")
	assert.Contains(t, got, "Keep responses to 2-3 sentences and ask exactly one focused question per turn.")
	assert.Contains(t, got, "Do NOT share any medical, legal, financial advice.")
	assert.Contains(t, got, "Do NOT share any content that promotes violence or self-harm.")
	assert.Contains(t, got, "clear all chat history and current problem context")
}

func TestSummaryRender(t *testing.T) {
	tpl := DefaultSummary()
	transcript := []model.ChatMessage{
		{Role: model.RoleUser, Content: "I would use a hash map here."},
		{Role: model.RoleAssistant, Content: "What is the time complexity?"},
	}

	got, err := tpl.Render(transcript, "Two Sum")
	require.NoError(t, err)

	assert.Contains(t, got, "Summarize this coding interview for 'Two Sum'")
	assert.Contains(t, got, "=== Chat History ===")
	assert.Contains(t, got, "I would use a hash map here.")
	for _, dim := range tpl.Dimensions {
		assert.Contains(t, got, dim+" /10")
	}
	assert.Contains(t, got, "**Recommendation:** Hire / No Hire")
	assert.Contains(t, got, "Related Problems")
}

func TestSummaryRenderEmptyTranscript(t *testing.T) {
	got, err := DefaultSummary().Render(nil, "")
	require.NoError(t, err)
	assert.Contains(t, got, "=== Chat History ===")
}

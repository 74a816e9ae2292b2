package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrectEssayReturnsExtractedJSON(t *testing.T) {
	env := newTestEnv(t)
	env.ai.GenerateFunc = func(context.Context, string) (string, error) {
		return "Aqui está:\n```json\n{\"total_score\": 880, \"competencies\": {\"c1\": 180}, \"feedback\": \"bom\"}\n```", nil
	}

	w := postJSON(t, env.handlers.CorrectEssay, map[string]string{
		"theme": "educação digital",
		"essay": "texto da redação",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(880), body["total_score"])
	assert.Equal(t, "bom", body["feedback"])
}

func TestCorrectEssayUnparseableOutputReturns500(t *testing.T) {
	env := newTestEnv(t)
	env.ai.GenerateFunc = func(context.Context, string) (string, error) {
		return "desculpe, não consegui corrigir", nil
	}

	w := postJSON(t, env.handlers.CorrectEssay, map[string]string{
		"theme": "t", "essay": "e",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["error"])
}

func TestMockInterviewReturnsQuestionsAndTips(t *testing.T) {
	env := newTestEnv(t)
	env.ai.GenerateFunc = func(_ context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "Backend Go")
		assert.Contains(t, prompt, "Acme")
		return `{"questions": [{"q": "Fale sobre goroutines", "a": "..."}], "tips": ["Seja direto"]}`, nil
	}

	w := postJSON(t, env.handlers.MockInterview, map[string]string{
		"role":    "Backend Go",
		"company": "Acme",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	questions, ok := body["questions"].([]interface{})
	require.True(t, ok)
	assert.Len(t, questions, 1)
	assert.Len(t, body["tips"], 1)
}

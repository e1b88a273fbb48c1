package fetch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NethermindEth/prompt-garden/pkg/agent/fetch"
	"github.com/NethermindEth/prompt-garden/pkg/agent/queue"
)

func TestCallsNeeded(t *testing.T) {
	tests := []struct {
		count       int
		perResponse int
		want        int
	}{
		{count: 1, perResponse: 10, want: 1},
		{count: 10, perResponse: 10, want: 1},
		{count: 11, perResponse: 10, want: 2},
		{count: 100, perResponse: 20, want: 5},
		{count: 0, perResponse: 50, want: 1},
		{count: math.MaxInt, perResponse: 50, want: math.MaxInt/50 + 1},
		{count: math.MaxInt, perResponse: 1, want: math.MaxInt},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fetch.CallsNeeded(tt.count, tt.perResponse), "count=%d perResponse=%d", tt.count, tt.perResponse)
	}
}

func TestItemsPerResponse(t *testing.T) {
	assert.Equal(t, 50, fetch.ItemsPerResponse(queue.CategoryImages, queue.ItemTypeThemes))
	assert.Equal(t, 20, fetch.ItemsPerResponse(queue.CategoryImages, queue.ItemTypeQuestions))
	assert.Equal(t, 10, fetch.ItemsPerResponse(queue.CategoryText, queue.ItemTypeQuestions))
	assert.Equal(t, 0, fetch.ItemsPerResponse(queue.CategoryText, queue.ItemTypeThemes))
}

func TestPrompts(t *testing.T) {
	assert.Contains(t, fetch.ImageThemesPrompt(), "list of 50 unique")
	assert.Contains(t, fetch.ImageQuestionsPrompt("Neon Nights"), "list of 20 creative")
	assert.Contains(t, fetch.ImageQuestionsPrompt("Neon Nights"), "inspired by the theme 'Neon Nights'")
	assert.Contains(t, fetch.TextQuestionPrompt("History", 3, 7), "complexity level of 3 out of 10 and a relevance level to the theme of 7 out of 10")
}

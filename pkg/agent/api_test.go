package agent_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NethermindEth/prompt-garden/pkg/agent"
	"github.com/NethermindEth/prompt-garden/pkg/agent/queue"
)

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestAgentApi_GetRouter(t *testing.T) {
	store := &mockStore{}
	testAgent := setupTestAgent(t, func(config *agent.AgentConfig) {
		config.Store = store
		config.Fetcher = &mockFetcher{
			fetch: func(ctx context.Context, category queue.Category, itemType queue.ItemType, count int, theme string) []string {
				if category == queue.CategoryText && itemType == queue.ItemTypeThemes {
					return []string{"History"}
				}
				if category == queue.CategoryImages && itemType == queue.ItemTypeQuestions {
					return []string{"scenario for " + theme}
				}
				return nil
			},
		}
	})
	router := testAgent.GetRouter()

	t.Run("GET /health", func(t *testing.T) {
		w := serve(router, "GET", "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("GET /take", func(t *testing.T) {
		w := serve(router, "GET", "/take/images/questions?count=20&theme=Neon%20Nights")

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "scenario for Neon Nights", body["item"])
	})

	t.Run("GET /take invalid category", func(t *testing.T) {
		w := serve(router, "GET", "/take/audio/questions")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid category")
	})

	t.Run("GET /take invalid item type", func(t *testing.T) {
		w := serve(router, "GET", "/take/text/answers")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid item type")
	})

	t.Run("GET /take invalid count", func(t *testing.T) {
		w := serve(router, "GET", "/take/text/questions?count=zero")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET /take count above maximum", func(t *testing.T) {
		w := serve(router, "GET", "/take/images/themes?count=9223372036854775807")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "count must be an integer between 1 and")
	})

	t.Run("GET /take no item available", func(t *testing.T) {
		w := serve(router, "GET", "/take/text/questions?count=10")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "no item available")
	})

	t.Run("GET /state", func(t *testing.T) {
		w := serve(router, "GET", "/state")

		assert.Equal(t, http.StatusOK, w.Code)

		var state map[string]map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
		assert.Contains(t, state, "text")
		assert.Contains(t, state, "images")
		assert.Nil(t, state["images"]["questions"])
		assert.EqualValues(t, 1, state["images"]["question_counter"])
	})

	t.Run("GET /stats", func(t *testing.T) {
		w := serve(router, "GET", "/stats")

		assert.Equal(t, http.StatusOK, w.Code)

		var stats queue.Stats
		require.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
		assert.Equal(t, 1, stats.Served)
		assert.Equal(t, 1, stats.ThemesForRefills)
		assert.Equal(t, 1, stats.ThemeCounters[queue.CategoryText])
		assert.Equal(t, 1, stats.QuestionCounters[queue.CategoryImages])
	})

	t.Run("POST /state/save", func(t *testing.T) {
		w := serve(router, "POST", "/state/save")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Len(t, store.saved(), 1)
	})
}

package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibylline-app/sibyl/internal/model"
)

// chatServer returns an httptest server that replies to every completion
// with the given content.
func chatServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"upstream failure"}`))
			return
		}

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func testClient(t *testing.T, baseURL string) Client {
	t.Helper()
	client, err := newChatClient(Config{
		Provider: "deepseek",
		APIKey:   "test-key",
		BaseURL:  baseURL,
	})
	require.NoError(t, err)
	return client
}

func TestChatClientClassify(t *testing.T) {
	t.Run("recognized tag", func(t *testing.T) {
		srv := chatServer(t, "relationship", http.StatusOK)
		defer srv.Close()

		tag, err := testClient(t, srv.URL).Classify(context.Background(), "Will my partner and I stay together?")
		require.NoError(t, err)
		assert.Equal(t, model.CategoryRelationship, tag)
	})

	t.Run("label is trimmed and lowercased", func(t *testing.T) {
		srv := chatServer(t, "  Decision.\n", http.StatusOK)
		defer srv.Close()

		tag, err := testClient(t, srv.URL).Classify(context.Background(), "Should I move?")
		require.NoError(t, err)
		assert.Equal(t, model.CategoryDecision, tag)
	})

	t.Run("unrecognized label is empty, not an error", func(t *testing.T) {
		srv := chatServer(t, "philosophy", http.StatusOK)
		defer srv.Close()

		tag, err := testClient(t, srv.URL).Classify(context.Background(), "What is the meaning of life?")
		require.NoError(t, err)
		assert.Empty(t, tag)
	})

	t.Run("API error surfaces", func(t *testing.T) {
		srv := chatServer(t, "", http.StatusInternalServerError)
		defer srv.Close()

		_, err := testClient(t, srv.URL).Classify(context.Background(), "Will it work?")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})
}

func TestChatClientGenerate(t *testing.T) {
	narrative := "1. **Story** A clear path opens.\n2. **Risk** haste\n3. **Timing** weeks\n4. **Act** proceed steadily"
	srv := chatServer(t, narrative, http.StatusOK)
	defer srv.Close()

	got, err := testClient(t, srv.URL).Generate(context.Background(), "reading prompt")
	require.NoError(t, err)
	assert.Equal(t, narrative, got)
}

func TestNewChatClient(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := newChatClient(Config{Provider: "deepseek"})
		require.Error(t, err)
	})

	t.Run("rejects unknown providers", func(t *testing.T) {
		_, err := newChatClient(Config{Provider: "oracle-bones", APIKey: "k"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported LLM provider")
	})
}

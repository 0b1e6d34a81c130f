package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sibylline-app/sibyl/internal/model"
)

// chatClient implements Client against an OpenAI-compatible chat completions
// endpoint. DeepSeek and OpenAI both speak this format; only the base URL
// and default model differ.
type chatClient struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

// newChatClient creates a chat completions client.
func newChatClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required for provider %q", cfg.Provider)
	}

	baseURL := cfg.BaseURL
	model := cfg.Model
	switch strings.ToLower(cfg.Provider) {
	case "deepseek":
		if baseURL == "" {
			baseURL = "https://api.deepseek.com/v1"
		}
		if model == "" {
			model = "deepseek-chat"
		}
	case "openai":
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}
		if model == "" {
			model = "gpt-4o-mini"
		}
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 800
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &chatClient{
		apiKey:      cfg.APIKey,
		model:       model,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

const classifySystemPrompt = "You are a question classifier for a card reading service. " +
	"Respond with EXACTLY ONE word: the single best category for the question, chosen from " +
	"future, timing, decision, yesno, problem, solution, relationship, career, wellness, money, general, complex. " +
	"No punctuation, no explanation."

// Classify sends the question for single-label classification. Unrecognized
// labels resolve to an empty tag rather than an error; the caller falls
// back to its local scorer either way.
func (c *chatClient) Classify(ctx context.Context, question string) (model.CategoryTag, error) {
	content, err := c.complete(ctx, classifySystemPrompt, question, 10, 0.0)
	if err != nil {
		return "", err
	}

	tag := model.CategoryTag(strings.ToLower(strings.TrimSpace(strings.Trim(content, ".!\"'"))))
	if !knownTags[tag] {
		return "", nil
	}
	return tag, nil
}

var knownTags = map[model.CategoryTag]bool{
	model.CategoryFuture:       true,
	model.CategoryTiming:       true,
	model.CategoryDecision:     true,
	model.CategoryYesNo:        true,
	model.CategoryProblem:      true,
	model.CategorySolution:     true,
	model.CategoryRelationship: true,
	model.CategoryCareer:       true,
	model.CategoryWellness:     true,
	model.CategoryMoney:        true,
	model.CategoryGeneral:      true,
	model.CategoryComplex:      true,
}

const generateSystemPrompt = "You are an experienced Lenormand card reader. " +
	"Interpret the drawn spread for the querent's question. Respond with four numbered items: " +
	"1. **Story** the narrative the cards tell, 2. **Risk** what to watch for, " +
	"3. **Timing** when things unfold, 4. **Act** one concrete recommended action."

// Generate produces a free-form reading narrative.
func (c *chatClient) Generate(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, generateSystemPrompt, prompt, c.maxTokens, c.temperature)
}

// complete performs one chat completion round trip.
func (c *chatClient) complete(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", strings.NewReader(string(jsonBody)))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return response.Choices[0].Message.Content, nil
}

// chatResponse represents the chat completions response structure.
type chatResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
		Index        int    `json:"index"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Created int64 `json:"created"`
}

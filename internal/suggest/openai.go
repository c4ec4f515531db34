package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"smartlinks/pkg/webpage"

	"go.uber.org/zap"
)

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

// OpenAIAnalyzer asks a chat-completions model for link metadata. The page is
// scraped first so the model sees real content. A failed or timed-out API
// call surfaces as an error to the caller; there is no silent fallback at
// this layer.
type OpenAIAnalyzer struct {
	apiKey     string
	model      string
	httpClient *http.Client
	log        *zap.Logger
}

func NewOpenAIAnalyzer(apiKey, model string, httpClient *http.Client, log *zap.Logger) *OpenAIAnalyzer {
	return &OpenAIAnalyzer{
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
		log:        log,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (a *OpenAIAnalyzer) AnalyzeURL(ctx context.Context, url string) (*Analysis, error) {
	content := webpage.Fetch(ctx, a.httpClient, url)

	prompt := analysisPrompt(url, content)
	raw, err := a.complete(ctx, []chatMessage{
		{
			Role:    "system",
			Content: "You are an expert at analyzing web content and creating memorable, concise keywords for internal company links. Respond only with valid JSON.",
		},
		{Role: "user", Content: prompt},
	}, 0.3, 500)
	if err != nil {
		a.log.Error("URL analysis failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(stripFences(raw)), &analysis); err != nil {
		a.log.Error("failed to parse analysis response", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	analysis.Category = normalizeCategory(analysis.Category)
	analysis.ContentType = content.ContentType
	analysis.ExtractedTitle = content.Title
	analysis.ExtractedDescription = content.Description
	return &analysis, nil
}

func (a *OpenAIAnalyzer) SuggestKeywords(ctx context.Context, text string, existing []string) ([]string, error) {
	prompt := fmt.Sprintf(`Generate 5 short, memorable keywords for this text that would work well in a "go/keyword" format:

Text: %q

Existing keywords to avoid: %s

Requirements:
- 2-15 characters each
- Lowercase with hyphens/underscores only
- Intuitive and easy to remember
- Suitable for internal company links

Return as JSON array: ["keyword1", "keyword2", "keyword3", "keyword4", "keyword5"]`,
		text, strings.Join(existing, ", "))

	raw, err := a.complete(ctx, []chatMessage{
		{
			Role:    "system",
			Content: "You are an expert at creating short, memorable keywords. Respond only with valid JSON.",
		},
		{Role: "user", Content: prompt},
	}, 0.5, 100)
	if err != nil {
		a.log.Error("keyword suggestion failed", zap.Error(err))
		return nil, err
	}

	var keywords []string
	if err := json.Unmarshal([]byte(stripFences(raw)), &keywords); err != nil {
		a.log.Error("failed to parse keyword response", zap.Error(err))
		return nil, fmt.Errorf("failed to parse keyword response: %w", err)
	}
	return keywords, nil
}

// Ping issues a minimal completion to verify API connectivity.
func (a *OpenAIAnalyzer) Ping(ctx context.Context) error {
	_, err := a.complete(ctx, []chatMessage{
		{Role: "user", Content: "Say 'AI connection successful'"},
	}, 0, 10)
	return err
}

func (a *OpenAIAnalyzer) complete(ctx context.Context, messages []chatMessage, temperature float64, maxTokens int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("completion API error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API returned status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func analysisPrompt(url string, content *webpage.Content) string {
	body := content.Body
	if len(body) > 1000 {
		body = body[:1000]
	}

	return fmt.Sprintf(`Analyze this URL and content to create internal company link suggestions:

URL: %s
Title: %s
Description: %s
Content: %s

Please provide a JSON response with:
1. A clean, professional title (max 60 chars)
2. A helpful description (max 150 chars)
3. The most appropriate category from: [Development, Productivity, Communication, HR, Marketing, Finance, General]
4. 3-5 suggested keywords that are:
   - Short (2-15 characters)
   - Memorable and intuitive
   - Lowercase with hyphens/underscores only
   - Would make sense in a "go/keyword" format

Example format:
{
    "title": "GitHub Repository Platform",
    "description": "Code hosting and collaboration for software development teams",
    "category": "Development",
    "keywords": ["github", "code", "repo", "git", "dev-tools"]
}

Focus on what this link would be useful for in a company context.`,
		url, orNA(content.Title), orNA(content.Description), orNA(body))
}

// stripFences removes markdown code fences some models wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

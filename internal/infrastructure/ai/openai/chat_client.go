package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/httpclient"
	"github.com/Tomas-vilte/MateReview/internal/logger"
)

var _ ports.Reviewer = (*ChatClient)(nil)

// ChatClient habla con cualquier endpoint OpenAI-compatible de chat-completions.
// Los proveedores openai, azure y github comparten el formato del payload y
// solo difieren en endpoint, autenticación y query params.
type ChatClient struct {
	name       string
	endpoint   string
	headers    map[string]string
	query      url.Values
	model      string
	httpClient httpclient.HTTPClient
}

func NewChatClient(name, endpoint, model string, headers map[string]string, query url.Values) *ChatClient {
	return &ChatClient{
		name:       name,
		endpoint:   endpoint,
		headers:    headers,
		query:      query,
		model:      model,
		httpClient: httpclient.DefaultHTTPClient(),
	}
}

func (c *ChatClient) Name() string { return c.name }

func (c *ChatClient) GenerateReview(ctx context.Context, req models.ReviewRequest) (models.Review, error) {
	log := logger.FromContext(ctx)
	log.Debug("enviando review al proveedor",
		"provider", c.name,
		"model", c.model,
		"max_tokens", req.MaxOutputTokens)

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		MaxTokens: req.MaxOutputTokens,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return models.Review{}, fmt.Errorf("error al serializar la petición: %w", err)
	}

	endpoint := c.endpoint
	if len(c.query) > 0 {
		endpoint = endpoint + "?" + c.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return models.Review{}, fmt.Errorf("error al crear la petición: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return models.Review{}, fmt.Errorf("error al llamar a la API de %s: %w", c.name, err)
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return models.Review{}, fmt.Errorf("error al leer la respuesta: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return models.Review{}, fmt.Errorf("la API de %s respondió %d: %s", c.name, httpResp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return models.Review{}, fmt.Errorf("error al parsear la respuesta: %w", err)
	}

	if len(result.Choices) == 0 {
		return models.Review{}, fmt.Errorf("la respuesta de %s no trajo choices", c.name)
	}

	log.Debug("respuesta recibida",
		"provider", c.name,
		"tokens", result.Usage.TotalTokens)

	return models.Review{
		Content:    result.Choices[0].Message.Content,
		TokensUsed: result.Usage.TotalTokens,
	}, nil
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatUsage struct {
	TotalTokens int `json:"total_tokens"`
}

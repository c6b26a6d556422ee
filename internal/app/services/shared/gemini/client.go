package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"healthtech-service/internal/app/contracts"
	"healthtech-service/internal/pkg/constvars"
	"healthtech-service/internal/pkg/exceptions"
	"healthtech-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type geminiClient struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

var (
	geminiClientInstance contracts.GenAIClient
	onceGeminiClient     sync.Once
)

// NewGeminiClient builds the generateContent client. The limiter smooths
// bursts against the provider quota, the per-request deadline comes from the
// caller's context.
func NewGeminiClient(baseURL, apiKey, model string, maxRequestsPerSecond float64, logger *zap.Logger) contracts.GenAIClient {
	onceGeminiClient.Do(func() {
		geminiClientInstance = &geminiClient{
			BaseURL: baseURL,
			APIKey:  apiKey,
			Model:   model,
			HTTPClient: &http.Client{
				Timeout: 60 * time.Second,
			},
			Limiter: rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1),
			Log:     logger,
		}
	})
	return geminiClientInstance
}

type generateContentRequest struct {
	SystemInstruction *content         `json:"system_instruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *geminiClient) ModelName() string {
	return c.Model
}

func (c *geminiClient) GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("geminiClient.GenerateContent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("model", c.Model),
	)

	if err := c.Limiter.Wait(ctx); err != nil {
		return "", err
	}

	payload := generateContentRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemPrompt}}},
		Contents:          []content{{Parts: []part{{Text: userPrompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.1,
			TopP:            0.8,
			TopK:            40,
			MaxOutputTokens: 4096,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, c.Model, url.QueryEscape(c.APIKey))
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(responseBody, &parsed); err != nil {
		return "", exceptions.ErrLLMMalformedResponse(err, "non-JSON provider payload")
	}

	if response.StatusCode != http.StatusOK {
		detail := fmt.Sprintf("status %d", response.StatusCode)
		if parsed.Error != nil {
			detail = fmt.Sprintf("status %d: %s", response.StatusCode, parsed.Error.Message)
		}
		c.Log.Error("geminiClient.GenerateContent provider error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
		)
		return "", exceptions.ErrLLMProvider(nil, detail)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", exceptions.ErrLLMEmptyResponse()
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", exceptions.ErrLLMEmptyResponse()
	}

	c.Log.Info("geminiClient.GenerateContent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return text, nil
}

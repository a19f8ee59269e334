package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"craftconnect_backend/internal/config"
	"craftconnect_backend/pkg/monitoring"
)

// TextGenerator is the boundary to the external large-language-model
// endpoint. Implemented by AIService; tests substitute a fake.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerationError reports an upstream text-generation failure, carrying
// the status and body returned by the provider. Callers decide whether
// to surface or retry; the service itself never retries.
type GenerationError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("text generation failed (status %d): %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("text generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ErrGenerationTimeout marks a generation call that exceeded the
// configured deadline, distinct from a provider-side failure.
var ErrGenerationTimeout = errors.New("text generation timed out")

// AIService calls an OpenAI-compatible chat-completions endpoint with a
// fixed model and low temperature. Config may be swapped at runtime by
// the config watcher (key rotation), hence the lock.
type AIService struct {
	mu     sync.RWMutex
	cfg    config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		cfg:    cfg,
		client: newProviderClient(cfg),
	}
}

func newProviderClient(cfg config.AIConfig) *http.Client {
	return &http.Client{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

// UpdateConfig swaps provider settings without restarting in-flight
// calls. The client is replaced, never mutated; requests already running
// keep the old one.
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.client = newProviderClient(cfg)
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string          `json:"model"`
	Messages    []AIChatMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends one prompt and returns the model's raw text reply. The
// reply is not guaranteed to be valid JSON even when JSON is requested;
// validation is the caller's job.
func (s *AIService) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.RLock()
	cfg := s.cfg
	client := s.client
	s.mu.RUnlock()

	reqBody := ChatCompletionRequest{
		Model:       cfg.Model,
		Messages:    []AIChatMessage{{Role: "user", Content: prompt}},
		Temperature: cfg.Temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		if isTimeout(err) {
			monitoring.ObserveAICall("timeout", time.Since(start))
			return "", fmt.Errorf("%w after %s", ErrGenerationTimeout, time.Since(start).Round(time.Millisecond))
		}
		monitoring.ObserveAICall("error", time.Since(start))
		return "", &GenerationError{Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		monitoring.ObserveAICall("error", time.Since(start))
		return "", &GenerationError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		monitoring.ObserveAICall("error", time.Since(start))
		return "", &GenerationError{Err: err}
	}

	if result.Error != nil {
		monitoring.ObserveAICall("error", time.Since(start))
		return "", &GenerationError{StatusCode: resp.StatusCode, Body: result.Error.Message}
	}

	if len(result.Choices) == 0 {
		monitoring.ObserveAICall("error", time.Since(start))
		return "", &GenerationError{Err: errors.New("provider returned no choices")}
	}

	monitoring.ObserveAICall("ok", time.Since(start))
	return result.Choices[0].Message.Content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

package recommendations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"brew-backend/internal/llm"
	"brew-backend/internal/shared/metrics"
	"brew-backend/internal/shared/telemetry"
)

const (
	defaultTimeout = 60 * time.Second
	// maxLoggedText bounds the model text written to logs on parse failure.
	maxLoggedText = 2 << 10
)

// Service turns a brewing setup into a grind recommendation via the model.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	// LLM is nil when no API key is configured.
	LLM     llm.Generator
	Timeout time.Duration
}

// NewService constructs a Service. A nil generator means the credential is missing.
func NewService(gen llm.Generator, timeout time.Duration) *Service {
	return &Service{LLM: gen, Timeout: timeout}
}

// Recommend validates req, asks the model once, and returns its JSON text
// unchanged. The returned error is one of the package sentinels or an llm error.
func (s *Service) Recommend(ctx context.Context, req Request) (json.RawMessage, error) {
	if s == nil || s.LLM == nil {
		metrics.RecordRecommendation(metrics.OutcomeConfigError)
		return nil, ErrMissingAPIKey
	}
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		metrics.RecordRecommendation(metrics.OutcomeInvalidInput)
		return nil, err
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	text, err := s.LLM.GenerateJSON(callCtx, BuildPrompt(req))
	metrics.ObserveLLMDuration(time.Since(start))
	if err != nil {
		if callCtx.Err() != nil && !errors.Is(err, llm.ErrTimeout) {
			err = fmt.Errorf("%w: %w", llm.ErrTimeout, err)
		}
		if errors.Is(err, llm.ErrTimeout) {
			metrics.RecordRecommendation(metrics.OutcomeTimeout)
		} else {
			metrics.RecordRecommendation(metrics.OutcomeUpstreamError)
		}
		return nil, fmt.Errorf("generate recommendation: %w", err)
	}

	raw := bytes.TrimSpace([]byte(text))
	if !json.Valid(raw) {
		telemetry.Error("llm.non_json", map[string]any{
			"text": llm.Truncate(text, maxLoggedText),
		})
		metrics.RecordRecommendation(metrics.OutcomeNonJSON)
		return nil, ErrNonJSON
	}

	metrics.RecordRecommendation(metrics.OutcomeSuccess)
	return json.RawMessage(raw), nil
}

// Describe maps a Recommend error to an HTTP status, error code and message.
func Describe(err error) (int, string, string) {
	var statusErr *llm.StatusError
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return http.StatusInternalServerError, ErrorCodeConfig, MsgMissingAPIKey
	case errors.Is(err, ErrMissingFields):
		return http.StatusBadRequest, ErrorCodeValidation, MsgMissingFields
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, ErrorCodeUpstream, statusErr.Error()
	case errors.Is(err, llm.ErrTimeout):
		return http.StatusGatewayTimeout, ErrorCodeTimeout, MsgTimeout
	case errors.Is(err, llm.ErrTransport):
		return http.StatusBadGateway, ErrorCodeUpstream, MsgTransport
	case errors.Is(err, llm.ErrEmptyResponse):
		return http.StatusBadGateway, ErrorCodeShape, MsgEmptyResponse
	case errors.Is(err, ErrNonJSON):
		return http.StatusBadGateway, ErrorCodeContent, MsgNonJSON
	default:
		return http.StatusInternalServerError, ErrorCodeInternal, MsgInternal
	}
}

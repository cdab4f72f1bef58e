package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
)

// serviceClient calls an external model inference service over HTTP.
type serviceClient struct {
	url        string
	httpClient *http.Client
}

// NewServiceClient returns a Classifier that POSTs features to url.
//   - url:     e.g. "http://127.0.0.1:8000/predict"
//   - timeout: per-request deadline; the request context may cut it shorter
func NewServiceClient(url string, timeout time.Duration) Classifier {
	return &serviceClient{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ─── WIRE SHAPES ──────────────────────────────────────────────────────────────

type serviceRequest struct {
	PHQ9      float64 `json:"phq9"`
	GAD7      float64 `json:"gad7"`
	GHQ12     float64 `json:"ghq12"`
	Quiz      float64 `json:"quiz"`
	MoodAvg   float64 `json:"mood_avg"`
	MoodTrend int     `json:"mood_trend"` // -1 declining, 0 stable, 1 improving
	ChatNeg   float64 `json:"chat_neg"`
}

type serviceResponse struct {
	Risk       string  `json:"risk"`
	Confidence float64 `json:"confidence"`
}

func trendValue(t risk.MoodTrend) int {
	switch t {
	case risk.TrendDeclining:
		return -1
	case risk.TrendImproving:
		return 1
	default:
		return 0
	}
}

// ─── IMPLEMENTATION ───────────────────────────────────────────────────────────

// Classify implements Classifier.
func (c *serviceClient) Classify(ctx context.Context, f risk.Features) (Prediction, error) {
	body, err := json.Marshal(serviceRequest{
		PHQ9:      f.PHQ9,
		GAD7:      f.GAD7,
		GHQ12:     f.GHQ12,
		Quiz:      f.QuizRiskScore,
		MoodAvg:   f.AvgMood7Days,
		MoodTrend: trendValue(f.MoodTrend),
		ChatNeg:   f.NegativeChatRatio,
	})
	if err != nil {
		return Prediction{}, fmt.Errorf("model service: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Prediction{}, fmt.Errorf("model service: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("model service: http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return Prediction{}, fmt.Errorf("model service: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Prediction{}, fmt.Errorf("model service: unexpected status %d: %.200s", resp.StatusCode, string(respBytes))
	}

	var parsed serviceResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return Prediction{}, fmt.Errorf("model service: unmarshal response: %w", err)
	}

	level, err := risk.ParseLevel(parsed.Risk)
	if err != nil {
		return Prediction{}, fmt.Errorf("model service: %w", err)
	}
	if parsed.Confidence < 0 || parsed.Confidence > 1 {
		return Prediction{}, fmt.Errorf("model service: confidence %v out of [0,1]", parsed.Confidence)
	}

	return Prediction{Level: level, Confidence: parsed.Confidence, Source: SourceModel}, nil
}

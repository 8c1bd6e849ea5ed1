// Package conversation composes the per-turn pipeline: classify, query,
// score, rank, and assemble the response bundle.
package conversation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/solacehq/solace/internal/journey"
	"github.com/solacehq/solace/internal/observability"
	"github.com/solacehq/solace/internal/registry"
)

// ErrReplyDegraded signals that the reply-generation collaborator failed
// and the bundle carries the static fallback message instead of generated
// text. The bundle itself is still complete.
var ErrReplyDegraded = errors.New("reply generation degraded")

// ReplyInput is everything the reply generator needs to write the message.
type ReplyInput struct {
	Text           string
	Stage          registry.JourneyStage
	EmotionalState journey.EmotionalState
	Formality      journey.Formality
	Resources      []registry.Resource
	Knowledge      []registry.KnowledgeEntry
}

// ReplyGenerator is the external text-generation collaborator.
type ReplyGenerator interface {
	Generate(ctx context.Context, in ReplyInput) (string, error)
}

// FallbackMessage is the static degraded-mode notice used when the reply
// generator is unreachable. The resource list below it still applies.
const FallbackMessage = "I'm having trouble writing a full reply right now, " +
	"but the support options below are checked and current. If anything feels " +
	"urgent, please use the emergency contacts first."

// HTTPReplyGenerator calls a reply-generation service over HTTP.
type HTTPReplyGenerator struct {
	endpoint string
	client   *http.Client
	logger   *observability.Logger
}

// NewHTTPReplyGenerator creates a generator targeting endpoint.
func NewHTTPReplyGenerator(logger *observability.Logger, endpoint string, timeout time.Duration) *HTTPReplyGenerator {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &HTTPReplyGenerator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type replyRequest struct {
	Text           string   `json:"text"`
	Stage          string   `json:"stage"`
	EmotionalState string   `json:"emotionalState"`
	Formality      string   `json:"formality"`
	ResourceTitles []string `json:"resourceTitles"`
	Knowledge      []string `json:"knowledge"`
}

type replyResponse struct {
	Message string `json:"message"`
}

// Generate posts the turn context and returns the generated message.
func (g *HTTPReplyGenerator) Generate(ctx context.Context, in ReplyInput) (string, error) {
	if g.endpoint == "" {
		return "", fmt.Errorf("reply generator endpoint not configured")
	}

	req := replyRequest{
		Text:           in.Text,
		Stage:          string(in.Stage),
		EmotionalState: string(in.EmotionalState),
		Formality:      string(in.Formality),
	}
	for _, r := range in.Resources {
		req.ResourceTitles = append(req.ResourceTitles, r.Title)
	}
	for _, k := range in.Knowledge {
		req.Knowledge = append(req.Knowledge, k.Content)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal reply request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build reply request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("reply service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reply service status %d", resp.StatusCode)
	}

	var out replyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode reply: %w", err)
	}
	if out.Message == "" {
		return "", fmt.Errorf("reply service returned empty message")
	}

	return out.Message, nil
}

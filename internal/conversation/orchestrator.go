package conversation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/solacehq/solace/internal/journey"
	"github.com/solacehq/solace/internal/observability"
	"github.com/solacehq/solace/internal/ranking"
	"github.com/solacehq/solace/internal/registry"
	"github.com/solacehq/solace/internal/trust"
)

// ErrEmptyMessage is returned for a turn with no message text.
var ErrEmptyMessage = errors.New("message text is empty")

// Config bounds the response bundle and the per-turn scoring work.
type Config struct {
	MaxResources int
	MaxKnowledge int
	TurnDeadline time.Duration
}

// DefaultConfig returns orchestrator defaults.
func DefaultConfig() Config {
	return Config{
		MaxResources: 5,
		MaxKnowledge: 3,
		TurnDeadline: 8 * time.Second,
	}
}

// TurnRequest is one user turn.
type TurnRequest struct {
	Text           string
	UserID         string
	SessionID      string
	Location       registry.UKLocation
	Category       string
	PreviousStages []registry.JourneyStage
	Memories       []journey.MemoryRecord
}

// ScoredResource pairs a resource with its trust score.
type ScoredResource struct {
	registry.Resource
	TrustScore float64
}

// ScoredKnowledge pairs a knowledge entry with its trust score and source
// verification counts.
type ScoredKnowledge struct {
	registry.KnowledgeEntry
	TrustScore      float64
	SourcesVerified int
	SourcesTotal    int
}

// SourceVerification aggregates URL verification across the bundle.
type SourceVerification struct {
	Verified   int `json:"verified"`
	Unverified int `json:"unverified"`
	Total      int `json:"total"`
}

// JourneyResponse is the complete per-turn bundle.
type JourneyResponse struct {
	ResponseID          string                 `json:"responseId"`
	Message             string                 `json:"message"`
	JourneyStage        registry.JourneyStage  `json:"journeyStage"`
	EmotionalState      journey.EmotionalState `json:"emotionalState"`
	Urgency             registry.UrgencyLevel  `json:"urgency"`
	NextStagePathway    string                 `json:"nextStagePathway,omitempty"`
	Resources           []ScoredResource       `json:"resources"`
	Knowledge           []ScoredKnowledge      `json:"knowledge"`
	FollowUpRequired    bool                   `json:"followUpRequired"`
	CulturallyAffirming bool                   `json:"culturallyAffirming"`
	SpecificInformation bool                   `json:"specificInformation"`
	TrustScore          float64                `json:"trustScore"`
	TrustLevel          string                 `json:"trustLevel"`
	TrustDescription    string                 `json:"trustDescription"`
	SourceVerification  SourceVerification     `json:"sourceVerification"`
	RequestFeedback     bool                   `json:"requestFeedback"`
	Degraded            bool                   `json:"degraded,omitempty"`
}

// Orchestrator runs the conversation pipeline over the registry, trust
// engine, and classifier.
type Orchestrator struct {
	logger     *observability.Logger
	registry   *registry.Registry
	trust      *trust.Engine
	classifier *journey.Classifier
	replyGen   ReplyGenerator
	cfg        Config
}

// NewOrchestrator wires the pipeline. replyGen may be nil, in which case
// every turn uses the static fallback message.
func NewOrchestrator(logger *observability.Logger, reg *registry.Registry, eng *trust.Engine, replyGen ReplyGenerator, cfg Config) *Orchestrator {
	if cfg.MaxResources <= 0 {
		cfg.MaxResources = DefaultConfig().MaxResources
	}
	if cfg.MaxKnowledge <= 0 {
		cfg.MaxKnowledge = DefaultConfig().MaxKnowledge
	}
	if cfg.TurnDeadline <= 0 {
		cfg.TurnDeadline = DefaultConfig().TurnDeadline
	}
	return &Orchestrator{
		logger:     logger,
		registry:   reg,
		trust:      eng,
		classifier: journey.NewClassifier(),
		replyGen:   replyGen,
		cfg:        cfg,
	}
}

// Respond processes one turn and assembles the response bundle.
//
// When the reply generator fails, the bundle is still returned in full with
// the static fallback message and Degraded set, alongside ErrReplyDegraded
// so callers can surface the condition.
func (o *Orchestrator) Respond(ctx context.Context, req TurnRequest) (*JourneyResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyMessage
	}

	cls := o.classifier.Classify(req.Text)
	jctx := journey.BuildContext(cls, req.Location, req.PreviousStages, req.Memories)

	log := o.logger.WithSession(req.SessionID)
	log.Debug().
		Str("user_id", req.UserID).
		Str("stage", string(cls.Stage)).
		Str("urgency", string(cls.Urgency)).
		Bool("stage_matched", cls.StageMatched).
		Msg("turn classified")

	resources, knowledge, specific := o.gather(cls, req)

	ranking.RankResources(resources)
	ranking.RankKnowledge(knowledge)
	if len(resources) > o.cfg.MaxResources {
		resources = resources[:o.cfg.MaxResources]
	}
	if len(knowledge) > o.cfg.MaxKnowledge {
		knowledge = knowledge[:o.cfg.MaxKnowledge]
	}

	scoredResources, scoredKnowledge, verification := o.score(ctx, resources, knowledge)

	resp := &JourneyResponse{
		ResponseID:          uuid.NewString(),
		JourneyStage:        cls.Stage,
		EmotionalState:      cls.EmotionalState,
		Urgency:             cls.Urgency,
		Resources:           scoredResources,
		Knowledge:           scoredKnowledge,
		SpecificInformation: specific,
		SourceVerification:  verification,
	}

	resp.TrustScore = bundleScore(scoredResources, scoredKnowledge)
	interp := trust.Interpret(resp.TrustScore)
	resp.TrustLevel = interp.Level
	resp.TrustDescription = interp.Description

	if journey.SuggestNextStage(cls.Stage, jctx.PreviousStages) {
		resp.NextStagePathway = journey.NextStagePathway(cls.Stage)
	}

	resp.FollowUpRequired = cls.Stage == registry.StageCrisis ||
		cls.Urgency == registry.UrgencyEmergency ||
		!specific
	resp.RequestFeedback = cls.Stage != registry.StageCrisis

	for _, r := range scoredResources {
		if r.Cultural.CulturallySpecific() {
			resp.CulturallyAffirming = true
			break
		}
	}

	plainResources := make([]registry.Resource, len(scoredResources))
	for i, s := range scoredResources {
		plainResources[i] = s.Resource
	}
	plainKnowledge := make([]registry.KnowledgeEntry, len(scoredKnowledge))
	for i, s := range scoredKnowledge {
		plainKnowledge[i] = s.KnowledgeEntry
	}

	message, genErr := o.generateMessage(ctx, ReplyInput{
		Text:           req.Text,
		Stage:          cls.Stage,
		EmotionalState: cls.EmotionalState,
		Formality:      jctx.Formality,
		Resources:      plainResources,
		Knowledge:      plainKnowledge,
	})
	resp.Message = message
	if genErr != nil {
		resp.Degraded = true
		log.Warn().Err(genErr).Msg("reply generation failed, serving fallback message")
		return resp, errors.Join(ErrReplyDegraded, genErr)
	}

	return resp, nil
}

// gather queries the registry with widening scope: requested location, then
// nationwide, then a generic nationwide set with the filters dropped.
// specific reports whether the final sets came from the first two passes for
// a message that actually matched stage indicators; an unmatched message
// rides the growth default and is never specific.
func (o *Orchestrator) gather(cls journey.Classification, req TurnRequest) ([]registry.Resource, []registry.KnowledgeEntry, bool) {
	opts := registry.QueryOptions{Urgency: cls.Urgency, Category: req.Category}

	resources := o.registry.QueryResources(cls.Stage, req.Location, opts)
	if len(resources) == 0 && req.Location != registry.LocationNationwide {
		resources = o.registry.QueryResources(cls.Stage, registry.LocationNationwide, opts)
	}

	knowledge := o.registry.QueryKnowledge(req.Text, cls.Stage, req.Location)
	if len(knowledge) == 0 && req.Location != registry.LocationNationwide {
		knowledge = o.registry.QueryKnowledge(req.Text, cls.Stage, registry.LocationNationwide)
	}

	specific := cls.StageMatched && (len(resources) > 0 || len(knowledge) > 0)
	if len(resources) == 0 {
		resources = o.registry.QueryResources(cls.Stage, registry.LocationNationwide, registry.QueryOptions{})
	}
	if len(knowledge) == 0 {
		knowledge = o.registry.QueryKnowledge("", cls.Stage, registry.LocationNationwide)
	}

	return resources, knowledge, specific
}

// score computes trust scores for the gathered sets. Knowledge scoring
// probes source URLs and is bounded by the turn deadline; on deadline the
// entries scored so far keep their probed scores and the rest fall back to
// unverified-source scoring.
func (o *Orchestrator) score(ctx context.Context, resources []registry.Resource, knowledge []registry.KnowledgeEntry) ([]ScoredResource, []ScoredKnowledge, SourceVerification) {
	scoredResources := make([]ScoredResource, 0, len(resources))
	for _, r := range resources {
		scoredResources = append(scoredResources, ScoredResource{
			Resource:   r,
			TrustScore: o.trust.CalculateResourceTrustScore(r),
		})
	}

	probeCtx, cancel := context.WithTimeout(ctx, o.cfg.TurnDeadline)
	defer cancel()

	var verification SourceVerification
	scoredKnowledge := make([]ScoredKnowledge, 0, len(knowledge))
	for _, k := range knowledge {
		ks := o.trust.ScoreKnowledge(probeCtx, k)
		scoredKnowledge = append(scoredKnowledge, ScoredKnowledge{
			KnowledgeEntry:  k,
			TrustScore:      ks.Score,
			SourcesVerified: ks.SourcesVerified,
			SourcesTotal:    ks.SourcesTotal,
		})
		verification.Verified += ks.SourcesVerified
		verification.Unverified += ks.SourcesTotal - ks.SourcesVerified
		verification.Total += ks.SourcesTotal
	}

	return scoredResources, scoredKnowledge, verification
}

func (o *Orchestrator) generateMessage(ctx context.Context, in ReplyInput) (string, error) {
	if o.replyGen == nil {
		return FallbackMessage, errors.New("no reply generator configured")
	}
	message, err := o.replyGen.Generate(ctx, in)
	if err != nil {
		return FallbackMessage, err
	}
	return message, nil
}

// bundleScore averages the trust scores across the bundle.
func bundleScore(resources []ScoredResource, knowledge []ScoredKnowledge) float64 {
	var sum float64
	var n int
	for _, r := range resources {
		sum += r.TrustScore
		n++
	}
	for _, k := range knowledge {
		sum += k.TrustScore
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

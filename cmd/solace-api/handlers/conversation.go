// Package handlers provides HTTP handlers for the Solace API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solacehq/solace/internal/conversation"
	"github.com/solacehq/solace/internal/journey"
	"github.com/solacehq/solace/internal/observability"
	"github.com/solacehq/solace/internal/registry"
)

// ConversationHandler handles conversation turn requests.
type ConversationHandler struct {
	logger       *observability.Logger
	orchestrator *conversation.Orchestrator
}

// NewConversationHandler creates a new conversation handler.
func NewConversationHandler(logger *observability.Logger, orch *conversation.Orchestrator) *ConversationHandler {
	return &ConversationHandler{
		logger:       logger,
		orchestrator: orch,
	}
}

// TurnRequestDTO represents the API request for a conversation turn.
type TurnRequestDTO struct {
	Message        string      `json:"message"`
	UserID         string      `json:"userId,omitempty"`
	SessionID      string      `json:"sessionId,omitempty"`
	Location       string      `json:"location,omitempty"`
	Category       string      `json:"category,omitempty"`
	PreviousStages []string    `json:"previousStages,omitempty"`
	Memories       []MemoryDTO `json:"memories,omitempty"`
}

// MemoryDTO represents a remembered fact about the user.
type MemoryDTO struct {
	Kind string `json:"kind"`
	Note string `json:"note"`
}

// TurnResponseDTO represents the API response for a conversation turn.
type TurnResponseDTO struct {
	ResponseID          string                `json:"responseId"`
	Message             string                `json:"message"`
	JourneyStage        string                `json:"journeyStage"`
	EmotionalState      string                `json:"emotionalState"`
	Urgency             string                `json:"urgency"`
	NextStagePathway    string                `json:"nextStagePathway,omitempty"`
	Resources           []ResourceDTO         `json:"resources"`
	Knowledge           []KnowledgeDTO        `json:"knowledge"`
	FollowUpRequired    bool                  `json:"followUpRequired"`
	CulturallyAffirming bool                  `json:"culturallyAffirming"`
	SpecificInformation bool                  `json:"specificInformation"`
	TrustScore          float64               `json:"trustScore"`
	TrustLevel          string                `json:"trustLevel"`
	TrustDescription    string                `json:"trustDescription"`
	SourceVerification  SourceVerificationDTO `json:"sourceVerification"`
	RequestFeedback     bool                  `json:"requestFeedback"`
	Degraded            bool                  `json:"degraded,omitempty"`
}

// ResourceDTO represents a scored support resource.
type ResourceDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Cost         string   `json:"cost"`
	Emergency    bool     `json:"emergency"`
	Availability string   `json:"availability,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Website      string   `json:"website,omitempty"`
	Email        string   `json:"email,omitempty"`
	Locations    []string `json:"locations"`
	TrustScore   float64  `json:"trustScore"`
}

// KnowledgeDTO represents a scored knowledge entry.
type KnowledgeDTO struct {
	ID              string  `json:"id"`
	Content         string  `json:"content"`
	Category        string  `json:"category"`
	Verification    string  `json:"verification"`
	LastUpdated     string  `json:"lastUpdated"`
	TrustScore      float64 `json:"trustScore"`
	SourcesVerified int     `json:"sourcesVerified"`
	SourcesTotal    int     `json:"sourcesTotal"`
}

// SourceVerificationDTO aggregates URL verification across the bundle.
type SourceVerificationDTO struct {
	Verified   int `json:"verified"`
	Unverified int `json:"unverified"`
	Total      int `json:"total"`
}

// Respond handles POST /api/v1/conversation.
func (h *ConversationHandler) Respond(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reqDTO TurnRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	req := conversation.TurnRequest{
		Text:      reqDTO.Message,
		UserID:    reqDTO.UserID,
		SessionID: reqDTO.SessionID,
		Location:  registry.UKLocation(reqDTO.Location),
		Category:  reqDTO.Category,
	}
	for _, s := range reqDTO.PreviousStages {
		req.PreviousStages = append(req.PreviousStages, registry.JourneyStage(s))
	}
	for _, m := range reqDTO.Memories {
		req.Memories = append(req.Memories, journey.MemoryRecord{Kind: m.Kind, Note: m.Note})
	}

	resp, err := h.orchestrator.Respond(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, conversation.ErrEmptyMessage):
			writeError(w, http.StatusBadRequest, "message is required", "")
			return
		case errors.Is(err, conversation.ErrReplyDegraded):
			// Bundle is still complete, serve it with the fallback message.
			h.logger.WithContext(ctx).Warn().Err(err).Msg("Serving degraded response")
		default:
			h.logger.WithContext(ctx).Error().Err(err).Msg("Conversation turn failed")
			writeError(w, http.StatusInternalServerError, "conversation turn failed", err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, toTurnResponseDTO(resp))
}

func toTurnResponseDTO(resp *conversation.JourneyResponse) TurnResponseDTO {
	dto := TurnResponseDTO{
		ResponseID:          resp.ResponseID,
		Message:             resp.Message,
		JourneyStage:        string(resp.JourneyStage),
		EmotionalState:      string(resp.EmotionalState),
		Urgency:             string(resp.Urgency),
		NextStagePathway:    resp.NextStagePathway,
		Resources:           make([]ResourceDTO, 0, len(resp.Resources)),
		Knowledge:           make([]KnowledgeDTO, 0, len(resp.Knowledge)),
		FollowUpRequired:    resp.FollowUpRequired,
		CulturallyAffirming: resp.CulturallyAffirming,
		SpecificInformation: resp.SpecificInformation,
		TrustScore:          resp.TrustScore,
		TrustLevel:          resp.TrustLevel,
		TrustDescription:    resp.TrustDescription,
		SourceVerification: SourceVerificationDTO{
			Verified:   resp.SourceVerification.Verified,
			Unverified: resp.SourceVerification.Unverified,
			Total:      resp.SourceVerification.Total,
		},
		RequestFeedback: resp.RequestFeedback,
		Degraded:        resp.Degraded,
	}

	for _, res := range resp.Resources {
		dto.Resources = append(dto.Resources, toResourceDTO(res.Resource, res.TrustScore))
	}

	for _, k := range resp.Knowledge {
		dto.Knowledge = append(dto.Knowledge, KnowledgeDTO{
			ID:              k.ID,
			Content:         k.Content,
			Category:        k.Category,
			Verification:    string(k.Verification),
			LastUpdated:     k.LastUpdated.Format("2006-01-02"),
			TrustScore:      k.TrustScore,
			SourcesVerified: k.SourcesVerified,
			SourcesTotal:    k.SourcesTotal,
		})
	}

	return dto
}

func toResourceDTO(res registry.Resource, score float64) ResourceDTO {
	locs := make([]string, 0, len(res.Locations))
	for _, l := range res.Locations {
		locs = append(locs, string(l))
	}
	return ResourceDTO{
		ID:           res.ID,
		Title:        res.Title,
		Description:  res.Description,
		Category:     res.Category,
		Cost:         string(res.Cost),
		Emergency:    res.Emergency,
		Availability: res.Availability,
		Phone:        res.Phone,
		Website:      res.Website,
		Email:        res.Email,
		Locations:    locs,
		TrustScore:   score,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := map[string]string{
		"error": message,
	}
	if detail != "" {
		resp["detail"] = detail
	}
	json.NewEncoder(w).Encode(resp)
}

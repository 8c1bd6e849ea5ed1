package conversation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacehq/solace/internal/observability"
	"github.com/solacehq/solace/internal/registry"
)

func TestHTTPReplyGenerator_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req replyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "crisis", req.Stage)
		assert.Equal(t, []string{"Samaritans"}, req.ResourceTitles)

		json.NewEncoder(w).Encode(replyResponse{Message: "generated reply"})
	}))
	defer srv.Close()

	gen := NewHTTPReplyGenerator(observability.Nop(), srv.URL, time.Second)

	msg, err := gen.Generate(context.Background(), ReplyInput{
		Text:      "help",
		Stage:     registry.StageCrisis,
		Resources: []registry.Resource{{Title: "Samaritans"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "generated reply", msg)
}

func TestHTTPReplyGenerator_ErrorStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gen := NewHTTPReplyGenerator(observability.Nop(), srv.URL, time.Second)
	_, err := gen.Generate(context.Background(), ReplyInput{Text: "help"})
	assert.Error(t, err)
}

func TestHTTPReplyGenerator_EmptyMessageIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(replyResponse{Message: ""})
	}))
	defer srv.Close()

	gen := NewHTTPReplyGenerator(observability.Nop(), srv.URL, time.Second)
	_, err := gen.Generate(context.Background(), ReplyInput{Text: "help"})
	assert.Error(t, err)
}

func TestHTTPReplyGenerator_NoEndpoint(t *testing.T) {
	gen := NewHTTPReplyGenerator(observability.Nop(), "", time.Second)
	_, err := gen.Generate(context.Background(), ReplyInput{Text: "help"})
	assert.Error(t, err)
}

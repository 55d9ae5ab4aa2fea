package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/gustavopk/imobcopy/internal/compose"
	"github.com/gustavopk/imobcopy/internal/logger"
)

// TextGenerator is the slice of the AI adapter the handlers depend on. Tests
// substitute a mock.
type TextGenerator interface {
	FormatFeatures(ctx context.Context, rawFeatureText string) (string, error)
	GenerateStoryCaption(ctx context.Context, rawText string) (string, error)
}

// Server wires the HTTP surface: two composition endpoints plus liveness.
// Each pipeline admits one in-flight model call at a time, mirroring the
// busy-flag the form UI keeps while a submission is pending.
type Server struct {
	gen       TextGenerator
	assembler *compose.Assembler

	descGate  *semaphore.Weighted
	storyGate *semaphore.Weighted
}

// NewServer builds a Server around the given text generator and assembler.
func NewServer(gen TextGenerator, assembler *compose.Assembler) *Server {
	return &Server{
		gen:       gen,
		assembler: assembler,
		descGate:  semaphore.NewWeighted(1),
		storyGate: semaphore.NewWeighted(1),
	}
}

// Routes returns the request mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/descriptions", s.withRequestID("desc", s.handleDescription))
	mux.HandleFunc("POST /api/v1/stories", s.withRequestID("story", s.handleStory))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// withRequestID tags the request context with a per-request ID so every log
// line of a submission can be correlated.
func (s *Server) withRequestID(prefix string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
		ctx := logger.WithRequestID(r.Context(), requestID)
		next(w, r.WithContext(ctx))
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "Failed to encode response", "error", err)
	}
}

// errorResponse is the uniform error envelope. Fields is populated only for
// validation failures, keyed by form field name.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	writeJSON(ctx, w, status, errorResponse{Error: msg})
}

func writeValidationError(ctx context.Context, w http.ResponseWriter, errs compose.ValidationErrors) {
	fields := make(map[string]string, len(errs))
	for _, ve := range errs {
		fields[ve.Field] = ve.Reason
	}
	writeJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{
		Error:  "dados do imóvel inválidos",
		Fields: fields,
	})
}

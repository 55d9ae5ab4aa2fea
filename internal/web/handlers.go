package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gustavopk/imobcopy/internal/ai"
	"github.com/gustavopk/imobcopy/internal/compose"
	"github.com/gustavopk/imobcopy/internal/logger"
)

// descriptionRequest mirrors the listing form. Area fields are pointers so a
// blank form input stays distinguishable from zero.
type descriptionRequest struct {
	Code         string   `json:"codigo"`
	Price        string   `json:"preco"`
	Neighborhood string   `json:"bairro"`
	City         string   `json:"cidade"`
	TotalArea    *float64 `json:"areaTotal"`
	PrivateArea  *float64 `json:"areaPrivada"`
	Extra        string   `json:"observacoes"`
	Features     string   `json:"caracteristicas"`
}

type descriptionResponse struct {
	Description       string `json:"descricao"`
	FormattedFeatures string `json:"caracteristicasFormatadas"`
}

func (s *Server) handleDescription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req descriptionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	listing, err := compose.NewPropertyListing(
		req.Code, req.Price, req.Neighborhood, req.City,
		req.TotalArea, req.PrivateArea, req.Extra, req.Features,
	)
	if err != nil {
		var verrs compose.ValidationErrors
		if errors.As(err, &verrs) {
			writeValidationError(ctx, w, verrs)
			return
		}
		writeError(ctx, w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if !s.descGate.TryAcquire(1) {
		writeError(ctx, w, http.StatusConflict, "já existe uma geração de descrição em andamento")
		return
	}
	defer s.descGate.Release(1)

	if _, ok := compose.ParsePrice(listing.Price); !ok {
		// Graceful degrade: the raw string will appear verbatim on the
		// VALOR line. Worth a trace so garbage prices don't go unnoticed.
		logger.Warn(ctx, "Price did not parse, passing through verbatim", "price", listing.Price)
	}

	logger.Info(ctx, "Formatting features", "code", listing.Code)
	block, err := s.gen.FormatFeatures(ctx, listing.Features)
	if err != nil {
		writeUpstreamError(ctx, w, err)
		return
	}

	description, err := s.assembler.Assemble(listing, block)
	if err != nil {
		// Empty block slipped past the adapter; treat it the same as an
		// empty upstream response so no partial description is shown.
		writeUpstreamError(ctx, w, ai.ErrEmptyResponse)
		return
	}

	writeJSON(ctx, w, http.StatusOK, descriptionResponse{
		Description:       description,
		FormattedFeatures: block,
	})
}

type storyRequest struct {
	RawText string `json:"texto"`
}

type storyResponse struct {
	Caption      string `json:"legenda"`
	CaptionLines string `json:"legendaDividida"`
}

func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req storyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if strings.TrimSpace(req.RawText) == "" {
		writeValidationError(ctx, w, compose.ValidationErrors{
			{Field: "texto", Reason: "obrigatório"},
		})
		return
	}

	if !s.storyGate.TryAcquire(1) {
		writeError(ctx, w, http.StatusConflict, "já existe uma geração de legenda em andamento")
		return
	}
	defer s.storyGate.Release(1)

	logger.Info(ctx, "Generating story caption", "chars", len(req.RawText))
	caption, err := s.gen.GenerateStoryCaption(ctx, req.RawText)
	if err != nil {
		writeUpstreamError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, storyResponse{
		Caption:      caption,
		CaptionLines: compose.SplitCaption(caption),
	})
}

// writeUpstreamError maps adapter failures onto distinct statuses: a timed
// out attempt is 504, an empty or malformed model payload is 502.
func writeUpstreamError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ai.ErrTimeout):
		logger.Error(ctx, "Model call timed out", "error", err)
		writeError(ctx, w, http.StatusGatewayTimeout, "o serviço de texto demorou demais para responder")
	case errors.Is(err, ai.ErrEmptyResponse):
		logger.Error(ctx, "Model returned no usable text", "error", err)
		writeError(ctx, w, http.StatusBadGateway, "o serviço de texto não retornou conteúdo")
	default:
		logger.Error(ctx, "Model call failed", "error", err)
		writeError(ctx, w, http.StatusBadGateway, "falha ao consultar o serviço de texto: "+err.Error())
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

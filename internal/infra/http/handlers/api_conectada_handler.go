package handlers

import (
	"net/http"

	"github.com/xavierca1/super-crm/internal/entity"
	"github.com/xavierca1/super-crm/internal/usecase"
)

type APIConectadaHandler struct {
	Repo entity.APIConectadaRepositoryInterface
}

func NewAPIConectadaHandler(repo entity.APIConectadaRepositoryInterface) *APIConectadaHandler {
	return &APIConectadaHandler{Repo: repo}
}

// HandleList (GET /apis) — só os metadados das integrações cadastradas.
// A chave_token nunca sai no JSON (ver tag na entidade).
func (h *APIConectadaHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	apis, err := h.Repo.FindAll(r.Context())
	if err != nil {
		respondUseCaseError(w, &usecase.TechnicalError{
			Code:    "APIS_QUERY_FAILED",
			Message: "não foi possível carregar as integrações: " + err.Error(),
		})
		return
	}

	if apis == nil {
		apis = []*entity.APIConectada{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"apis": apis})
}

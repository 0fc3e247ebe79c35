package handlers

import (
	"net/http"

	"github.com/xavierca1/super-crm/internal/usecase"
)

type DashboardHandler struct {
	Dashboard *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboard *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

// HandleStats (GET /dashboard/stats)
// Resposta é tudo-ou-nada: se qualquer contagem falhar, nenhum número sai.
func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Dashboard.Execute(r.Context())
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

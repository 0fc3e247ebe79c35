package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/super-crm/internal/entity"
	"github.com/xavierca1/super-crm/internal/infra/http/middleware"
	"github.com/xavierca1/super-crm/internal/usecase"
)

type ClienteHandler struct {
	Clientes      *usecase.ClientesUseCase
	InteracaoRepo entity.InteracaoRepositoryInterface
	Sugestoes     usecase.SugestaoService
}

func NewClienteHandler(
	clientes *usecase.ClientesUseCase,
	interacaoRepo entity.InteracaoRepositoryInterface,
	sugestoes usecase.SugestaoService,
) *ClienteHandler {
	return &ClienteHandler{
		Clientes:      clientes,
		InteracaoRepo: interacaoRepo,
		Sugestoes:     sugestoes,
	}
}

type ListClientesResponse struct {
	Clientes []*entity.Cliente `json:"clientes"`
	Total    int               `json:"total"`
}

// HandleList (GET /clientes?busca=&status=)
// Carrega a lista inteira (mais recentes primeiro) e aplica o filtro em
// memória por cima — a busca nunca gera query nova.
func (h *ClienteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Clientes.List(r.Context())
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	busca := r.URL.Query().Get("busca")
	status := r.URL.Query().Get("status")
	filtrados := usecase.FiltrarClientes(clientes, busca, status)

	respondJSON(w, http.StatusOK, ListClientesResponse{
		Clientes: filtrados,
		Total:    len(filtrados),
	})
}

// HandleCreate (POST /clientes)
func (h *ClienteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateClienteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	cliente, err := h.Clientes.Create(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCadastrado()
	respondJSON(w, http.StatusCreated, cliente)
}

// HandleSugestao (GET /clientes/{id}/sugestao)
// Cada chamada sorteia de novo — a sugestão não é cacheada de propósito.
func (h *ClienteHandler) HandleSugestao(w http.ResponseWriter, r *http.Request) {
	cliente, err := h.Clientes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordSugestaoGerada()
	respondJSON(w, http.StatusOK, map[string]string{
		"sugestao": h.Sugestoes.Sugerir(cliente),
	})
}

type interacaoResponse struct {
	*entity.Interacao
	AguardandoResposta bool `json:"aguardando_resposta"`
}

// HandleInteracoes (GET /clientes/{id}/interacoes)
func (h *ClienteHandler) HandleInteracoes(w http.ResponseWriter, r *http.Request) {
	cliente, err := h.Clientes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	interacoes, err := h.InteracaoRepo.FindByClienteID(r.Context(), cliente.ID)
	if err != nil {
		respondUseCaseError(w, &usecase.TechnicalError{
			Code:    "INTERACOES_QUERY_FAILED",
			Message: "não foi possível carregar o histórico: " + err.Error(),
		})
		return
	}

	resp := make([]interacaoResponse, 0, len(interacoes))
	for _, i := range interacoes {
		resp = append(resp, interacaoResponse{
			Interacao:          i,
			AguardandoResposta: i.AguardandoResposta(),
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{"interacoes": resp})
}

package handlers

import (
	"net/http"
)

type TarefaHandler struct{}

func NewTarefaHandler() *TarefaHandler {
	return &TarefaHandler{}
}

// HandleAgendar (POST /tarefas)
// O agendamento pela tela de leads ainda não existe — o front mostra o
// aviso e nada muda no banco.
func (h *TarefaHandler) HandleAgendar(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotImplemented, "Agendamento de tarefas será implementado")
}

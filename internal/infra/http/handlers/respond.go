package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/super-crm/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondUseCaseError loga a falha e escolhe o status: erro de domínio é
// culpa da request (4xx), o resto é infraestrutura (500). A mensagem vira
// o toast do front — uma notificação só, nunca crash.
func respondUseCaseError(w http.ResponseWriter, err error) {
	log.Printf("usecase error: %v", err)

	if usecase.IsDomainError(err) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}

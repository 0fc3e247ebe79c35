package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/super-crm/internal/entity"
	"github.com/xavierca1/super-crm/internal/infra/http/middleware"
)

type AuthHandler struct {
	usuarioRepo entity.UsuarioRepositoryInterface
	sessions    *middleware.SessionManager
	rateLimiter *RateLimiter
}

func NewAuthHandler(usuarioRepo entity.UsuarioRepositoryInterface, sessions *middleware.SessionManager) *AuthHandler {
	return &AuthHandler{
		usuarioRepo: usuarioRepo,
		sessions:    sessions,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 tentativas/min por IP
	}
}

type LoginRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.rateLimiter.Allow(getClientIP(r)) {
		respondError(w, http.StatusTooManyRequests, "muitas tentativas, aguarde um minuto")
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	usuario, err := h.usuarioRepo.FindByLogin(ctx, req.Login)
	// Mesma resposta pra login inexistente e senha errada — não vaza quem existe
	if err != nil || bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(req.Senha)) != nil {
		middleware.RecordLoginFalha()
		respondError(w, http.StatusUnauthorized, "login ou senha inválidos")
		return
	}

	token, err := h.sessions.IssueToken(usuario.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "não foi possível iniciar a sessão")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, http.StatusOK, usuario)
}

// HandleMe devolve o dono da sessão corrente (o guard já resolveu).
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	usuario := middleware.UsuarioFromContext(r.Context())
	if usuario == nil {
		respondError(w, http.StatusUnauthorized, "sessão inválida ou expirada")
		return
	}
	respondJSON(w, http.StatusOK, usuario)
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

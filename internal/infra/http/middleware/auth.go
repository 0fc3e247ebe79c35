package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/xavierca1/super-crm/internal/entity"
)

const SessionCookieName = "crm_session"

type contextKey string

const usuarioContextKey contextKey = "usuario"

func UsuarioFromContext(ctx context.Context) *entity.Usuario {
	if u, ok := ctx.Value(usuarioContextKey).(*entity.Usuario); ok {
		return u
	}
	return nil
}

// SessionManager emite e valida o token de sessão (JWT HS256 em cookie
// HttpOnly). O front não toca no token — só carrega o cookie.
type SessionManager struct {
	secret      []byte
	usuarioRepo entity.UsuarioRepositoryInterface
	ttl         time.Duration
}

func NewSessionManager(secret string, usuarioRepo entity.UsuarioRepositoryInterface, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret:      []byte(secret),
		usuarioRepo: usuarioRepo,
		ttl:         ttl,
	}
}

func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

func (m *SessionManager) IssueToken(usuarioID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   usuarioID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// RequireSession protege a rota. Qualquer falha na resolução da sessão —
// cookie ausente, token inválido, expirado, usuário sumiu, banco fora —
// conta como "não autenticado". Fail closed, sem distinção pro cliente.
func (m *SessionManager) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		usuario, err := m.Resolve(r)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"sessão inválida ou expirada"}`))
			return
		}

		ctx := context.WithValue(r.Context(), usuarioContextKey, usuario)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Resolve extrai e valida a sessão da request, carregando o usuário dono.
func (m *SessionManager) Resolve(r *http.Request) (*entity.Usuario, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token de sessão inválido: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, fmt.Errorf("claims de sessão inválidas")
	}

	return m.usuarioRepo.FindByID(r.Context(), claims.Subject)
}

package entity

import (
	"context"
	"time"
)

// Tipos de autenticação aceitos (enum tipo_autenticacao no banco)
const (
	AuthAPIKey      = "api_key"
	AuthBearerToken = "bearer_token"
	AuthBasicAuth   = "basic_auth"
	AuthOAuth       = "oauth"
)

// APIConectada guarda só os metadados da integração.
// Nenhuma chamada é feita com essas credenciais por aqui.
type APIConectada struct {
	ID               string    `json:"id"`
	NomeAPI          string    `json:"nome_api"`
	URLBase          string    `json:"url_base"`
	ChaveToken       string    `json:"-"`
	TipoAutenticacao string    `json:"tipo_autenticacao"`
	Ativo            bool      `json:"ativo"`
	Descricao        string    `json:"descricao,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type APIConectadaRepositoryInterface interface {
	FindAll(ctx context.Context) ([]*APIConectada, error)
}

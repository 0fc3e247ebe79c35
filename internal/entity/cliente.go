package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

var ErrClienteNaoEncontrado = errors.New("cliente não encontrado")

// Status possíveis do pipeline de vendas (enum cliente_status no banco)
const (
	StatusNovo        = "novo"
	StatusEmAndamento = "em_andamento"
	StatusFechado     = "fechado"
	StatusPerdido     = "perdido"
)

// Entidade: Cliente (lead do CRM)
type Cliente struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`

	Status string   `json:"status"` // novo, em_andamento, fechado, perdido
	Tags   []string `json:"tags"`
	Origem string   `json:"origem"` // Ex: Site, Indicação, Facebook...

	DataCadastro time.Time `json:"data_cadastro"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Factory
// Todo lead novo entra com a tag "quente" — comportamento herdado do
// modelo de scoring, não remova sem migrar a regra.
func NewCliente(nome, telefone, email, cpf, origem string) (*Cliente, error) {
	if nome == "" {
		return nil, errors.New("nome is required")
	}

	now := time.Now()
	return &Cliente{
		ID:           uuid.New().String(),
		Nome:         nome,
		Telefone:     telefone,
		Email:        email,
		CPF:          cpf,
		Origem:       origem,
		Status:       StatusNovo,
		Tags:         []string{"quente"},
		DataCadastro: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

type ClienteRepositoryInterface interface {
	Create(ctx context.Context, c *Cliente) error
	FindAll(ctx context.Context) ([]*Cliente, error)
	FindByID(ctx context.Context, id string) (*Cliente, error)

	// Contagens do dashboard
	CountCadastradosDesde(ctx context.Context, desde time.Time) (int, error)
	CountAll(ctx context.Context) (int, error)
	CountFechadosDesde(ctx context.Context, desde time.Time) (int, error)
}

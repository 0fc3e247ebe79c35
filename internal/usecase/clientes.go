package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/xavierca1/super-crm/internal/entity"
)

// Valor do seletor de status que desliga o filtro
const StatusTodos = "all"

type CreateClienteInput struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Origem   string `json:"origem"`
}

type ClientesUseCase struct {
	Repo entity.ClienteRepositoryInterface
}

func NewClientesUseCase(repo entity.ClienteRepositoryInterface) *ClientesUseCase {
	return &ClientesUseCase{Repo: repo}
}

// List devolve todos os leads, mais recentes primeiro (data_cadastro DESC).
func (uc *ClientesUseCase) List(ctx context.Context) ([]*entity.Cliente, error) {
	clientes, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "CLIENTES_QUERY_FAILED",
			Message: "não foi possível carregar os clientes: " + err.Error(),
		}
	}
	return clientes, nil
}

// Create cadastra um lead novo. Nenhuma validação de formato aqui — email e
// CPF seguem como o usuário digitou e o banco decide o que aceitar.
func (uc *ClientesUseCase) Create(ctx context.Context, input CreateClienteInput) (*entity.Cliente, error) {
	cliente, err := entity.NewCliente(input.Nome, input.Telefone, input.Email, input.CPF, input.Origem)
	if err != nil {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		}
	}

	if err := uc.Repo.Create(ctx, cliente); err != nil {
		return nil, &TechnicalError{
			Code:    "CLIENTE_CREATE_FAILED",
			Message: "não foi possível cadastrar o cliente: " + err.Error(),
		}
	}

	return cliente, nil
}

// Get busca um lead pelo id.
func (uc *ClientesUseCase) Get(ctx context.Context, id string) (*entity.Cliente, error) {
	cliente, err := uc.Repo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrClienteNaoEncontrado) {
		return nil, &DomainError{
			Code:    "CLIENTE_NAO_ENCONTRADO",
			Message: "cliente não encontrado",
		}
	}
	if err != nil {
		return nil, &TechnicalError{
			Code:    "CLIENTES_QUERY_FAILED",
			Message: "não foi possível carregar o cliente: " + err.Error(),
		}
	}
	return cliente, nil
}

// FiltrarClientes reaplica a busca em cima da lista já carregada, sem voltar
// ao banco. Busca: substring de nome ou email (sem case) ou do telefone
// (cru). Status: igualdade exata, a menos de "all". Os dois critérios se
// combinam por E.
func FiltrarClientes(clientes []*entity.Cliente, busca, status string) []*entity.Cliente {
	filtrados := make([]*entity.Cliente, 0, len(clientes))

	termo := strings.ToLower(busca)

	for _, c := range clientes {
		if busca != "" {
			matchTexto := strings.Contains(strings.ToLower(c.Nome), termo) ||
				strings.Contains(strings.ToLower(c.Email), termo) ||
				strings.Contains(c.Telefone, busca)
			if !matchTexto {
				continue
			}
		}

		if status != "" && status != StatusTodos && c.Status != status {
			continue
		}

		filtrados = append(filtrados, c)
	}

	return filtrados
}

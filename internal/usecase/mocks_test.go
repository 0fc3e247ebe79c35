package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/super-crm/internal/entity"
)

// MockClienteRepository
type MockClienteRepository struct {
	mock.Mock
}

func (m *MockClienteRepository) Create(ctx context.Context, c *entity.Cliente) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClienteRepository) FindAll(ctx context.Context) ([]*entity.Cliente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Cliente), args.Error(1)
}

func (m *MockClienteRepository) FindByID(ctx context.Context, id string) (*entity.Cliente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Cliente), args.Error(1)
}

func (m *MockClienteRepository) CountCadastradosDesde(ctx context.Context, desde time.Time) (int, error) {
	args := m.Called(ctx, desde)
	return args.Int(0), args.Error(1)
}

func (m *MockClienteRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockClienteRepository) CountFechadosDesde(ctx context.Context, desde time.Time) (int, error) {
	args := m.Called(ctx, desde)
	return args.Int(0), args.Error(1)
}

// MockTarefaRepository
type MockTarefaRepository struct {
	mock.Mock
}

func (m *MockTarefaRepository) CountPorStatus(ctx context.Context, status string) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

// MockInteracaoRepository
type MockInteracaoRepository struct {
	mock.Mock
}

func (m *MockInteracaoRepository) FindByClienteID(ctx context.Context, clienteID string) ([]*entity.Interacao, error) {
	args := m.Called(ctx, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Interacao), args.Error(1)
}

func (m *MockInteracaoRepository) CountSemResposta(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

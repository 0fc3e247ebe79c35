package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/super-crm/internal/entity"
	"github.com/xavierca1/super-crm/internal/infra/http/handlers"
	"github.com/xavierca1/super-crm/internal/usecase"
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

// Sugestão fixa pros testes de handler
type sugestaoFixa struct {
	texto string
}

func (s sugestaoFixa) Sugerir(cliente *entity.Cliente) string {
	return s.texto
}

func novoRouterClientes(clienteRepo *MockClienteRepository, interacaoRepo *MockInteracaoRepository, sugestao string) http.Handler {
	h := handlers.NewClienteHandler(
		usecase.NewClientesUseCase(clienteRepo),
		interacaoRepo,
		sugestaoFixa{texto: sugestao},
	)

	r := chi.NewRouter()
	r.Get("/clientes", h.HandleList)
	r.Post("/clientes", h.HandleCreate)
	r.Get("/clientes/{id}/sugestao", h.HandleSugestao)
	r.Get("/clientes/{id}/interacoes", h.HandleInteracoes)
	return r
}

func TestHandleListComFiltroEmMemoria(t *testing.T) {
	clienteRepo := new(MockClienteRepository)
	interacaoRepo := new(MockInteracaoRepository)

	clienteRepo.On("FindAll", mock.Anything).Return([]*entity.Cliente{
		{ID: "1", Nome: "Ana", Email: "a@x.com", Telefone: "111", Status: entity.StatusNovo},
		{ID: "2", Nome: "Bob", Email: "b@x.com", Telefone: "222", Status: entity.StatusFechado},
	}, nil)

	router := novoRouterClientes(clienteRepo, interacaoRepo, "")

	req := httptest.NewRequest(http.MethodGet, "/clientes?busca=an&status=all", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.ListClientesResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Ana", resp.Clientes[0].Nome)
}

func TestHandleListFalhaDoBancoVira500(t *testing.T) {
	clienteRepo := new(MockClienteRepository)
	interacaoRepo := new(MockInteracaoRepository)

	clienteRepo.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))

	router := novoRouterClientes(clienteRepo, interacaoRepo, "")

	req := httptest.NewRequest(http.MethodGet, "/clientes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleCreateDevolve201ComTagQuente(t *testing.T) {
	clienteRepo := new(MockClienteRepository)
	interacaoRepo := new(MockInteracaoRepository)

	clienteRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	router := novoRouterClientes(clienteRepo, interacaoRepo, "")

	body, _ := json.Marshal(usecase.CreateClienteInput{
		Nome:     "Ana",
		Telefone: "11999999999",
		Email:    "ana@x.com",
		Origem:   "Indicação",
	})

	req := httptest.NewRequest(http.MethodPost, "/clientes", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var criado entity.Cliente
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))
	assert.Equal(t, []string{"quente"}, criado.Tags)
	assert.Equal(t, entity.StatusNovo, criado.Status)
}

func TestHandleCreateSemNomeVira400(t *testing.T) {
	clienteRepo := new(MockClienteRepository)
	interacaoRepo := new(MockInteracaoRepository)

	router := novoRouterClientes(clienteRepo, interacaoRepo, "")

	req := httptest.NewRequest(http.MethodPost, "/clientes", bytes.NewReader([]byte(`{"email":"x@y.com"}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	clienteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleSugestaoDevolveTextoDoServico(t *testing.T) {
	clienteRepo := new(MockClienteRepository)
	interacaoRepo := new(MockInteracaoRepository)

	clienteRepo.On("FindByID", mock.Anything, "abc").Return(&entity.Cliente{ID: "abc", Nome: "Ana"}, nil)

	router := novoRouterClientes(clienteRepo, interacaoRepo, "Marque reunião presencial. Cliente tem perfil para fechamento.")

	req := httptest.NewRequest(http.MethodGet, "/clientes/abc/sugestao", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Marque reunião presencial. Cliente tem perfil para fechamento.", resp["sugestao"])
}

func TestHandleSugestaoClienteInexistenteVira400(t *testing.T) {
	clienteRepo := new(MockClienteRepository)
	interacaoRepo := new(MockInteracaoRepository)

	clienteRepo.On("FindByID", mock.Anything, "nope").Return(nil, entity.ErrClienteNaoEncontrado)

	router := novoRouterClientes(clienteRepo, interacaoRepo, "qualquer")

	req := httptest.NewRequest(http.MethodGet, "/clientes/nope/sugestao", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInteracoesMarcaAguardandoResposta(t *testing.T) {
	clienteRepo := new(MockClienteRepository)
	interacaoRepo := new(MockInteracaoRepository)

	resposta := "Oi, pode ser amanhã!"
	clienteRepo.On("FindByID", mock.Anything, "abc").Return(&entity.Cliente{ID: "abc", Nome: "Ana"}, nil)
	interacaoRepo.On("FindByClienteID", mock.Anything, "abc").Return([]*entity.Interacao{
		{ID: "i1", ClienteID: "abc", Canal: entity.CanalWhatsApp, Mensagem: "Olá!", Resposta: nil},
		{ID: "i2", ClienteID: "abc", Canal: entity.CanalEmail, Mensagem: "Proposta", Resposta: &resposta},
	}, nil)

	router := novoRouterClientes(clienteRepo, interacaoRepo, "")

	req := httptest.NewRequest(http.MethodGet, "/clientes/abc/interacoes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Interacoes []struct {
			ID                 string `json:"id"`
			AguardandoResposta bool   `json:"aguardando_resposta"`
		} `json:"interacoes"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Interacoes, 2)
	assert.True(t, resp.Interacoes[0].AguardandoResposta)
	assert.False(t, resp.Interacoes[1].AguardandoResposta)
}

package usecase

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/super-crm/internal/entity"
)

// DashboardStats são os cinco números do topo do dashboard.
// Ou atualizam todos juntos, ou nenhum — o front nunca vê mistura de ciclos.
type DashboardStats struct {
	LeadsNovosHoje     int `json:"leads_novos_hoje"`
	TotalLeads         int `json:"total_leads"`
	TarefasPendentes   int `json:"tarefas_pendentes"`
	MensagensPendentes int `json:"mensagens_pendentes"`
	TaxaConversao      int `json:"taxa_conversao"` // % inteiro, sempre em [0,100]
}

type DashboardUseCase struct {
	ClienteRepo   entity.ClienteRepositoryInterface
	TarefaRepo    entity.TarefaRepositoryInterface
	InteracaoRepo entity.InteracaoRepositoryInterface

	// Relógio injetável pros testes fixarem o dia
	Now func() time.Time
}

func NewDashboardUseCase(
	clienteRepo entity.ClienteRepositoryInterface,
	tarefaRepo entity.TarefaRepositoryInterface,
	interacaoRepo entity.InteracaoRepositoryInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		ClienteRepo:   clienteRepo,
		TarefaRepo:    tarefaRepo,
		InteracaoRepo: interacaoRepo,
		Now:           time.Now,
	}
}

func (uc *DashboardUseCase) Execute(ctx context.Context) (*DashboardStats, error) {
	now := uc.Now()

	// "Hoje" é a meia-noite local (corte YYYY-MM-DD, igual ao front antigo)
	hoje := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	semanaAtras := now.AddDate(0, 0, -7)

	var (
		leadsHoje     int
		totalLeads    int
		tarefasPend   int
		mensagensPend int
		leadsFechados int
		leadsSemana   int
	)

	// As contagens são independentes — disparam juntas e o commit das
	// cinco métricas só acontece depois que todas terminarem.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		leadsHoje, err = uc.ClienteRepo.CountCadastradosDesde(gctx, hoje)
		return err
	})
	g.Go(func() error {
		var err error
		totalLeads, err = uc.ClienteRepo.CountAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tarefasPend, err = uc.TarefaRepo.CountPorStatus(gctx, entity.TarefaPendente)
		return err
	})
	g.Go(func() error {
		var err error
		mensagensPend, err = uc.InteracaoRepo.CountSemResposta(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		leadsFechados, err = uc.ClienteRepo.CountFechadosDesde(gctx, semanaAtras)
		return err
	})
	g.Go(func() error {
		var err error
		leadsSemana, err = uc.ClienteRepo.CountCadastradosDesde(gctx, semanaAtras)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, &TechnicalError{
			Code:    "DASHBOARD_QUERY_FAILED",
			Message: "não foi possível carregar os dados do dashboard: " + err.Error(),
		}
	}

	// Semana sem cadastro novo => taxa 0, nunca divisão por zero
	taxa := 0
	if leadsSemana > 0 {
		taxa = int(math.Round(float64(leadsFechados) / float64(leadsSemana) * 100))
	}

	return &DashboardStats{
		LeadsNovosHoje:     leadsHoje,
		TotalLeads:         totalLeads,
		TarefasPendentes:   tarefasPend,
		MensagensPendentes: mensagensPend,
		TaxaConversao:      taxa,
	}, nil
}

package usecase

import (
	"github.com/xavierca1/super-crm/internal/entity"
)

// SugestaoService é a fronteira do gerador de sugestões.
// Hoje é um stub randômico; quando virar chamada de inferência de verdade,
// só essa implementação muda — o registry de leads não enxerga a troca.
type SugestaoService interface {
	Sugerir(cliente *entity.Cliente) string
}

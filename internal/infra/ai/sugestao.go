package ai

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/xavierca1/super-crm/internal/entity"
)

// GeradorSugestao simula a IA de recomendação. Em produção isso vira uma
// chamada pra OpenAI/DeepSeek lendo o histórico real do lead; por enquanto
// os números de interações e dias são sorteados, não consultados.
type GeradorSugestao struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGeradorSugestao recebe a fonte randômica pra permitir teste
// determinístico. Com nil, semeia pelo relógio.
func NewGeradorSugestao(rnd *rand.Rand) *GeradorSugestao {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GeradorSugestao{rnd: rnd}
}

func (g *GeradorSugestao) Sugerir(cliente *entity.Cliente) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	interacoes := g.rnd.Intn(5) + 1 // 1..5
	dias := g.rnd.Intn(30) + 1      // 1..30

	sugestoes := []string{
		fmt.Sprintf("Envie uma mensagem de follow-up. Cliente tem %d interações nos últimos %d dias.", interacoes, dias),
		"Agende uma ligação. Cliente demonstrou interesse em produtos similares.",
		fmt.Sprintf("Ofereça desconto especial. Cliente está há %d dias sem contato.", dias),
		"Envie material informativo. Cliente fez várias perguntas sobre o serviço.",
		"Marque reunião presencial. Cliente tem perfil para fechamento.",
	}

	return sugestoes[g.rnd.Intn(len(sugestoes))]
}

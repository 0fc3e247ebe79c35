package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/super-crm/internal/infra/ai"
	"github.com/xavierca1/super-crm/internal/infra/database"
	"github.com/xavierca1/super-crm/internal/infra/http/handlers"
	"github.com/xavierca1/super-crm/internal/infra/http/middleware"
	"github.com/xavierca1/super-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repositórios
	clienteRepo := database.NewClienteRepository(db)
	tarefaRepo := database.NewTarefaRepository(db)
	interacaoRepo := database.NewInteracaoRepository(db)
	usuarioRepo := database.NewUsuarioRepository(db)
	apiRepo := database.NewAPIConectadaRepository(db)

	// 2. Sessão
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET não configurado")
	}
	sessions := middleware.NewSessionManager(sessionSecret, usuarioRepo, 24*time.Hour)

	// 3. UseCases e serviços
	clientesUC := usecase.NewClientesUseCase(clienteRepo)
	dashboardUC := usecase.NewDashboardUseCase(clienteRepo, tarefaRepo, interacaoRepo)
	sugestoes := ai.NewGeradorSugestao(nil)

	// 4. Handlers
	authHandler := handlers.NewAuthHandler(usuarioRepo, sessions)
	clienteHandler := handlers.NewClienteHandler(clientesUC, interacaoRepo, sugestoes)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	tarefaHandler := handlers.NewTarefaHandler()
	apiHandler := handlers.NewAPIConectadaHandler(apiRepo)
	healthHandler := handlers.NewHealthHandler(db)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontOrigin()},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true, // cookie de sessão
	}))
	r.Use(middleware.Metrics)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/auth/login", authHandler.HandleLogin)

	// Tudo abaixo exige sessão válida
	r.Group(func(pr chi.Router) {
		pr.Use(sessions.RequireSession)

		pr.Get("/auth/me", authHandler.HandleMe)
		pr.Post("/auth/logout", authHandler.HandleLogout)

		pr.Get("/dashboard/stats", dashboardHandler.HandleStats)

		pr.Get("/clientes", clienteHandler.HandleList)
		pr.Post("/clientes", clienteHandler.HandleCreate)
		pr.Get("/clientes/{id}/sugestao", clienteHandler.HandleSugestao)
		pr.Get("/clientes/{id}/interacoes", clienteHandler.HandleInteracoes)

		pr.Post("/tarefas", tarefaHandler.HandleAgendar)
		pr.Get("/apis", apiHandler.HandleList)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 Super CRM API rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}

func frontOrigin() string {
	if origin := os.Getenv("FRONT_ORIGIN"); origin != "" {
		return origin
	}
	return "http://localhost:5173"
}

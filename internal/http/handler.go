package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"api-bi/internal/config"
	"api-bi/internal/model"
	"api-bi/internal/service"
	"api-bi/internal/task"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// UsuarioService é o contrato da camada de negócio de usuários
// consumido pelos handlers.
type UsuarioService interface {
	Login(ctx context.Context, username, password string) (model.Usuario, error)
	Listar(ctx context.Context) ([]model.Usuario, error)
	Buscar(ctx context.Context, username string) (model.Usuario, error)
	Criar(ctx context.Context, in service.CriarUsuarioInput) (string, error)
	Atualizar(ctx context.Context, username string, in service.AtualizarUsuarioInput) error
	Toggle(ctx context.Context, username string) (bool, error)
}

// TarefaService é o contrato de disparo de tarefas consumido pelos handlers.
type TarefaService interface {
	AtualizarBI(ctx context.Context) (task.Outcome, error)
	Executar(ctx context.Context, nome string) (task.Outcome, error)
	Listar() []string
}

type Handler struct {
	Usuarios UsuarioService
	Tarefas  TarefaService
	Cfg      *config.Config
	Log      *slog.Logger
}

func NewHandler(usuarios UsuarioService, tarefas TarefaService, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		Usuarios: usuarios,
		Tarefas:  tarefas,
		Cfg:      cfg,
		Log:      log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// CORS liberado para os front-ends internos.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, erroResponse{
			Erro:      "Endpoint não encontrado",
			Timestamp: agora(),
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, erroResponse{
			Erro:      "Método HTTP não permitido",
			Timestamp: agora(),
		})
	})

	// Rotas públicas
	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
	r.Get("/status", h.handleStatus)
	r.Get("/info", h.handleInfo)
	r.Post("/login", h.handleLogin)

	// Rotas protegidas por Bearer Token
	r.Group(func(r chi.Router) {
		r.Use(h.bearerAuth)

		r.Post("/atualizar-bi", h.handleAtualizarBI)
		r.Post("/executar-tarefa/{tarefa}", h.handleExecutarTarefa)
		r.Get("/tarefas", h.handleListarTarefas)

		r.Route("/usuarios", func(r chi.Router) {
			r.Get("/", h.handleListarUsuarios)
			r.Post("/", h.handleCriarUsuario)
			r.Get("/{username}", h.handleBuscarUsuario)
			r.Put("/{username}", h.handleAtualizarUsuario)
			r.Put("/{username}/toggle", h.handleToggleUsuario)
		})
	})

	return r
}

// writeError converte qualquer erro no envelope JSON uniforme,
// logando o contexto da operação e o endereço do cliente antes.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "Erro interno",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.String("remote_addr", r.RemoteAddr),
		slog.Any("err", appErr.Err),
	)

	writeJSON(w, appErr.Status, mensagemResponse{Mensagem: appErr.Message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func agora() string {
	return time.Now().Format(time.RFC3339)
}

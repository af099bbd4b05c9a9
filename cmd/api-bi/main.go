// Package main inicia a API de atualização do Power BI
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"api-bi/internal/config"
	"api-bi/internal/hash"
	httpapi "api-bi/internal/http"
	"api-bi/internal/repository"
	"api-bi/internal/service"
	"api-bi/internal/task"

	"github.com/joho/godotenv"
)

func main() {
	// Contexto para encerramento controlado
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Inicialização do logger (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Carrega o .env, se existir, e monta a configuração imutável
	if err := godotenv.Load(); err != nil {
		logger.Info("arquivo .env não encontrado, usando variáveis do sistema")
	}
	cfg := config.Load()

	// Conexão com o banco
	db, err := repository.NewPostgres(ctx, cfg.DSN())
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Pool.Close()

	// 1. Repositório e hasher
	usuarioRepo := repository.NewUsuarioRepo(db)
	hasher := hash.NewBcrypt()

	// 2. Runner do agendador remoto
	runner := task.NewSchtasksRunner(cfg.ServidorBI)

	// 3. Serviços
	usuarioService := service.NewUsuarioService(usuarioRepo, hasher)
	tarefaService := service.NewTarefaService(runner, cfg.TaskName)

	// 4. Handler HTTP
	handler := httpapi.NewHandler(usuarioService, tarefaService, cfg, logger)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler.Router(),
	}

	// Servidor em goroutine própria
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}

package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"api-bi/internal/service"

	"github.com/go-chi/chi/v5"
)

// handleAtualizarBI dispara a tarefa default de atualização do BI.
// O 202 é mantido por compatibilidade: o schtasks já rodou de forma
// síncrona quando a resposta é montada.
func (h *Handler) handleAtualizarBI(w http.ResponseWriter, r *http.Request) {
	h.Log.Info("requisição de atualização recebida",
		slog.String("remote_addr", r.RemoteAddr),
	)

	out, err := h.Tarefas.AtualizarBI(r.Context())
	if err != nil {
		h.writeError(w, r, "atualizar_bi", err)
		return
	}

	resp := tarefaResponse{
		Timestamp: agora(),
		Mensagem:  out.Mensagem,
		IPCliente: r.RemoteAddr,
	}

	if out.Sucesso {
		resp.Status = "sucesso"
		writeJSON(w, http.StatusAccepted, resp)
		return
	}

	h.Log.Error("erro ao executar schtasks", slog.String("mensagem", out.Mensagem))
	resp.Status = "erro"
	writeJSON(w, http.StatusInternalServerError, resp)
}

// handleExecutarTarefa dispara a tarefa do path. Nome fora da lista
// permitida devolve 400 antes de qualquer processo ser criado.
func (h *Handler) handleExecutarTarefa(w http.ResponseWriter, r *http.Request) {
	nome := chi.URLParam(r, "tarefa")

	out, err := h.Tarefas.Executar(r.Context(), nome)
	if err != nil {
		var appErr *service.AppError
		if errors.As(err, &appErr) && appErr.Status == http.StatusBadRequest {
			h.Log.Warn("tentativa de executar tarefa com nome inválido",
				slog.String("tarefa", nome),
				slog.String("remote_addr", r.RemoteAddr),
			)
			writeJSON(w, http.StatusBadRequest, tarefaResponse{
				Timestamp: agora(),
				Status:    "erro",
				Mensagem:  "Nome de tarefa inválido",
			})
			return
		}
		h.writeError(w, r, "executar_tarefa", err)
		return
	}

	if out.Sucesso {
		h.Log.Info("tarefa iniciada com sucesso", slog.String("tarefa", nome))
		writeJSON(w, http.StatusAccepted, tarefaResponse{
			Timestamp: agora(),
			Status:    "sucesso",
			Mensagem:  fmt.Sprintf("Tarefa %q iniciada com sucesso", nome),
			IPCliente: r.RemoteAddr,
			Tarefa:    nome,
		})
		return
	}

	h.Log.Error("erro ao executar tarefa",
		slog.String("tarefa", nome),
		slog.String("mensagem", out.Mensagem),
	)
	writeJSON(w, http.StatusInternalServerError, tarefaResponse{
		Timestamp: agora(),
		Status:    "erro",
		Mensagem:  out.Mensagem,
		Tarefa:    nome,
	})
}

func (h *Handler) handleListarTarefas(w http.ResponseWriter, r *http.Request) {
	tarefas := h.Tarefas.Listar()

	writeJSON(w, http.StatusOK, listarTarefasResponse{
		Timestamp:  agora(),
		Total:      len(tarefas),
		Tarefas:    tarefas,
		Instrucoes: "Use POST /executar-tarefa/<nome_da_tarefa> para disparar uma tarefa",
	})
}

package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"api-bi/internal/model"
	"api-bi/internal/service"

	"github.com/go-chi/chi/v5"
)

// aplicacoesRaw devolve a lista armazenada como JSON cru; se o conteúdo
// do banco estiver corrompido, cai para null em vez de quebrar o encode.
func aplicacoesRaw(u model.Usuario) json.RawMessage {
	if json.Valid([]byte(u.Aplicacoes)) {
		return json.RawMessage(u.Aplicacoes)
	}
	return json.RawMessage("null")
}

func (h *Handler) handleListarUsuarios(w http.ResponseWriter, r *http.Request) {
	const handlerName = "listar_usuarios"

	usuarios, err := h.Usuarios.Listar(r.Context())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	dtos := make([]usuarioDTO, 0, len(usuarios))
	for _, u := range usuarios {
		dtos = append(dtos, usuarioDTO{
			Username:     u.Username,
			DisplayName:  u.DisplayName,
			Aplicacoes:   aplicacoesRaw(u),
			Ativo:        u.Ativo,
			CriadoEm:     u.CriadoEm,
			AtualizadoEm: u.AtualizadoEm,
		})
	}

	writeJSON(w, http.StatusOK, listarUsuariosResponse{Usuarios: dtos})
}

func (h *Handler) handleBuscarUsuario(w http.ResponseWriter, r *http.Request) {
	const handlerName = "buscar_usuario"

	username := chi.URLParam(r, "username")

	u, err := h.Usuarios.Buscar(r.Context(), username)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, buscarUsuarioResponse{
		Usuario: usuarioDetalheDTO{
			Username:    u.Username,
			DisplayName: u.DisplayName,
			Aplicacoes:  aplicacoesRaw(u),
			Ativo:       u.Ativo,
		},
	})
}

func (h *Handler) handleCriarUsuario(w http.ResponseWriter, r *http.Request) {
	const handlerName = "criar_usuario"

	var req criarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, handlerName, service.ErrBadRequest("Dados inválidos"))
		return
	}

	if err := ValidateCriarUsuarioRequest(req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	username, err := h.Usuarios.Criar(r.Context(), service.CriarUsuarioInput{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Aplicacoes:  string(req.Aplicacoes),
		Ativo:       ativo,
	})
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.Log.Info("usuário criado", slog.String("username", username))
	writeJSON(w, http.StatusCreated, mensagemResponse{
		Mensagem: fmt.Sprintf("Usuário %q criado com sucesso", username),
	})
}

func (h *Handler) handleAtualizarUsuario(w http.ResponseWriter, r *http.Request) {
	const handlerName = "atualizar_usuario"

	username := chi.URLParam(r, "username")

	var req atualizarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, handlerName, service.ErrBadRequest("Dados inválidos"))
		return
	}

	if err := ValidateAtualizarUsuarioRequest(req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	in := service.AtualizarUsuarioInput{
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Ativo:       req.Ativo,
	}
	if len(req.Aplicacoes) > 0 {
		apps := string(req.Aplicacoes)
		in.Aplicacoes = &apps
	}

	if err := h.Usuarios.Atualizar(r.Context(), username, in); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.Log.Info("usuário editado", slog.String("username", username))
	writeJSON(w, http.StatusOK, mensagemResponse{
		Mensagem: fmt.Sprintf("Usuário %q atualizado com sucesso", username),
	})
}

func (h *Handler) handleToggleUsuario(w http.ResponseWriter, r *http.Request) {
	const handlerName = "toggle_usuario"

	username := chi.URLParam(r, "username")

	ativo, err := h.Usuarios.Toggle(r.Context(), username)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	statusTexto := "desativado"
	if ativo {
		statusTexto = "ativado"
	}

	h.Log.Info("status do usuário alterado",
		slog.String("username", username),
		slog.String("status", statusTexto),
	)
	writeJSON(w, http.StatusOK, mensagemResponse{
		Mensagem: fmt.Sprintf("Usuário %q %s com sucesso", username, statusTexto),
	})
}

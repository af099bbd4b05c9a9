package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"api-bi/internal/service"
)

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	const handlerName = "login"

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, handlerName, service.ErrBadRequest("Dados inválidos"))
		return
	}

	if err := ValidateLoginRequest(req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	ctx := r.Context()
	u, err := h.Usuarios.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	if !json.Valid([]byte(u.Aplicacoes)) {
		h.writeError(w, r, handlerName, service.ErrInternal("Erro interno", nil))
		return
	}

	h.Log.Info("login bem-sucedido",
		slog.String("username", u.Username),
		slog.String("remote_addr", r.RemoteAddr),
	)

	writeJSON(w, http.StatusOK, loginResponse{
		Username:     u.Username,
		DisplayName:  u.DisplayName,
		Applications: json.RawMessage(u.Aplicacoes),
	})
}

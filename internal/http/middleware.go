package http

import (
	"log/slog"
	"net/http"
	"strings"
)

// bearerAuth rejeita a requisição antes do handler quando o header
// Authorization está ausente, malformado ou com token diferente do
// segredo configurado. Igualdade exata de string, sem sessão.
func (h *Handler) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		var token string
		if header != "" {
			partes := strings.SplitN(header, " ", 2)
			if len(partes) != 2 || partes[1] == "" {
				writeJSON(w, http.StatusUnauthorized, erroResponse{Erro: "Formato de Authorization inválido"})
				return
			}
			token = partes[1]
		}

		if token == "" {
			writeJSON(w, http.StatusUnauthorized, erroResponse{Erro: "Token não fornecido"})
			return
		}

		if token != h.Cfg.BearerToken {
			h.Log.Warn("tentativa de acesso com token inválido",
				slog.String("remote_addr", r.RemoteAddr),
			)
			writeJSON(w, http.StatusUnauthorized, erroResponse{Erro: "Token inválido"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

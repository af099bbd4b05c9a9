package http

import "net/http"

const (
	nomeAPI   = "API de Atualização do Power BI"
	versaoAPI = "1.1.0"
)

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"nome":     nomeAPI,
		"versao":   versaoAPI,
		"status":   "ativo",
		"mensagem": "Bem-vindo! Use os endpoints abaixo:",
		"endpoints": map[string]string{
			"POST /login":        "Autenticação de usuário",
			"GET /health":        "Verificação de saúde da API",
			"GET /info":          "Informações detalhadas da API",
			"GET /status":        "Status da configuração",
			"POST /atualizar-bi": "Dispara a atualização do BI (requer token Bearer)",
		},
		"documentacao": "Veja o README.md para mais detalhes",
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: agora(),
		Mensagem:  "API de atualização do BI está funcionando",
	})
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Servidor:  h.Cfg.ServidorBI,
		Tarefa:    h.Cfg.TaskName,
		Timestamp: agora(),
	})
}

func (h *Handler) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"nome":   nomeAPI,
		"versao": versaoAPI,
		"endpoints": map[string]string{
			"POST /login":        "Autenticação de usuário",
			"POST /atualizar-bi": "Dispara a atualização do BI (requer token)",
			"GET /health":        "Verificação de saúde da API",
			"GET /status":        "Status da configuração",
			"GET /info":          "Informações da API",
		},
		"autenticacao": "Bearer Token no header Authorization",
	})
}

// Package http implementa os handlers HTTP e DTOs sobre os serviços de domínio.
package http

import (
	"encoding/json"
	"time"
)

type erroResponse struct {
	Erro      string `json:"erro"`
	Timestamp string `json:"timestamp,omitempty"`
}

type mensagemResponse struct {
	Mensagem string `json:"mensagem"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Mensagem  string `json:"mensagem"`
}

type statusResponse struct {
	Servidor  string `json:"servidor"`
	Tarefa    string `json:"tarefa"`
	Timestamp string `json:"timestamp"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Username     string          `json:"username"`
	DisplayName  string          `json:"displayName"`
	Applications json.RawMessage `json:"applications"`
}

// tarefaResponse cobre os disparos de tarefa; ip_cliente e tarefa
// são opcionais e só aparecem em alguns retornos.
type tarefaResponse struct {
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Mensagem  string `json:"mensagem"`
	IPCliente string `json:"ip_cliente,omitempty"`
	Tarefa    string `json:"tarefa,omitempty"`
}

type listarTarefasResponse struct {
	Timestamp  string   `json:"timestamp"`
	Total      int      `json:"total"`
	Tarefas    []string `json:"tarefas"`
	Instrucoes string   `json:"instrucoes"`
}

// usuarioDTO é a projeção de listagem: nunca inclui o hash da senha,
// e aplicacoes sai como a lista JSON armazenada.
type usuarioDTO struct {
	Username     string          `json:"username"`
	DisplayName  string          `json:"display_name"`
	Aplicacoes   json.RawMessage `json:"aplicacoes"`
	Ativo        bool            `json:"ativo"`
	CriadoEm     *time.Time      `json:"criado_em"`
	AtualizadoEm *time.Time      `json:"atualizado_em"`
}

type listarUsuariosResponse struct {
	Usuarios []usuarioDTO `json:"usuarios"`
}

// usuarioDetalheDTO é a projeção de GET /usuarios/{username},
// sem os timestamps.
type usuarioDetalheDTO struct {
	Username    string          `json:"username"`
	DisplayName string          `json:"display_name"`
	Aplicacoes  json.RawMessage `json:"aplicacoes"`
	Ativo       bool            `json:"ativo"`
}

type buscarUsuarioResponse struct {
	Usuario usuarioDetalheDTO `json:"usuario"`
}

type criarUsuarioRequest struct {
	Username    string          `json:"username"`
	Password    string          `json:"password"`
	DisplayName string          `json:"display_name"`
	Aplicacoes  json.RawMessage `json:"aplicacoes"`
	Ativo       *bool           `json:"ativo"`
}

type atualizarUsuarioRequest struct {
	Password    *string         `json:"password"`
	DisplayName *string         `json:"display_name"`
	Aplicacoes  json.RawMessage `json:"aplicacoes"`
	Ativo       *bool           `json:"ativo"`
}

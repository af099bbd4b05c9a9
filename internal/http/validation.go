package http

import (
	"api-bi/internal/service"
)

// ValidateLoginRequest POST /login — corpo da requisição
func ValidateLoginRequest(req loginRequest) error {
	if req.Username == "" || req.Password == "" {
		return service.ErrBadRequest("Dados inválidos")
	}
	return nil
}

// ValidateCriarUsuarioRequest POST /usuarios — corpo da requisição.
// Os quatro campos são obrigatórios; ativo é opcional e default true.
func ValidateCriarUsuarioRequest(req criarUsuarioRequest) error {
	if req.Username == "" || req.Password == "" || req.DisplayName == "" || len(req.Aplicacoes) == 0 {
		return service.ErrBadRequest("Campos obrigatórios: username, password, display_name, aplicacoes")
	}
	return nil
}

// ValidateAtualizarUsuarioRequest PUT /usuarios/{username} — pelo menos
// um campo precisa estar presente.
func ValidateAtualizarUsuarioRequest(req atualizarUsuarioRequest) error {
	if req.Password == nil && req.DisplayName == nil && len(req.Aplicacoes) == 0 && req.Ativo == nil {
		return service.ErrBadRequest("Dados inválidos")
	}
	return nil
}

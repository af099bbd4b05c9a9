package model

import "time"

// Usuario descreve um registro da tabela usuarios.
// Aplicacoes guarda a lista de aplicações como string JSON, exatamente
// como está no banco; o parse acontece só na borda HTTP.
type Usuario struct {
	Username     string     `json:"username"`
	SenhaHash    string     `json:"-"`
	DisplayName  string     `json:"display_name"`
	Aplicacoes   string     `json:"aplicacoes"`
	Ativo        bool       `json:"ativo"`
	CriadoEm     *time.Time `json:"criado_em"`
	AtualizadoEm *time.Time `json:"atualizado_em"`
}

// UsuarioUpdate descreve uma atualização parcial: cada campo nil é ignorado.
// SenhaHash já chega com o hash calculado pela camada de serviço.
type UsuarioUpdate struct {
	SenhaHash   *string
	DisplayName *string
	Aplicacoes  *string
	Ativo       *bool
}

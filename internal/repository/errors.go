package repository

import "errors"

var (
	// ErrUsuarioNaoEncontrado é retornado quando o usuário não existe no banco.
	// Ausência é um resultado esperado, não uma falha de infraestrutura.
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")

	// ErrUsuarioExiste é retornado ao tentar criar um username duplicado.
	ErrUsuarioExiste = errors.New("usuário já existe")
)

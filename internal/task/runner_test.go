package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNomeValido(t *testing.T) {
	tests := []struct {
		name  string
		nome  string
		valid bool
	}{
		{name: "Simples", nome: "AtualizaBI_TI", valid: true},
		{name: "Com espaço e hífen", nome: "Atualiza BI-2", valid: true},
		{name: "Só dígitos", nome: "123", valid: true},
		{name: "Vazio", nome: "", valid: false},
		{name: "Ponto e vírgula", nome: "bad;name", valid: false},
		{name: "Pipe", nome: "a|b", valid: false},
		{name: "E comercial", nome: "a&b", valid: false},
		{name: "Barra", nome: "../x", valid: false},
		{name: "Aspas", nome: `tarefa"x`, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, NomeValido(tt.nome))
		})
	}
}

func TestSchtasksRunner_NomeInvalidoNaoExecuta(t *testing.T) {
	r := NewSchtasksRunner("192.168.0.210")
	// Binário inexistente: se o processo fosse criado, o resultado
	// seria um Outcome de falha, não ErrNomeInvalido.
	r.bin = "/binario/que/nao/existe"

	out, err := r.Run(context.Background(), "bad;name")

	assert.ErrorIs(t, err, ErrNomeInvalido)
	assert.Equal(t, Outcome{}, out)
}

func TestSchtasksRunner_Sucesso(t *testing.T) {
	r := NewSchtasksRunner("192.168.0.210")
	r.bin = "echo"

	out, err := r.Run(context.Background(), "AtualizaBI_TI")

	assert.NoError(t, err)
	assert.True(t, out.Sucesso)
	assert.Equal(t, "Atualização iniciada com sucesso", out.Mensagem)
}

func TestSchtasksRunner_FalhaDeExecucao(t *testing.T) {
	r := NewSchtasksRunner("192.168.0.210")
	r.bin = "/binario/que/nao/existe"

	out, err := r.Run(context.Background(), "AtualizaBI_TI")

	assert.NoError(t, err)
	assert.False(t, out.Sucesso)
	assert.True(t, strings.HasPrefix(out.Mensagem, "Erro ao executar: "))
}

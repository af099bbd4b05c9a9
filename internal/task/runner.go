// Package task dispara tarefas agendadas em um servidor remoto via schtasks.
package task

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// ErrNomeInvalido é retornado quando o nome da tarefa contém caracteres
// fora da lista permitida. Nenhum processo é criado nesse caso.
var ErrNomeInvalido = errors.New("nome de tarefa inválido")

// reNomeTarefa: letras, dígitos, underscore, hífen e espaço.
var reNomeTarefa = regexp.MustCompile(`^[A-Za-z0-9_\- ]+$`)

// NomeValido informa se o nome de tarefa passa na lista permitida.
func NomeValido(nome string) bool {
	return nome != "" && reNomeTarefa.MatchString(nome)
}

// Outcome é o resultado de um disparo: sucesso ou falha, com a mensagem
// que vai direto para a resposta HTTP.
type Outcome struct {
	Sucesso  bool
	Mensagem string
}

// Runner dispara uma tarefa pelo nome. O mecanismo concreto fica atrás
// desta interface; a sanitização do nome mora aqui, não nos handlers.
type Runner interface {
	Run(ctx context.Context, nome string) (Outcome, error)
}

// SchtasksRunner invoca `schtasks /run /s <servidor> /tn <nome>` como
// processo filho, com timeout fixo. Os argumentos vão via argv, nunca
// por uma string de shell.
type SchtasksRunner struct {
	servidor string
	timeout  time.Duration
	bin      string
}

// NewSchtasksRunner cria um runner apontando para o servidor informado,
// com timeout de 30 segundos por invocação.
func NewSchtasksRunner(servidor string) *SchtasksRunner {
	return &SchtasksRunner{
		servidor: servidor,
		timeout:  30 * time.Second,
		bin:      "schtasks",
	}
}

// Run valida o nome, executa o comando uma única vez e mapeia o resultado.
// Código de saída diferente de zero ou stderr não vazio viram falha com o
// conteúdo do stderr; estourar o timeout vira a mensagem fixa de timeout.
func (r *SchtasksRunner) Run(ctx context.Context, nome string) (Outcome, error) {
	if !NomeValido(nome) {
		return Outcome{}, ErrNomeInvalido
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.bin, "/run", "/s", r.servidor, "/tn", nome)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return Outcome{Sucesso: false, Mensagem: "Timeout ao executar o comando"}, nil
	}

	if err != nil || stderr.Len() > 0 {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return Outcome{Sucesso: false, Mensagem: "Erro ao executar: " + msg}, nil
	}

	return Outcome{Sucesso: true, Mensagem: "Atualização iniciada com sucesso"}, nil
}

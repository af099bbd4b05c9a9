package service

import (
	"context"
	"errors"

	"api-bi/internal/task"
)

// Tarefas conhecidas do agendador, expostas em GET /tarefas.
var catalogoTarefas = []string{
	"AtualizaBI_AcomSemanal",
	"AtualizaBI_Despesas",
	"AtualizaBI_FCST",
	"AtualizaBI_Financeiro",
	"AtualizaBI_Manutencao",
	"AtualizaBI_Margens",
	"AtualizaBI_Orcamento",
	"AtualizaBI_QL_RH",
	"AtualizaBI_Suprimentos",
	"AtualizaBI_TI",
}

// TarefaService dispara tarefas remotas através de um task.Runner
// e conhece a tarefa default de atualização do BI.
type TarefaService struct {
	runner       task.Runner
	tarefaPadrao string
}

// NewTarefaService cria o serviço de tarefas com o runner e a tarefa
// default configurada.
func NewTarefaService(runner task.Runner, tarefaPadrao string) *TarefaService {
	return &TarefaService{runner: runner, tarefaPadrao: tarefaPadrao}
}

// AtualizarBI dispara a tarefa default de atualização.
func (s *TarefaService) AtualizarBI(ctx context.Context) (task.Outcome, error) {
	return s.Executar(ctx, s.tarefaPadrao)
}

// Executar dispara a tarefa pelo nome. Nome fora da lista permitida
// vira 400 antes de qualquer processo ser criado.
func (s *TarefaService) Executar(ctx context.Context, nome string) (task.Outcome, error) {
	out, err := s.runner.Run(ctx, nome)
	if err != nil {
		if errors.Is(err, task.ErrNomeInvalido) {
			return task.Outcome{}, ErrBadRequest("Nome de tarefa inválido")
		}
		return task.Outcome{}, ErrInternal("Erro interno do servidor", err)
	}
	return out, nil
}

// Listar retorna o catálogo estático de tarefas conhecidas.
func (s *TarefaService) Listar() []string {
	tarefas := make([]string, len(catalogoTarefas))
	copy(tarefas, catalogoTarefas)
	return tarefas
}

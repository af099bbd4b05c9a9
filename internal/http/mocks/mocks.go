// Package mocks contém mocks testify dos serviços consumidos pelos handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"api-bi/internal/model"
	"api-bi/internal/service"
	"api-bi/internal/task"
)

// UsuarioService é o mock de http.UsuarioService.
type UsuarioService struct {
	mock.Mock
}

func (m *UsuarioService) Login(ctx context.Context, username, password string) (model.Usuario, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(model.Usuario), args.Error(1)
}

func (m *UsuarioService) Listar(ctx context.Context) ([]model.Usuario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Usuario), args.Error(1)
}

func (m *UsuarioService) Buscar(ctx context.Context, username string) (model.Usuario, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.Usuario), args.Error(1)
}

func (m *UsuarioService) Criar(ctx context.Context, in service.CriarUsuarioInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *UsuarioService) Atualizar(ctx context.Context, username string, in service.AtualizarUsuarioInput) error {
	args := m.Called(ctx, username, in)
	return args.Error(0)
}

func (m *UsuarioService) Toggle(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// TarefaService é o mock de http.TarefaService.
type TarefaService struct {
	mock.Mock
}

func (m *TarefaService) AtualizarBI(ctx context.Context) (task.Outcome, error) {
	args := m.Called(ctx)
	return args.Get(0).(task.Outcome), args.Error(1)
}

func (m *TarefaService) Executar(ctx context.Context, nome string) (task.Outcome, error) {
	args := m.Called(ctx, nome)
	return args.Get(0).(task.Outcome), args.Error(1)
}

func (m *TarefaService) Listar() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

// Package mocks contém mocks testify dos contratos consumidos pela
// camada de serviço.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"api-bi/internal/model"
	"api-bi/internal/task"
)

// UsuarioRepository é o mock de service.UsuarioRepository.
type UsuarioRepository struct {
	mock.Mock
}

func (m *UsuarioRepository) FindActiveUser(ctx context.Context, username string) (model.Usuario, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.Usuario), args.Error(1)
}

func (m *UsuarioRepository) GetByUsername(ctx context.Context, username string) (model.Usuario, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.Usuario), args.Error(1)
}

func (m *UsuarioRepository) List(ctx context.Context) ([]model.Usuario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Usuario), args.Error(1)
}

func (m *UsuarioRepository) Create(ctx context.Context, u model.Usuario) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UsuarioRepository) UpdateFields(ctx context.Context, username string, upd model.UsuarioUpdate) error {
	args := m.Called(ctx, username, upd)
	return args.Error(0)
}

func (m *UsuarioRepository) ToggleAtivo(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// Hasher é o mock de hash.Hasher.
type Hasher struct {
	mock.Mock
}

func (m *Hasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *Hasher) Check(password, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}

// Runner é o mock de task.Runner.
type Runner struct {
	mock.Mock
}

func (m *Runner) Run(ctx context.Context, nome string) (task.Outcome, error) {
	args := m.Called(ctx, nome)
	return args.Get(0).(task.Outcome), args.Error(1)
}

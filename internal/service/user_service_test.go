package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"api-bi/internal/model"
	"api-bi/internal/repository"
	"api-bi/internal/service"
	"api-bi/internal/service/mocks"
)

func novoServico(ur *mocks.UsuarioRepository, h *mocks.Hasher) *service.UsuarioService {
	return service.NewUsuarioService(ur, h)
}

func TestUsuarioService_Login(t *testing.T) {
	usuario := model.Usuario{
		Username:    "admin",
		SenhaHash:   "$2a$10$hash",
		DisplayName: "Administrador",
		Aplicacoes:  `["bi","rh"]`,
		Ativo:       true,
	}

	tests := []struct {
		name       string
		username   string
		password   string
		setupMocks func(ur *mocks.UsuarioRepository, h *mocks.Hasher)
		wantStatus int
		wantMsg    string
	}{
		{
			name:     "Sucesso normaliza o username",
			username: "  ADMIN ",
			password: "123",
			setupMocks: func(ur *mocks.UsuarioRepository, h *mocks.Hasher) {
				ur.On("FindActiveUser", mock.Anything, "admin").Return(usuario, nil)
				h.On("Check", "123", "$2a$10$hash").Return(true)
			},
		},
		{
			name:     "Usuário inexistente vira 401 genérico",
			username: "fantasma",
			password: "123",
			setupMocks: func(ur *mocks.UsuarioRepository, h *mocks.Hasher) {
				ur.On("FindActiveUser", mock.Anything, "fantasma").
					Return(model.Usuario{}, repository.ErrUsuarioNaoEncontrado)
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    service.MsgLoginInvalido,
		},
		{
			name:     "Senha errada vira o mesmo 401 genérico",
			username: "admin",
			password: "errada",
			setupMocks: func(ur *mocks.UsuarioRepository, h *mocks.Hasher) {
				ur.On("FindActiveUser", mock.Anything, "admin").Return(usuario, nil)
				h.On("Check", "errada", "$2a$10$hash").Return(false)
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    service.MsgLoginInvalido,
		},
		{
			name:       "Campos vazios viram 400",
			username:   "",
			password:   "123",
			setupMocks: func(ur *mocks.UsuarioRepository, h *mocks.Hasher) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Dados inválidos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UsuarioRepository)
			h := new(mocks.Hasher)
			tt.setupMocks(ur, h)

			u, err := novoServico(ur, h).Login(context.Background(), tt.username, tt.password)

			if tt.wantStatus == 0 {
				assert.NoError(t, err)
				assert.Equal(t, "admin", u.Username)
			} else {
				appErr, ok := err.(*service.AppError)
				assert.True(t, ok)
				assert.Equal(t, tt.wantStatus, appErr.Status)
				assert.Equal(t, tt.wantMsg, appErr.Message)
			}
			ur.AssertExpectations(t)
			h.AssertExpectations(t)
		})
	}
}

// Usuário inativo e usuário inexistente produzem exatamente o mesmo erro
// para o cliente: FindActiveUser não distingue os dois casos.
func TestUsuarioService_LoginInativoIndistinguivel(t *testing.T) {
	ur := new(mocks.UsuarioRepository)
	h := new(mocks.Hasher)
	ur.On("FindActiveUser", mock.Anything, "inativo").
		Return(model.Usuario{}, repository.ErrUsuarioNaoEncontrado)
	ur.On("FindActiveUser", mock.Anything, "fantasma").
		Return(model.Usuario{}, repository.ErrUsuarioNaoEncontrado)

	svc := novoServico(ur, h)

	_, errInativo := svc.Login(context.Background(), "inativo", "senha-correta")
	_, errFantasma := svc.Login(context.Background(), "fantasma", "qualquer")

	appInativo := errInativo.(*service.AppError)
	appFantasma := errFantasma.(*service.AppError)
	assert.Equal(t, appFantasma.Status, appInativo.Status)
	assert.Equal(t, appFantasma.Message, appInativo.Message)
}

func TestUsuarioService_Criar(t *testing.T) {
	tests := []struct {
		name       string
		in         service.CriarUsuarioInput
		setupMocks func(ur *mocks.UsuarioRepository, h *mocks.Hasher)
		wantStatus int
	}{
		{
			name: "Sucesso com username normalizado",
			in: service.CriarUsuarioInput{
				Username:    " Novo ",
				Password:    "123",
				DisplayName: " Novo Usuário ",
				Aplicacoes:  `["bi"]`,
				Ativo:       true,
			},
			setupMocks: func(ur *mocks.UsuarioRepository, h *mocks.Hasher) {
				h.On("Hash", "123").Return("hash-gerado", nil)
				ur.On("Create", mock.Anything, mock.MatchedBy(func(u model.Usuario) bool {
					return u.Username == "novo" &&
						u.SenhaHash == "hash-gerado" &&
						u.DisplayName == "Novo Usuário" &&
						u.Aplicacoes == `["bi"]` &&
						u.Ativo
				})).Return(nil)
			},
		},
		{
			name: "Username duplicado vira 409",
			in: service.CriarUsuarioInput{
				Username: "admin", Password: "123", DisplayName: "x", Aplicacoes: `[]`, Ativo: true,
			},
			setupMocks: func(ur *mocks.UsuarioRepository, h *mocks.Hasher) {
				h.On("Hash", "123").Return("hash-gerado", nil)
				ur.On("Create", mock.Anything, mock.Anything).Return(repository.ErrUsuarioExiste)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "Sem senha vira 400",
			in:         service.CriarUsuarioInput{Username: "x"},
			setupMocks: func(ur *mocks.UsuarioRepository, h *mocks.Hasher) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UsuarioRepository)
			h := new(mocks.Hasher)
			tt.setupMocks(ur, h)

			username, err := novoServico(ur, h).Criar(context.Background(), tt.in)

			if tt.wantStatus == 0 {
				assert.NoError(t, err)
				assert.Equal(t, "novo", username)
			} else {
				appErr, ok := err.(*service.AppError)
				assert.True(t, ok)
				assert.Equal(t, tt.wantStatus, appErr.Status)
			}
			ur.AssertExpectations(t)
			h.AssertExpectations(t)
		})
	}
}

func TestUsuarioService_AtualizarParcial(t *testing.T) {
	ur := new(mocks.UsuarioRepository)
	h := new(mocks.Hasher)

	ativo := false
	// Só o flag ativo muda: nada de hash, display_name ou aplicacoes.
	ur.On("UpdateFields", mock.Anything, "admin", mock.MatchedBy(func(upd model.UsuarioUpdate) bool {
		return upd.SenhaHash == nil &&
			upd.DisplayName == nil &&
			upd.Aplicacoes == nil &&
			upd.Ativo != nil && !*upd.Ativo
	})).Return(nil)

	err := novoServico(ur, h).Atualizar(context.Background(), "admin", service.AtualizarUsuarioInput{Ativo: &ativo})

	assert.NoError(t, err)
	h.AssertNotCalled(t, "Hash", mock.Anything)
	ur.AssertExpectations(t)
}

func TestUsuarioService_AtualizarSenhaVaziaIgnorada(t *testing.T) {
	ur := new(mocks.UsuarioRepository)
	h := new(mocks.Hasher)

	vazia := ""
	dn := "Novo Nome"
	ur.On("UpdateFields", mock.Anything, "admin", mock.MatchedBy(func(upd model.UsuarioUpdate) bool {
		return upd.SenhaHash == nil && upd.DisplayName != nil && *upd.DisplayName == "Novo Nome"
	})).Return(nil)

	err := novoServico(ur, h).Atualizar(context.Background(), "admin", service.AtualizarUsuarioInput{
		Password:    &vazia,
		DisplayName: &dn,
	})

	assert.NoError(t, err)
	h.AssertNotCalled(t, "Hash", mock.Anything)
	ur.AssertExpectations(t)
}

func TestUsuarioService_AtualizarInexistente(t *testing.T) {
	ur := new(mocks.UsuarioRepository)
	h := new(mocks.Hasher)

	ativo := true
	ur.On("UpdateFields", mock.Anything, "fantasma", mock.Anything).
		Return(repository.ErrUsuarioNaoEncontrado)

	err := novoServico(ur, h).Atualizar(context.Background(), "fantasma", service.AtualizarUsuarioInput{Ativo: &ativo})

	appErr, ok := err.(*service.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestUsuarioService_Toggle(t *testing.T) {
	ur := new(mocks.UsuarioRepository)
	h := new(mocks.Hasher)

	ur.On("ToggleAtivo", mock.Anything, "admin").Return(false, nil)

	ativo, err := novoServico(ur, h).Toggle(context.Background(), "admin")

	assert.NoError(t, err)
	assert.False(t, ativo)
	ur.AssertExpectations(t)
}

func TestUsuarioService_Buscar(t *testing.T) {
	ur := new(mocks.UsuarioRepository)
	h := new(mocks.Hasher)

	ur.On("GetByUsername", mock.Anything, "fantasma").
		Return(model.Usuario{}, repository.ErrUsuarioNaoEncontrado)

	_, err := novoServico(ur, h).Buscar(context.Background(), "fantasma")

	appErr, ok := err.(*service.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Usuário não encontrado", appErr.Message)
}

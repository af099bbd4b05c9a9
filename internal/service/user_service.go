package service

import (
	"context"
	"errors"
	"strings"

	"api-bi/internal/hash"
	"api-bi/internal/model"
	"api-bi/internal/repository"
)

// MsgLoginInvalido é a resposta genérica para qualquer falha de login.
// Usuário inexistente, inativo ou senha errada são indistinguíveis
// para o cliente; o motivo real fica apenas no log.
const MsgLoginInvalido = "Usuário ou senha incorretos"

var errSenhaIncorreta = errors.New("senha incorreta")

// UsuarioRepository descreve o contrato do repositório de usuários
// para a camada de negócio.
type UsuarioRepository interface {
	FindActiveUser(ctx context.Context, username string) (model.Usuario, error)
	GetByUsername(ctx context.Context, username string) (model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	Create(ctx context.Context, u model.Usuario) error
	UpdateFields(ctx context.Context, username string, upd model.UsuarioUpdate) error
	ToggleAtivo(ctx context.Context, username string) (bool, error)
}

// UsuarioService concentra a lógica de autenticação e de gerenciamento
// de usuários.
type UsuarioService struct {
	repo   UsuarioRepository
	hasher hash.Hasher
}

// NewUsuarioService cria um novo serviço de usuários.
func NewUsuarioService(repo UsuarioRepository, hasher hash.Hasher) *UsuarioService {
	return &UsuarioService{repo: repo, hasher: hasher}
}

// CriarUsuarioInput são os campos obrigatórios de criação.
// Aplicacoes chega como string JSON já validada na borda HTTP.
type CriarUsuarioInput struct {
	Username    string
	Password    string
	DisplayName string
	Aplicacoes  string
	Ativo       bool
}

// AtualizarUsuarioInput é a atualização parcial vinda do PUT;
// campos nil são ignorados.
type AtualizarUsuarioInput struct {
	Password    *string
	DisplayName *string
	Aplicacoes  *string
	Ativo       *bool
}

// Login autentica o usuário: busca o registro ativo e confere o hash.
// Qualquer caminho de falha devolve o mesmo 401 genérico.
func (s *UsuarioService) Login(ctx context.Context, username, password string) (model.Usuario, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return model.Usuario{}, ErrBadRequest("Dados inválidos")
	}

	u, err := s.repo.FindActiveUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			return model.Usuario{}, ErrUnauthorized(MsgLoginInvalido, err)
		}
		return model.Usuario{}, ErrInternal("Erro interno", err)
	}

	if !s.hasher.Check(password, u.SenhaHash) {
		return model.Usuario{}, ErrUnauthorized(MsgLoginInvalido, errSenhaIncorreta)
	}

	return u, nil
}

// Listar retorna todos os usuários.
func (s *UsuarioService) Listar(ctx context.Context) ([]model.Usuario, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal("Erro interno", err)
	}
	return usuarios, nil
}

// Buscar retorna um usuário pelo username exato.
func (s *UsuarioService) Buscar(ctx context.Context, username string) (model.Usuario, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			return model.Usuario{}, ErrNotFound("Usuário não encontrado")
		}
		return model.Usuario{}, ErrInternal("Erro interno", err)
	}
	return u, nil
}

// Criar gera o hash da senha e insere o usuário.
// Username duplicado vira conflito sem alterar a linha existente.
func (s *UsuarioService) Criar(ctx context.Context, in CriarUsuarioInput) (string, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username == "" || in.Password == "" {
		return "", ErrBadRequest("Dados inválidos")
	}

	senhaHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", ErrInternal("Erro interno", err)
	}

	err = s.repo.Create(ctx, model.Usuario{
		Username:    username,
		SenhaHash:   senhaHash,
		DisplayName: strings.TrimSpace(in.DisplayName),
		Aplicacoes:  in.Aplicacoes,
		Ativo:       in.Ativo,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioExiste) {
			return "", ErrConflict("Usuário já existe")
		}
		return "", ErrInternal("Erro interno", err)
	}
	return username, nil
}

// Atualizar aplica a atualização parcial. Senha vazia é ignorada;
// senha presente é re-hasheada aqui.
func (s *UsuarioService) Atualizar(ctx context.Context, username string, in AtualizarUsuarioInput) error {
	upd := model.UsuarioUpdate{
		Aplicacoes: in.Aplicacoes,
		Ativo:      in.Ativo,
	}

	if in.Password != nil && *in.Password != "" {
		senhaHash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return ErrInternal("Erro interno", err)
		}
		upd.SenhaHash = &senhaHash
	}
	if in.DisplayName != nil {
		dn := strings.TrimSpace(*in.DisplayName)
		upd.DisplayName = &dn
	}

	if err := s.repo.UpdateFields(ctx, username, upd); err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			return ErrNotFound("Usuário não encontrado")
		}
		return ErrInternal("Erro interno", err)
	}
	return nil
}

// Toggle inverte o flag ativo e retorna o novo estado.
func (s *UsuarioService) Toggle(ctx context.Context, username string) (bool, error) {
	ativo, err := s.repo.ToggleAtivo(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNaoEncontrado) {
			return false, ErrNotFound("Usuário não encontrado")
		}
		return false, ErrInternal("Erro interno", err)
	}
	return ativo, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"api-bi/internal/model"

	"github.com/jackc/pgx/v5"
)

// UsuarioRepo implementa o repositório de usuários sobre PostgreSQL.
// Todas as queries são parametrizadas; nada de SQL interpolado.
type UsuarioRepo struct {
	db *Postgres
}

// NewUsuarioRepo cria um novo UsuarioRepo com a conexão recebida.
func NewUsuarioRepo(db *Postgres) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

const colunas = `username, senha_hash, display_name, aplicacoes, ativo, criado_em, atualizado_em`

func scanUsuario(row pgx.Row) (model.Usuario, error) {
	var u model.Usuario
	err := row.Scan(&u.Username, &u.SenhaHash, &u.DisplayName, &u.Aplicacoes, &u.Ativo, &u.CriadoEm, &u.AtualizadoEm)
	return u, err
}

// FindActiveUser busca um usuário ativo pelo username (normalizado para
// minúsculas). Se não houver linha, retorna ErrUsuarioNaoEncontrado.
func (r *UsuarioRepo) FindActiveUser(ctx context.Context, username string) (model.Usuario, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT `+colunas+`
FROM usuarios
WHERE username = $1 AND ativo = TRUE
`, strings.ToLower(username))

	u, err := scanUsuario(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Usuario{}, ErrUsuarioNaoEncontrado
		}
		return model.Usuario{}, fmt.Errorf("find active user: %w", err)
	}
	return u, nil
}

// GetByUsername busca um usuário pelo username, ativo ou não.
func (r *UsuarioRepo) GetByUsername(ctx context.Context, username string) (model.Usuario, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT `+colunas+`
FROM usuarios
WHERE username = $1
`, strings.ToLower(username))

	u, err := scanUsuario(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Usuario{}, ErrUsuarioNaoEncontrado
		}
		return model.Usuario{}, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// List retorna todos os usuários ordenados por username.
func (r *UsuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT `+colunas+`
FROM usuarios
ORDER BY username
`)
	if err != nil {
		return nil, fmt.Errorf("query usuarios: %w", err)
	}
	defer rows.Close()

	usuarios := make([]model.Usuario, 0)
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return usuarios, nil
}

// Create insere um novo usuário. Se o username já existir,
// retorna ErrUsuarioExiste sem tocar na linha existente.
func (r *UsuarioRepo) Create(ctx context.Context, u model.Usuario) error {
	username := strings.ToLower(u.Username)

	var existe bool
	err := r.db.Pool.QueryRow(ctx, `
SELECT EXISTS(SELECT 1 FROM usuarios WHERE username = $1)
`, username).Scan(&existe)
	if err != nil {
		return fmt.Errorf("check usuario: %w", err)
	}
	if existe {
		return ErrUsuarioExiste
	}

	_, err = r.db.Pool.Exec(ctx, `
INSERT INTO usuarios (username, senha_hash, display_name, aplicacoes, ativo, criado_em, atualizado_em)
VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
`, username, u.SenhaHash, u.DisplayName, u.Aplicacoes, u.Ativo)
	if err != nil {
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// UpdateFields aplica uma atualização parcial: só os campos não-nil são
// escritos, e atualizado_em é sempre renovado. Se o usuário não existir,
// retorna ErrUsuarioNaoEncontrado.
func (r *UsuarioRepo) UpdateFields(ctx context.Context, username string, upd model.UsuarioUpdate) error {
	username = strings.ToLower(username)

	set := []string{"atualizado_em = NOW()"}
	args := []any{username}

	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.SenhaHash != nil {
		add("senha_hash", *upd.SenhaHash)
	}
	if upd.DisplayName != nil {
		add("display_name", *upd.DisplayName)
	}
	if upd.Aplicacoes != nil {
		add("aplicacoes", *upd.Aplicacoes)
	}
	if upd.Ativo != nil {
		add("ativo", *upd.Ativo)
	}

	tag, err := r.db.Pool.Exec(ctx, `
UPDATE usuarios SET `+strings.Join(set, ", ")+`
WHERE username = $1
`, args...)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUsuarioNaoEncontrado
	}
	return nil
}

// ToggleAtivo inverte o flag ativo e retorna o novo valor.
// Um único UPDATE com RETURNING evita a corrida do ler-depois-gravar.
func (r *UsuarioRepo) ToggleAtivo(ctx context.Context, username string) (bool, error) {
	row := r.db.Pool.QueryRow(ctx, `
UPDATE usuarios
SET ativo = NOT ativo, atualizado_em = NOW()
WHERE username = $1
RETURNING ativo
`, strings.ToLower(username))

	var ativo bool
	if err := row.Scan(&ativo); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrUsuarioNaoEncontrado
		}
		return false, fmt.Errorf("toggle usuario: %w", err)
	}
	return ativo, nil
}

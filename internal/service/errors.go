package service

import (
	"fmt"
	"net/http"
)

// AppError descreve uma falha da aplicação: código para o cliente,
// mensagem legível, status HTTP e a causa interna encadeada.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error implementa a interface error para AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap expõe a causa interna para errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest constrói um AppError para entrada inválida do cliente.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrUnauthorized constrói um AppError para falha de autenticação.
// A causa em err fica só no log; a mensagem ao cliente é sempre genérica.
func ErrUnauthorized(msg string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: msg,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

// ErrNotFound constrói um AppError para recurso inexistente.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrConflict constrói um AppError para conflito de estado (username duplicado).
func ErrConflict(msg string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: msg,
		Status:  http.StatusConflict,
	}
}

// ErrInternal constrói um AppError para falhas de infraestrutura.
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

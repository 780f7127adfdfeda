package sankhyaclient

import (
	"errors"
	"fmt"
)

// ErrSessionExpired indica que o token foi rejeitado duas vezes seguidas.
// Não é re-tentado automaticamente além disso: o chamador decide repetir.
var ErrSessionExpired = errors.New("sessão expirada, tente novamente")

// AuthError representa falha de credenciais ou indisponibilidade do login.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// TransportError representa falha de rede ou 5xx que esgotou as tentativas.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("erro na comunicação com o Sankhya (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("erro na comunicação com o Sankhya: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RequestError representa um 4xx não relacionado a autenticação, por
// exemplo uma expressão de consulta malformada. Nunca é re-tentado.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("requisição rejeitada pelo Sankhya (status %d): %s", e.StatusCode, e.Message)
}

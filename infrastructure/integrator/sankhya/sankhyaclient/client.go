package sankhyaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/avmoura/sankhya-crm-api/internal/config"
)

const (
	// Tentativas extras para falhas transitórias (rede, timeout, 5xx).
	maxRetries = 2
	// Atraso base; cresce linearmente com o número da tentativa.
	retryBaseDelay = 1 * time.Second
	// Pausa antes de repetir com token renovado após 401/403.
	authRetryDelay = 500 * time.Millisecond
)

// Client executa requisições autenticadas contra o gateway Sankhya.
type Client interface {
	Execute(endpoint, method string, payload any) ([]byte, error)
	ExecuteWithTimeout(endpoint, method string, payload any, timeout time.Duration) ([]byte, error)
}

type SankhyaClient struct {
	cfg        *config.Config
	tokens     TokenProvider
	httpClient *http.Client
	sleep      func(time.Duration)
}

// NewClient cria um cliente do gateway. O TokenProvider é injetado por
// referência; o cliente nunca constrói tokens por conta própria.
func NewClient(cfg *config.Config, tokens TokenProvider) Client {
	return &SankhyaClient{
		cfg:        cfg,
		tokens:     tokens,
		httpClient: &http.Client{},
		sleep:      time.Sleep,
	}
}

// Execute roda a requisição com o timeout padrão de consulta.
func (c *SankhyaClient) Execute(endpoint, method string, payload any) ([]byte, error) {
	timeout := time.Duration(c.cfg.Sankhya.QueryTimeoutSeconds) * time.Second
	return c.ExecuteWithTimeout(endpoint, method, payload, timeout)
}

// ExecuteWithTimeout roda a requisição com timeout próprio do ponto de
// chamada. Política de retry:
//   - 401/403: renova o token à força e repete exatamente uma vez; a segunda
//     rejeição vira ErrSessionExpired.
//   - Falha transitória (erro de rede, timeout ou 5xx): até duas tentativas
//     extras com atraso linear crescente; esgotadas, TransportError.
//   - Demais 4xx: RequestError, sem retry.
func (c *SankhyaClient) ExecuteWithTimeout(endpoint, method string, payload any, timeout time.Duration) ([]byte, error) {
	return c.execute(endpoint, method, payload, timeout, 0)
}

func (c *SankhyaClient) execute(endpoint, method string, payload any, timeout time.Duration, attempt int) ([]byte, error) {
	token, err := c.tokens.GetToken(attempt > 0)
	if err != nil {
		return nil, err
	}

	body, status, err := c.do(endpoint, method, payload, timeout, token)
	if err != nil {
		// Erro de rede ou timeout conta como falha transitória.
		if attempt < maxRetries {
			logrus.WithError(err).Warnf("Tentando novamente requisição ao Sankhya (%d/%d)", attempt+1, maxRetries)
			c.sleep(retryBaseDelay * time.Duration(attempt+1))
			return c.execute(endpoint, method, payload, timeout, attempt+1)
		}
		return nil, &TransportError{Message: "falha de rede após esgotar as tentativas", Err: err}
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if attempt < 1 {
			logrus.Info("Token do Sankhya expirado, forçando renovação")
			c.sleep(authRetryDelay)
			return c.execute(endpoint, method, payload, timeout, attempt+1)
		}
		return nil, ErrSessionExpired

	case status >= http.StatusInternalServerError:
		if attempt < maxRetries {
			logrus.Warnf("Sankhya respondeu %d, tentando novamente (%d/%d)", status, attempt+1, maxRetries)
			c.sleep(retryBaseDelay * time.Duration(attempt+1))
			return c.execute(endpoint, method, payload, timeout, attempt+1)
		}
		return nil, &TransportError{StatusCode: status, Message: upstreamMessage(body)}

	case status >= http.StatusBadRequest:
		return nil, &RequestError{StatusCode: status, Message: upstreamMessage(body)}
	}

	return body, nil
}

func (c *SankhyaClient) do(endpoint, method string, payload any, timeout time.Duration, token string) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao serializar payload: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	return body, resp.StatusCode, nil
}

// upstreamMessage tenta extrair statusMessage do corpo de erro do Sankhya;
// na falta dele devolve o corpo cru truncado.
func upstreamMessage(body []byte) string {
	var envelope struct {
		StatusMessage string `json:"statusMessage"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.StatusMessage != "" {
		return envelope.StatusMessage
	}

	const limit = 512
	if len(body) > limit {
		body = body[:limit]
	}
	return string(body)
}

package sankhyaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/avmoura/sankhya-crm-api/internal/config"
)

// Vida útil do bearer token no cache local. O gateway invalida sessões em
// torno de 30 minutos; renovar aos 20 evita trabalhar com token no limite.
const tokenLifetime = 20 * time.Minute

// TokenProvider fornece um bearer token válido para o gateway Sankhya.
// GetToken com forceRefresh ignora o cache e faz login de novo.
type TokenProvider interface {
	GetToken(forceRefresh bool) (string, error)
	Invalidate()
}

// TokenManager gerencia o token de acesso do gateway Sankhya. O cache é
// estado mutável compartilhado protegido por mutex; renovações concorrentes
// podem ambas vencer o login e a última escrita prevalece, o que é aceitável
// porque tokens válidos são intercambiáveis.
type TokenManager struct {
	cfg        *config.Config
	httpClient *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens.
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type loginResponse struct {
	BearerToken string `json:"bearerToken"`
	Token       string `json:"token"`
}

// GetToken retorna um token não expirado, fazendo login quando o cache está
// vazio, vencido ou quando forceRefresh é verdadeiro.
func (tm *TokenManager) GetToken(forceRefresh bool) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if !forceRefresh && tm.token != "" && time.Now().Before(tm.expiresAt) {
		return tm.token, nil
	}

	logrus.Info("Obtendo novo token do Sankhya")

	token, err := tm.login()
	if err != nil {
		return "", err
	}

	tm.token = token
	tm.expiresAt = time.Now().Add(tokenLifetime)

	logrus.WithField("expires_at", tm.expiresAt.Format(time.RFC3339)).
		Info("Token do Sankhya obtido e cacheado")

	return token, nil
}

// Invalidate descarta o token cacheado; o próximo GetToken faz login.
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.token = ""
	tm.expiresAt = time.Time{}
}

func (tm *TokenManager) login() (string, error) {
	req, err := http.NewRequest(http.MethodPost, tm.cfg.Sankhya.LoginURL, nil)
	if err != nil {
		return "", &AuthError{Message: "erro ao montar requisição de login", Err: err}
	}

	req.Header.Set("token", tm.cfg.Sankhya.Token)
	req.Header.Set("appkey", tm.cfg.Sankhya.AppKey)
	req.Header.Set("username", tm.cfg.Sankhya.Username)
	req.Header.Set("password", tm.cfg.Sankhya.Password)

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return "", &AuthError{Message: "erro ao acessar o endpoint de login do Sankhya", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &AuthError{Message: "erro ao ler resposta de login", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Login no Sankhya falhou. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return "", &AuthError{
			Message: fmt.Sprintf("login no Sankhya falhou com status %d", resp.StatusCode),
		}
	}

	var loginResp loginResponse
	if err := json.Unmarshal(body, &loginResp); err != nil {
		return "", &AuthError{Message: "erro ao decodificar resposta de login", Err: err}
	}

	token := loginResp.BearerToken
	if token == "" {
		token = loginResp.Token
	}

	if token == "" {
		return "", &AuthError{Message: "token não retornado pela API Sankhya"}
	}

	return token, nil
}

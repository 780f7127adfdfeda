package sankhyaclient

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/avmoura/sankhya-crm-api/internal/config"
)

// stubTokens devolve tokens sequenciais e registra os pedidos de renovação
// forçada.
type stubTokens struct {
	calls   int32
	forced  int32
	failErr error
}

func (s *stubTokens) GetToken(forceRefresh bool) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	if forceRefresh {
		atomic.AddInt32(&s.forced, 1)
	}
	if s.failErr != nil {
		return "", s.failErr
	}
	return "tok", nil
}

func (s *stubTokens) Invalidate() {}

func newTestClient(cfg *config.Config, tokens TokenProvider) *SankhyaClient {
	return &SankhyaClient{
		cfg:        cfg,
		tokens:     tokens,
		httpClient: &http.Client{},
		sleep:      func(time.Duration) {},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Sankhya: config.Sankhya{QueryTimeoutSeconds: 5},
	}
}

func TestClient_Execute_Success(t *testing.T) {
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	tokens := &stubTokens{}
	client := newTestClient(testConfig(), tokens)

	body, err := client.Execute(server.URL, http.MethodPost, map[string]string{"a": "b"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, "Bearer tok", authHeader)
	assert.EqualValues(t, 1, tokens.calls)
	assert.EqualValues(t, 0, tokens.forced)
}

func TestClient_Execute_UnauthorizedThenSuccess(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requests, 1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	tokens := &stubTokens{}
	client := newTestClient(testConfig(), tokens)

	body, err := client.Execute(server.URL, http.MethodPost, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	// Segunda tentativa pede renovação forçada do token
	assert.EqualValues(t, 2, requests)
	assert.EqualValues(t, 1, tokens.forced)
}

func TestClient_Execute_SessionExpiredAfterSecondRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	tokens := &stubTokens{}
	client := newTestClient(testConfig(), tokens)

	_, err := client.Execute(server.URL, http.MethodPost, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	// Exatamente uma repetição: duas requisições no total
	assert.EqualValues(t, 2, tokens.calls)
}

func TestClient_Execute_ServerErrorExhaustsRetries(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"statusMessage":"gateway fora do ar"}`))
	}))
	defer server.Close()

	tokens := &stubTokens{}
	client := newTestClient(testConfig(), tokens)

	_, err := client.Execute(server.URL, http.MethodPost, nil)

	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusBadGateway, transportErr.StatusCode)
	assert.Equal(t, "gateway fora do ar", transportErr.Message)
	// Tentativa original mais duas repetições
	assert.EqualValues(t, 3, requests)
}

func TestClient_Execute_BadRequestIsNotRetried(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"statusMessage":"expressão de filtro inválida"}`))
	}))
	defer server.Close()

	tokens := &stubTokens{}
	client := newTestClient(testConfig(), tokens)

	_, err := client.Execute(server.URL, http.MethodPost, nil)

	require.Error(t, err)

	var requestErr *RequestError
	require.ErrorAs(t, err, &requestErr)
	assert.Equal(t, http.StatusUnprocessableEntity, requestErr.StatusCode)
	assert.Equal(t, "expressão de filtro inválida", requestErr.Message)
	assert.EqualValues(t, 1, requests)
}

func TestClient_Execute_NetworkErrorExhaustsRetries(t *testing.T) {
	// Servidor fechado imediatamente: toda tentativa falha na conexão
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	tokens := &stubTokens{}
	client := newTestClient(testConfig(), tokens)

	_, err := client.Execute(endpoint, http.MethodPost, nil)

	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	// Tentativa original mais duas repetições
	assert.EqualValues(t, 3, tokens.calls)
}

func TestClient_Execute_TokenFailurePropagates(t *testing.T) {
	boom := errors.New("login no Sankhya falhou com status 500")
	tokens := &stubTokens{failErr: boom}
	client := newTestClient(testConfig(), tokens)

	_, err := client.Execute("http://localhost:0", http.MethodPost, nil)

	require.ErrorIs(t, err, boom)
}

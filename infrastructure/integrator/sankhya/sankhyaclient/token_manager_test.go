package sankhyaclient

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/avmoura/sankhya-crm-api/internal/config"
)

func tokenTestConfig(loginURL string) *config.Config {
	return &config.Config{
		Sankhya: config.Sankhya{
			LoginURL: loginURL,
			AppKey:   "appkey",
			Token:    "token",
			Username: "usuario",
			Password: "senha",
		},
	}
}

func TestTokenManager_GetToken_CachesUntilExpiry(t *testing.T) {
	var logins int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&logins, 1)

		assert.Equal(t, "appkey", r.Header.Get("appkey"))
		assert.Equal(t, "token", r.Header.Get("token"))
		assert.Equal(t, "usuario", r.Header.Get("username"))
		assert.Equal(t, "senha", r.Header.Get("password"))

		w.Write([]byte(`{"bearerToken":"abc123"}`))
	}))
	defer server.Close()

	tm := NewTokenManager(tokenTestConfig(server.URL))

	token, err := tm.GetToken(false)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	// Segunda chamada dentro da validade não faz login de novo
	token, err = tm.GetToken(false)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
	assert.EqualValues(t, 1, logins)
}

func TestTokenManager_GetToken_ForceRefresh(t *testing.T) {
	var logins int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&logins, 1)
		w.Write([]byte(`{"bearerToken":"abc123"}`))
	}))
	defer server.Close()

	tm := NewTokenManager(tokenTestConfig(server.URL))

	_, err := tm.GetToken(false)
	require.NoError(t, err)

	_, err = tm.GetToken(true)
	require.NoError(t, err)

	assert.EqualValues(t, 2, logins)
}

func TestTokenManager_GetToken_FallsBackToTokenField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"xyz789"}`))
	}))
	defer server.Close()

	tm := NewTokenManager(tokenTestConfig(server.URL))

	token, err := tm.GetToken(false)
	require.NoError(t, err)
	assert.Equal(t, "xyz789", token)
}

func TestTokenManager_GetToken_LoginFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"credenciais inválidas"}`))
	}))
	defer server.Close()

	tm := NewTokenManager(tokenTestConfig(server.URL))

	_, err := tm.GetToken(false)
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestTokenManager_Invalidate(t *testing.T) {
	var logins int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&logins, 1)
		w.Write([]byte(`{"bearerToken":"abc123"}`))
	}))
	defer server.Close()

	tm := NewTokenManager(tokenTestConfig(server.URL))

	_, err := tm.GetToken(false)
	require.NoError(t, err)

	tm.Invalidate()

	_, err = tm.GetToken(false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, logins)
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pocketledger/pocketledger/internal/auth"
	"github.com/pocketledger/pocketledger/internal/middleware"
	"github.com/pocketledger/pocketledger/internal/service"
	"github.com/pocketledger/pocketledger/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// newTestServer wires the full router over the in-memory store, with the
// real auth middleware in front of the protected routes.
func newTestServer() *http.ServeMux {
	store := storage.NewMemoryStorage()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	authHandler := NewAuthHandler(service.NewAuthService(store, jwtManager, bcrypt.MinCost))
	transactionHandler := NewTransactionHandler(service.NewLedgerService(store, nil))
	taskHandler := NewTaskHandler(service.NewTaskService(store))
	requireAuth := middleware.NewAuthMiddleware(jwtManager).RequireAuth

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/transactions", requireAuth(transactionHandler.Create))
	mux.HandleFunc("GET /api/transactions", requireAuth(transactionHandler.List))
	mux.HandleFunc("GET /api/transactions/summary", requireAuth(transactionHandler.Summary))
	mux.HandleFunc("PUT /api/transactions/{id}", requireAuth(transactionHandler.Update))
	mux.HandleFunc("DELETE /api/transactions/{id}", requireAuth(transactionHandler.Delete))
	mux.HandleFunc("POST /api/tasks", requireAuth(taskHandler.Create))
	mux.HandleFunc("GET /api/tasks", requireAuth(taskHandler.List))
	mux.HandleFunc("PUT /api/tasks/{id}", requireAuth(taskHandler.Update))
	mux.HandleFunc("DELETE /api/tasks/{id}", requireAuth(taskHandler.Delete))

	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response '%s': %v", rec.Body.String(), err)
	}
}

func registerAndLogin(t *testing.T, mux *http.ServeMux, name, email string) string {
	t.Helper()

	rec := doRequest(t, mux, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed with status %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, mux, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "password1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &resp)
	return resp.Token
}

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

var (
	apiURL           = getEnv("API_URL", "http://localhost:8080")
	testUserEmail    = fmt.Sprintf("test-%d@example.com", time.Now().UnixNano())
	testUserPassword = "testPassword123"
	authToken        string
	transactionID    string
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func TestMain(m *testing.M) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		fmt.Println("Skipping integration tests. Set INTEGRATION_TEST=true to run.")
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func doJSON(t *testing.T, method, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body []byte
	if payload != nil {
		body, _ = json.Marshal(payload)
	}

	req, err := http.NewRequest(method, apiURL+path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func TestHealthCheck(t *testing.T) {
	resp, err := http.Get(apiURL + "/health")
	if err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
}

func TestUserRegistration(t *testing.T) {
	resp, _ := doJSON(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Test User",
		"email":    testUserEmail,
		"password": testUserPassword,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("expected status 201, got %d", resp.StatusCode)
	}
}

func TestUserLogin(t *testing.T) {
	resp, result := doJSON(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    testUserEmail,
		"password": testUserPassword,
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	if token, ok := result["token"].(string); ok {
		authToken = token
	}
	if authToken == "" {
		t.Error("expected auth token in response")
	}
}

func TestCreateTransaction(t *testing.T) {
	if authToken == "" {
		t.Skip("no auth token available")
	}

	resp, result := doJSON(t, http.MethodPost, "/api/transactions", map[string]interface{}{
		"type":        "expense",
		"category":    "integration",
		"amount":      12.34,
		"description": "integration test entry",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}

	if id, ok := result["id"].(string); ok {
		transactionID = id
	}
	if transactionID == "" {
		t.Error("expected transaction id in response")
	}
}

func TestListTransactions(t *testing.T) {
	if authToken == "" {
		t.Skip("no auth token available")
	}

	resp, result := doJSON(t, http.MethodGet, "/api/transactions?category=integration", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	total, ok := result["total"].(float64)
	if !ok || total < 1 {
		t.Errorf("expected at least one transaction, got %v", result["total"])
	}
}

func TestSummary(t *testing.T) {
	if authToken == "" {
		t.Skip("no auth token available")
	}

	resp, result := doJSON(t, http.MethodGet, "/api/transactions/summary", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	if _, ok := result["totalExpense"]; !ok {
		t.Error("expected totalExpense in summary response")
	}
}

func TestDeleteTransaction(t *testing.T) {
	if authToken == "" || transactionID == "" {
		t.Skip("no transaction to delete")
	}

	resp, _ := doJSON(t, http.MethodDelete, "/api/transactions/"+transactionID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodDelete, "/api/transactions/"+transactionID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404 for repeated delete, got %d", resp.StatusCode)
	}
}

func TestUnauthorizedAccess(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, apiURL+"/api/transactions", nil)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401 without token, got %d", resp.StatusCode)
	}
}

package handlers

import (
	"net/http"
	"testing"
	"time"
)

func TestTasks_RequireToken(t *testing.T) {
	mux := newTestServer()

	rec := doRequest(t, mux, http.MethodGet, "/api/tasks", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 without token, got %d", rec.Code)
	}
}

func TestTaskEndpoints_Lifecycle(t *testing.T) {
	mux := newTestServer()
	token := registerAndLogin(t, mux, "Alice", "alice@example.com")

	deadline := time.Now().AddDate(0, 0, 7).Format(time.RFC3339)
	rec := doRequest(t, mux, http.MethodPost, "/api/tasks", token, map[string]interface{}{
		"title":    "pay rent",
		"category": "home",
		"deadline": deadline,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}
	decodeBody(t, rec, &created)
	if created.Title != "pay rent" || created.Completed {
		t.Errorf("unexpected task %+v", created)
	}

	rec = doRequest(t, mux, http.MethodPut, "/api/tasks/"+created.ID, token, map[string]interface{}{
		"completed": true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated struct {
		Completed bool `json:"completed"`
	}
	decodeBody(t, rec, &updated)
	if !updated.Completed {
		t.Error("expected task to be completed")
	}

	rec = doRequest(t, mux, http.MethodDelete, "/api/tasks/"+created.ID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var tasks []struct {
		ID string `json:"id"`
	}
	decodeBody(t, doRequest(t, mux, http.MethodGet, "/api/tasks", token, nil), &tasks)
	if len(tasks) != 0 {
		t.Errorf("expected empty task list after delete, got %d", len(tasks))
	}
}

func TestCreateTaskEndpoint_Validation(t *testing.T) {
	mux := newTestServer()
	token := registerAndLogin(t, mux, "Alice", "alice@example.com")

	rec := doRequest(t, mux, http.MethodPost, "/api/tasks", token, map[string]interface{}{
		"category": "home",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for missing title, got %d", rec.Code)
	}

	past := time.Now().AddDate(0, 0, -2).Format(time.RFC3339)
	rec = doRequest(t, mux, http.MethodPost, "/api/tasks", token, map[string]interface{}{
		"title":    "time travel",
		"deadline": past,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for past deadline, got %d", rec.Code)
	}
}

func TestTaskEndpoints_CrossUser(t *testing.T) {
	mux := newTestServer()
	alice := registerAndLogin(t, mux, "Alice", "alice@example.com")
	bob := registerAndLogin(t, mux, "Bob", "bob@example.com")

	rec := doRequest(t, mux, http.MethodPost, "/api/tasks", alice, map[string]interface{}{
		"title": "private",
	})
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &created)

	var bobTasks []struct {
		ID string `json:"id"`
	}
	decodeBody(t, doRequest(t, mux, http.MethodGet, "/api/tasks", bob, nil), &bobTasks)
	if len(bobTasks) != 0 {
		t.Errorf("expected Bob to see no tasks, got %d", len(bobTasks))
	}

	rec = doRequest(t, mux, http.MethodDelete, "/api/tasks/"+created.ID, bob, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404 deleting another user's task, got %d", rec.Code)
	}
}

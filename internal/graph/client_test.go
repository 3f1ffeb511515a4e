package graph

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"tasklist-web/internal/config"
)

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// newTestService serves canned GraphQL data keyed by operation name and
// records the last request for assertions.
func newTestService(t *testing.T, data map[string]any) (*Service, *gqlRequest, *http.Header) {
	t.Helper()

	lastReq := &gqlRequest{}
	lastHeader := &http.Header{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*lastHeader = r.Header.Clone()

		if err := json.NewDecoder(r.Body).Decode(lastReq); err != nil {
			t.Fatalf("failed to decode graphql request: %v", err)
		}

		for op, payload := range data {
			if strings.Contains(lastReq.Query, op) {
				_ = json.NewEncoder(w).Encode(map[string]any{"data": payload})
				return
			}
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]string{{"message": "not signed in"}},
		})
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(config.GraphQLConfig{URL: srv.URL}, logger), lastReq, lastHeader
}

func staticCookie(v string) func() string {
	return func() string { return v }
}

func TestMe(t *testing.T) {
	svc, _, header := newTestService(t, map[string]any{
		"me": map[string]any{"me": map[string]string{"id": "u1", "name": "Ada"}},
	})

	user, err := svc.WithCookieSource(staticCookie("abc")).Me(context.Background())
	if err != nil {
		t.Fatalf("Me returned error: %v", err)
	}

	if user.ID != "u1" || user.Name != "Ada" {
		t.Errorf("unexpected user %+v", user)
	}

	if got := header.Get("Cookie"); got != "__session=abc" {
		t.Errorf("expected session cookie forwarded, got %q", got)
	}
}

func TestMe_NoCookieHeaderWhenSignedOut(t *testing.T) {
	svc, _, header := newTestService(t, map[string]any{
		"me": map[string]any{"me": map[string]string{"id": "u1", "name": "Ada"}},
	})

	if _, err := svc.WithCookieSource(staticCookie("")).Me(context.Background()); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}

	if got := header.Get("Cookie"); got != "" {
		t.Errorf("expected no cookie header, got %q", got)
	}
}

func TestMe_GraphQLError(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	if _, err := svc.WithCookieSource(staticCookie("abc")).Me(context.Background()); err == nil {
		t.Fatal("expected error from graphql error response")
	}
}

func TestTask(t *testing.T) {
	svc, lastReq, _ := newTestService(t, map[string]any{
		"query task": map[string]any{"task": map[string]any{
			"id": "t1", "name": "groceries", "body": "milk", "tags": []string{"errand"},
		}},
	})

	task, err := svc.WithCookieSource(staticCookie("abc")).Task(context.Background(), "t1")
	if err != nil {
		t.Fatalf("Task returned error: %v", err)
	}

	if task.Name != "groceries" || len(task.Tags) != 1 {
		t.Errorf("unexpected task %+v", task)
	}
	if lastReq.Variables["taskId"] != "t1" {
		t.Errorf("expected taskId variable, got %v", lastReq.Variables)
	}
}

func TestTasksByCreator(t *testing.T) {
	svc, lastReq, _ := newTestService(t, map[string]any{
		"tasksByCreator": map[string]any{"tasksByCreator": []map[string]any{
			{"id": "t1", "name": "a", "body": "", "tags": []string{}},
			{"id": "t2", "name": "b", "body": "", "tags": []string{}},
		}},
	})

	tasks, err := svc.WithCookieSource(staticCookie("abc")).TasksByCreator(context.Background(), "u1")
	if err != nil {
		t.Fatalf("TasksByCreator returned error: %v", err)
	}

	if len(tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(tasks))
	}
	if lastReq.Variables["creatorUserId"] != "u1" {
		t.Errorf("expected creatorUserId variable, got %v", lastReq.Variables)
	}
}

func TestCreateTask(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]any{
		"createTask": map[string]any{"createTask": "t9"},
	})

	id, err := svc.WithCookieSource(staticCookie("abc")).CreateTask(context.Background())
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}
	if id != "t9" {
		t.Errorf("expected new task id t9, got %q", id)
	}
}

func TestTaskMutations(t *testing.T) {
	svc, lastReq, _ := newTestService(t, map[string]any{
		"setTaskName":   map[string]any{"setTaskName": true},
		"setTaskBody":   map[string]any{"setTaskBody": true},
		"addTaskTag":    map[string]any{"addTaskTag": true},
		"removeTaskTag": map[string]any{"removeTaskTag": true},
		"deleteTask":    map[string]any{"deleteTask": true},
		"setUserName":   map[string]any{"setUserName": true},
	})
	client := svc.WithCookieSource(staticCookie("abc"))
	ctx := context.Background()

	if err := client.SetTaskName(ctx, "t1", "new name"); err != nil {
		t.Errorf("SetTaskName returned error: %v", err)
	}
	if lastReq.Variables["newName"] != "new name" {
		t.Errorf("expected newName variable, got %v", lastReq.Variables)
	}

	if err := client.SetTaskBody(ctx, "t1", "new body"); err != nil {
		t.Errorf("SetTaskBody returned error: %v", err)
	}
	if err := client.AddTaskTag(ctx, "t1", "urgent"); err != nil {
		t.Errorf("AddTaskTag returned error: %v", err)
	}
	if err := client.RemoveTaskTag(ctx, "t1", "urgent"); err != nil {
		t.Errorf("RemoveTaskTag returned error: %v", err)
	}
	if err := client.DeleteTask(ctx, "t1"); err != nil {
		t.Errorf("DeleteTask returned error: %v", err)
	}
	if err := client.SetUserName(ctx, "Ada L"); err != nil {
		t.Errorf("SetUserName returned error: %v", err)
	}
}

// Package graph is the typed client for the backend GraphQL API, mirroring
// the operations of the generated SDK the web app consumes. The session
// composable itself only depends on Me; the task handlers use the rest.
package graph

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"tasklist-web/internal/config"
	"tasklist-web/internal/metrics"

	"github.com/machinebox/graphql"
)

//go:generate mockgen -source=client.go -destination=../mocks/graph.go -package=mocks

// Client is the typed operation surface, bound to one visitor's session
// cookie. Obtain one from Service.WithCookieSource.
type Client interface {
	Me(ctx context.Context) (*User, error)
	Task(ctx context.Context, taskID string) (*Task, error)
	TasksByCreator(ctx context.Context, creatorUserID string) ([]Task, error)
	CreateTask(ctx context.Context) (string, error)
	SetTaskName(ctx context.Context, taskID, newName string) error
	SetTaskBody(ctx context.Context, taskID, newBody string) error
	AddTaskTag(ctx context.Context, taskID, tag string) error
	RemoveTaskTag(ctx context.Context, taskID, tag string) error
	DeleteTask(ctx context.Context, taskID string) error
	SetUserName(ctx context.Context, newName string) error
}

// Service holds the shared transport. It is safe for concurrent use.
type Service struct {
	client *graphql.Client
	logger *slog.Logger
}

func NewService(cfg config.GraphQLConfig, logger *slog.Logger) *Service {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	return &Service{
		client: graphql.NewClient(cfg.URL, graphql.WithHTTPClient(httpClient)),
		logger: logger,
	}
}

// WithCookieSource binds the service to a visitor. The cookie source is read
// per operation, so a cookie replaced mid-request (right after the login
// exchange) is picked up by the very next call.
func (s *Service) WithCookieSource(cookie func() string) Client {
	return &boundClient{svc: s, cookie: cookie}
}

type boundClient struct {
	svc    *Service
	cookie func() string
}

const (
	taskFields = `
fragment TaskFields on Task {
  id
  name
  body
  tags
}`

	meDocument = `
query me {
  me {
    id
    name
  }
}`

	taskDocument = `
query task($taskId: ID!) {
  task(taskId: $taskId) {
    ...TaskFields
  }
}` + taskFields

	tasksByCreatorDocument = `
query tasksByCreator($creatorUserId: ID!) {
  tasksByCreator(userId: $creatorUserId) {
    ...TaskFields
  }
}` + taskFields

	createTaskDocument = `
mutation createTask {
  createTask
}`

	setTaskNameDocument = `
mutation setTaskName($taskId: ID!, $newName: String!) {
  setTaskName(taskId: $taskId, name: $newName)
}`

	setTaskBodyDocument = `
mutation setTaskBody($taskId: ID!, $newBody: String!) {
  setTaskBody(taskId: $taskId, body: $newBody)
}`

	addTaskTagDocument = `
mutation addTaskTag($taskId: ID!, $tag: String!) {
  addTaskTag(taskId: $taskId, tag: $tag)
}`

	removeTaskTagDocument = `
mutation removeTaskTag($taskId: ID!, $tag: String!) {
  removeTaskTag(taskId: $taskId, tag: $tag)
}`

	deleteTaskDocument = `
mutation deleteTask($taskId: ID!) {
  deleteTask(taskId: $taskId)
}`

	setUserNameDocument = `
mutation setUserName($newName: String!) {
  setUserName(name: $newName)
}`
)

func (c *boundClient) run(ctx context.Context, operation string, req *graphql.Request, out any) error {
	if cookie := c.cookie(); cookie != "" {
		req.Header.Set("Cookie", fmt.Sprintf("__session=%s", cookie))
	}

	err := c.svc.client.Run(ctx, req, out)
	if err != nil {
		metrics.GraphQLRequestsTotal.WithLabelValues(operation, metrics.OutcomeFailure).Inc()
		return fmt.Errorf("graphql %s failed: %w", operation, err)
	}

	metrics.GraphQLRequestsTotal.WithLabelValues(operation, metrics.OutcomeSuccess).Inc()
	return nil
}

func (c *boundClient) Me(ctx context.Context) (*User, error) {
	var resp struct {
		Me User `json:"me"`
	}

	if err := c.run(ctx, "me", graphql.NewRequest(meDocument), &resp); err != nil {
		return nil, err
	}

	return &resp.Me, nil
}

func (c *boundClient) Task(ctx context.Context, taskID string) (*Task, error) {
	req := graphql.NewRequest(taskDocument)
	req.Var("taskId", taskID)

	var resp struct {
		Task Task `json:"task"`
	}

	if err := c.run(ctx, "task", req, &resp); err != nil {
		return nil, err
	}

	return &resp.Task, nil
}

func (c *boundClient) TasksByCreator(ctx context.Context, creatorUserID string) ([]Task, error) {
	req := graphql.NewRequest(tasksByCreatorDocument)
	req.Var("creatorUserId", creatorUserID)

	var resp struct {
		TasksByCreator []Task `json:"tasksByCreator"`
	}

	if err := c.run(ctx, "tasksByCreator", req, &resp); err != nil {
		return nil, err
	}

	return resp.TasksByCreator, nil
}

func (c *boundClient) CreateTask(ctx context.Context) (string, error) {
	var resp struct {
		CreateTask string `json:"createTask"`
	}

	if err := c.run(ctx, "createTask", graphql.NewRequest(createTaskDocument), &resp); err != nil {
		return "", err
	}

	return resp.CreateTask, nil
}

func (c *boundClient) SetTaskName(ctx context.Context, taskID, newName string) error {
	req := graphql.NewRequest(setTaskNameDocument)
	req.Var("taskId", taskID)
	req.Var("newName", newName)

	return c.run(ctx, "setTaskName", req, &struct{}{})
}

func (c *boundClient) SetTaskBody(ctx context.Context, taskID, newBody string) error {
	req := graphql.NewRequest(setTaskBodyDocument)
	req.Var("taskId", taskID)
	req.Var("newBody", newBody)

	return c.run(ctx, "setTaskBody", req, &struct{}{})
}

func (c *boundClient) AddTaskTag(ctx context.Context, taskID, tag string) error {
	req := graphql.NewRequest(addTaskTagDocument)
	req.Var("taskId", taskID)
	req.Var("tag", tag)

	return c.run(ctx, "addTaskTag", req, &struct{}{})
}

func (c *boundClient) RemoveTaskTag(ctx context.Context, taskID, tag string) error {
	req := graphql.NewRequest(removeTaskTagDocument)
	req.Var("taskId", taskID)
	req.Var("tag", tag)

	return c.run(ctx, "removeTaskTag", req, &struct{}{})
}

func (c *boundClient) DeleteTask(ctx context.Context, taskID string) error {
	req := graphql.NewRequest(deleteTaskDocument)
	req.Var("taskId", taskID)

	return c.run(ctx, "deleteTask", req, &struct{}{})
}

func (c *boundClient) SetUserName(ctx context.Context, newName string) error {
	req := graphql.NewRequest(setUserNameDocument)
	req.Var("newName", newName)

	return c.run(ctx, "setUserName", req, &struct{}{})
}

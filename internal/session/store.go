package session

import (
	"context"
	"sync"

	"tasklist-web/internal/authn"
	"tasklist-web/internal/graph"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks

// Store persists the composable's state for one rendering context: backed by
// the visitor session on the server, or by plain memory in a long-lived
// client. A nil UserInfo means "not signed in".
type Store interface {
	UserInfo(ctx context.Context) *authn.UserInfo
	SetUserInfo(ctx context.Context, info *authn.UserInfo)
	CurrentUser(ctx context.Context) *graph.User
	SetCurrentUser(ctx context.Context, user *graph.User)
	CSRFToken(ctx context.Context) string
	SetCSRFToken(ctx context.Context, token string)
}

// MemStore is the in-memory Store for long-lived clients and tests.
type MemStore struct {
	mu          sync.Mutex
	userInfo    *authn.UserInfo
	currentUser *graph.User
	csrfToken   string
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) UserInfo(_ context.Context) *authn.UserInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userInfo
}

func (m *MemStore) SetUserInfo(_ context.Context, info *authn.UserInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userInfo = info
}

func (m *MemStore) CurrentUser(_ context.Context) *graph.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentUser
}

func (m *MemStore) SetCurrentUser(_ context.Context, user *graph.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentUser = user
}

func (m *MemStore) CSRFToken(_ context.Context) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.csrfToken
}

func (m *MemStore) SetCSRFToken(_ context.Context, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.csrfToken = token
}

package handlers

import (
	"tasklist-web/internal/graph"
)

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type AuthStatusResponse struct {
	Authenticated bool        `json:"authenticated"`
	User          *graph.User `json:"user,omitempty"`
}

type SignInResponse struct {
	Status   string `json:"status"`
	Redirect string `json:"redirect,omitempty"`
}

type SetNameRequest struct {
	Name string `json:"name"`
}

type SetBodyRequest struct {
	Body string `json:"body"`
}

type TagRequest struct {
	Tag string `json:"tag"`
}

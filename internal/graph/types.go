package graph

// User is the richer profile served by the GraphQL API, distinct from the
// minimal authn.UserInfo snapshot the login exchange returns.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Task struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Body string   `json:"body"`
	Tags []string `json:"tags"`
}

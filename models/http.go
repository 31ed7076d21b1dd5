package models

// Request and response payloads exchanged over the HTTP API.
// Persisted entities (User, BucketList, Item) serialize themselves; the types
// here exist for bodies whose shape differs from any stored entity.

// RegisterRequest is the body of POST /api/v1.0/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/v1.0/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login. Expiration is the token
// lifetime in seconds.
type LoginResponse struct {
	Token      string `json:"token"`
	Expiration int64  `json:"expiration"`
}

// RegisterResponse echoes the username of a freshly created account.
type RegisterResponse struct {
	Username string `json:"username"`
}

// BucketListCreateRequest is the body of POST /api/v1.0/bucketlists.
// Description is a pointer so that an absent field can be told apart from an
// explicitly empty one: the field must be present, but may be empty.
type BucketListCreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// ItemCreateRequest is the body of POST /api/v1.0/bucketlists/{id}/items.
type ItemCreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      bool    `json:"status"`
}

// MessageResponse is returned by create and update operations. Location
// points at the canonical URL of the affected resource.
type MessageResponse struct {
	Message  string `json:"message"`
	Location string `json:"Location"`
}

// ErrorResponse is the uniform error payload: a short machine-matchable
// category plus a human-readable detail message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

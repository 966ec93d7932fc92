package models

// RegisterData is the payload of a registration request.
type RegisterData struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// LoginData is the payload of a login request.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the full registration request envelope.
type RegisterRequest struct {
	// Data carries the registration payload.
	Data RegisterData `json:"data"`

	// CSRFToken is the anti-forgery token supplied by the client. Required.
	CSRFToken string `json:"csrfToken"`

	// CorrelationID is an optional client-supplied request identifier echoed
	// back in the response meta block for end-to-end tracing.
	CorrelationID string `json:"correlationId,omitempty"`

	// Timestamp is an optional client-side timestamp (RFC 3339 string).
	Timestamp string `json:"timestamp,omitempty"`
}

// LoginRequest is the full login request envelope.
type LoginRequest struct {
	Data          LoginData `json:"data"`
	CSRFToken     string    `json:"csrfToken"`
	CorrelationID string    `json:"correlationId,omitempty"`
	Timestamp     string    `json:"timestamp,omitempty"`
}

// CreateTaskRequest is the envelope for task creation.
type CreateTaskRequest struct {
	Data          Task   `json:"data"`
	CSRFToken     string `json:"csrfToken"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// UpdateTaskRequest is the envelope for a partial task update.
type UpdateTaskRequest struct {
	Data          TaskUpdate `json:"data"`
	CSRFToken     string     `json:"csrfToken"`
	CorrelationID string     `json:"correlationId,omitempty"`
}

package models

import "time"

// APIVersion is the version string reported in every response meta block.
const APIVersion = "1.0.0"

// ResponseMeta is the trailing metadata block attached to every envelope.
type ResponseMeta struct {
	// Timestamp is the server time the response was produced (RFC 3339).
	Timestamp string `json:"timestamp"`

	// CorrelationID echoes the request's correlation identifier, when present.
	CorrelationID string `json:"correlationId,omitempty"`

	// Version is the API version string.
	Version string `json:"version"`
}

// Envelope is the uniform response shape of the HTTP API.
//
// Success responses carry Data; failure responses carry Errors with stable,
// user-presentable messages. Internal detail (stack traces, SQL text) never
// appears here.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []string     `json:"errors,omitempty"`
	Meta    ResponseMeta `json:"meta"`
}

// AuthResponseData is the Data payload of successful register/login responses.
type AuthResponseData struct {
	// Token is the compact signed session token.
	Token string `json:"token"`

	// User is the sanitized user record (no password hash).
	User User `json:"user"`
}

// TaskListResponseData is the Data payload of task list responses.
type TaskListResponseData struct {
	Tasks  []Task `json:"tasks"`
	Length int    `json:"length"`
}

// SuccessEnvelope builds a success envelope around data.
func SuccessEnvelope(data any, message, correlationID string) Envelope {
	return Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    newResponseMeta(correlationID),
	}
}

// ErrorEnvelope builds a failure envelope with the given stable messages.
func ErrorEnvelope(message string, errs []string, correlationID string) Envelope {
	return Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
		Meta:    newResponseMeta(correlationID),
	}
}

func newResponseMeta(correlationID string) ResponseMeta {
	return ResponseMeta{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		CorrelationID: correlationID,
		Version:       APIVersion,
	}
}

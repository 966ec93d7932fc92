package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/models"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs a [ServerAdapter] speaking the server's
// envelope-based REST API.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL := cfg.ServerURL
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	log.Debug().Str("baseURL", baseURL).Msg("http server adapter created")
	return &httpServerAdapter{client: cli, logger: log}, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, data models.RegisterData) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterRequest{
			Data:          data,
			CSRFToken:     uuid.NewString(),
			CorrelationID: uuid.NewString(),
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
		}).
		Post("/api/users/register")
	if err != nil {
		return models.Session{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return h.sessionFromResponse(resp.Body())
}

func (h *httpServerAdapter) Login(ctx context.Context, data models.LoginData) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{
			Data:          data,
			CSRFToken:     uuid.NewString(),
			CorrelationID: uuid.NewString(),
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
		}).
		Post("/api/users/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return h.sessionFromResponse(resp.Body())
}

// VerifySession issues a cheap authenticated request so the server can judge
// the stored token. A 401 maps to ErrUnauthorized.
func (h *httpServerAdapter) VerifySession(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/api/tasks/")
	if err != nil {
		return fmt.Errorf("verify session request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateTaskRequest{
			Data:          task,
			CSRFToken:     uuid.NewString(),
			CorrelationID: uuid.NewString(),
		}).
		Post("/api/tasks/")
	if err != nil {
		return models.Task{}, fmt.Errorf("create task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	var created models.Task
	if err = decodeEnvelopeData(resp.Body(), &created); err != nil {
		return models.Task{}, fmt.Errorf("decode create task response: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	req := h.authedRequest(ctx)
	if filter.Status != "" {
		req.SetQueryParam("status", string(filter.Status))
	}
	if filter.Priority != "" {
		req.SetQueryParam("priority", string(filter.Priority))
	}
	if filter.Category != "" {
		req.SetQueryParam("category", filter.Category)
	}
	if filter.Project != "" {
		req.SetQueryParam("project", filter.Project)
	}
	if filter.Search != "" {
		req.SetQueryParam("search", filter.Search)
	}

	resp, err := req.Get("/api/tasks/")
	if err != nil {
		return nil, fmt.Errorf("list tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.TaskListResponseData
	if err = decodeEnvelopeData(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode list tasks response: %w", err)
	}
	return list.Tasks, nil
}

func (h *httpServerAdapter) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateTaskRequest{
			Data:          update,
			CSRFToken:     uuid.NewString(),
			CorrelationID: uuid.NewString(),
		}).
		Patch("/api/tasks/" + update.ID)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	var updated models.Task
	if err = decodeEnvelopeData(resp.Body(), &updated); err != nil {
		return models.Task{}, fmt.Errorf("decode update task response: %w", err)
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteTask(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/tasks/" + id)
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// sessionFromResponse decodes a successful auth envelope and stores the
// returned token on the adapter.
func (h *httpServerAdapter) sessionFromResponse(body []byte) (models.Session, error) {
	var auth models.AuthResponseData
	if err := decodeEnvelopeData(body, &auth); err != nil {
		return models.Session{}, fmt.Errorf("decode auth response: %w", err)
	}
	if auth.Token == "" {
		return models.Session{}, fmt.Errorf("auth response carries no token")
	}

	h.SetToken(auth.Token)
	return models.Session{
		Token:   auth.Token,
		User:    auth.User,
		SavedAt: time.Now(),
	}, nil
}

// decodeEnvelopeData unmarshals the data field of a response envelope into out.
func decodeEnvelopeData(body []byte, out any) error {
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return err
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("response envelope carries no data")
	}
	return json.Unmarshal(env.Data, out)
}

package remote

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/config"
	"github.com/spec-kit/roster-service/internal/domain"
	apperrors "github.com/spec-kit/roster-service/pkg/util/errorutil"
)

// remoteUser is the wire shape of a /users entry. Only name and email are
// guaranteed; the rest is honoured when the server provides it.
type remoteUser struct {
	ID         json.Number `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       string      `json:"role,omitempty"`
	Department string      `json:"department,omitempty"`
	Salary     *float64    `json:"salary,omitempty"`
	CreatedAt  *time.Time  `json:"createdAt,omitempty"`
}

type createUserRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}

// HTTPSource talks to a REST users resource.
type HTTPSource struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewHTTPSource creates the resty-backed source.
func NewHTTPSource(cfg config.RemoteConfig, logger *zap.Logger) *HTTPSource {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout()).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPSource{httpClient: client, logger: logger}
}

// FetchAll lists every user.
func (s *HTTPSource) FetchAll(ctx context.Context) ([]RawRecord, error) {
	var users []remoteUser
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetResult(&users).
		Get("/users")
	if err := s.check("fetch_all", resp, err); err != nil {
		return nil, err
	}

	out := make([]RawRecord, 0, len(users))
	for _, u := range users {
		out = append(out, RawRecord{
			ID:         u.ID.String(),
			Name:       u.Name,
			Email:      u.Email,
			Role:       u.Role,
			Department: u.Department,
			Salary:     u.Salary,
			CreatedAt:  u.CreatedAt,
		})
	}
	s.logger.Debug("fetched users", zap.Int("count", len(out)))
	return out, nil
}

// Create posts fields and returns them under the server-assigned id, which
// may be empty when the server does not report one.
func (s *HTTPSource) Create(ctx context.Context, fields domain.EmployeeFields) (RawRecord, error) {
	var created remoteUser
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(createUserRequest{
			Name:       fields.Name,
			Email:      fields.Email,
			Role:       fields.Role,
			Department: fields.Department,
			Salary:     fields.Salary,
		}).
		SetResult(&created).
		Post("/users")
	if err := s.check("create", resp, err); err != nil {
		return RawRecord{}, err
	}
	return FromFields(created.ID.String(), fields), nil
}

// Delete removes the user with remoteID.
func (s *HTTPSource) Delete(ctx context.Context, remoteID string) error {
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetPathParam("id", remoteID).
		Delete("/users/{id}")
	return s.check("delete", resp, err)
}

func (s *HTTPSource) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		s.logger.Warn("remote call failed", zap.String("op", op), zap.Error(err))
		return &apperrors.NetworkError{Op: op, Err: err}
	}
	if resp.IsError() {
		s.logger.Warn("remote returned error status", zap.String("op", op), zap.Int("status_code", resp.StatusCode()))
		return &apperrors.HTTPError{Op: op, StatusCode: resp.StatusCode()}
	}
	return nil
}

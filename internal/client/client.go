// Package client - HTTP клиент API редактора расписания.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	resty "gopkg.in/resty.v1"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/usecase/dto"
)

const apiPrefix = "/api/v1"

// APIError - ошибка в формате {error:{code,message,details}}
type APIError struct {
	StatusCode int                    `json:"-"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

type successEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
}

type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetHostURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var (
		success successEnvelope
		failure errorEnvelope
	)

	req := c.http.R().
		SetContext(ctx).
		SetResult(&success).
		SetError(&failure)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, apiPrefix+path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		if failure.Error != nil {
			failure.Error.StatusCode = resp.StatusCode()
			return failure.Error
		}
		return &APIError{StatusCode: resp.StatusCode(), Code: "HTTP_ERROR", Message: resp.Status()}
	}

	if out == nil || len(success.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(success.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) Stations(ctx context.Context) ([]domain.Station, error) {
	var out []domain.Station
	err := c.do(ctx, http.MethodGet, "/stations", nil, &out)
	return out, err
}

func (c *Client) ListTrains(ctx context.Context, filter string) ([]domain.TrainSummary, error) {
	path := "/trains"
	if filter != "" {
		path += "?filter=" + url.QueryEscape(filter)
	}
	var out []domain.TrainSummary
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) GetTrain(ctx context.Context, trainID string) (*dto.TrainResponse, error) {
	var out dto.TrainResponse
	if err := c.do(ctx, http.MethodGet, "/trains/"+url.PathEscape(trainID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Consistency(ctx context.Context, trainID string) (*domain.ConsistencyReport, error) {
	var out domain.ConsistencyReport
	if err := c.do(ctx, http.MethodGet, "/trains/"+url.PathEscape(trainID)+"/consistency", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AnalyzeIdentifier(ctx context.Context, trainID string) (*domain.IdentifierAnalysis, error) {
	var out domain.IdentifierAnalysis
	if err := c.do(ctx, http.MethodGet, "/identifiers/"+url.PathEscape(trainID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Templates(ctx context.Context) ([]domain.SectionTemplate, error) {
	var out []domain.SectionTemplate
	err := c.do(ctx, http.MethodGet, "/templates", nil, &out)
	return out, err
}

func (c *Client) Autofill(ctx context.Context, req dto.AutofillRequest) (*dto.RowsResponse, error) {
	var out dto.RowsResponse
	if err := c.do(ctx, http.MethodPost, "/rules/autofill", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Validate(ctx context.Context, req dto.ValidateRequest) (*dto.ValidationResponse, error) {
	var out dto.ValidationResponse
	if err := c.do(ctx, http.MethodPost, "/rules/validate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSession(ctx context.Context) (*dto.SessionResponse, error) {
	var out dto.SessionResponse
	if err := c.do(ctx, http.MethodPost, "/sessions", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Load(ctx context.Context, sessionID uuid.UUID, req dto.LoadRequest) (*dto.SessionResponse, error) {
	var out dto.SessionResponse
	if err := c.do(ctx, http.MethodPost, "/sessions/"+sessionID.String()+"/load", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Save(ctx context.Context, sessionID uuid.UUID, req dto.SaveRequest) (*dto.SyncResponse, error) {
	var out dto.SyncResponse
	if err := c.do(ctx, http.MethodPost, "/sessions/"+sessionID.String()+"/save", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTrain(ctx context.Context, sessionID uuid.UUID) (*dto.SyncResponse, error) {
	var out dto.SyncResponse
	if err := c.do(ctx, http.MethodDelete, "/sessions/"+sessionID.String()+"/train", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

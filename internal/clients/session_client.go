package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yoga-studio/front/internal/models"
)

const sessionPath = "/api/session"

type sessionClient struct {
	client *BaseClient
}

func NewSessionClient(client *BaseClient) SessionClient {
	return &sessionClient{client: client}
}

func (c *sessionClient) All(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	if err := c.client.doRequest(ctx, http.MethodGet, sessionPath, nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *sessionClient) Detail(ctx context.Context, id int64) (*models.Session, error) {
	var session models.Session
	if err := c.client.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s/%d", sessionPath, id), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *sessionClient) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	var created models.Session
	if err := c.client.doRequest(ctx, http.MethodPost, sessionPath, session, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *sessionClient) Update(ctx context.Context, id int64, session *models.Session) (*models.Session, error) {
	var updated models.Session
	if err := c.client.doRequest(ctx, http.MethodPut, fmt.Sprintf("%s/%d", sessionPath, id), session, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *sessionClient) Delete(ctx context.Context, id int64) error {
	return c.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", sessionPath, id), nil, nil)
}

func (c *sessionClient) Participate(ctx context.Context, id, userID int64) error {
	return c.client.doRequest(ctx, http.MethodPost, fmt.Sprintf("%s/%d/participate/%d", sessionPath, id, userID), nil, nil)
}

func (c *sessionClient) UnParticipate(ctx context.Context, id, userID int64) error {
	return c.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/%d/participate/%d", sessionPath, id, userID), nil, nil)
}

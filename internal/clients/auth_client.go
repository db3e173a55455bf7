package clients

import (
	"context"
	"net/http"

	"github.com/yoga-studio/front/internal/models"
)

const authPath = "/api/auth"

type authClient struct {
	client *BaseClient
}

func NewAuthClient(client *BaseClient) AuthClient {
	return &authClient{client: client}
}

func (c *authClient) Login(ctx context.Context, req models.LoginRequest) (*models.SessionInformation, error) {
	var info models.SessionInformation
	if err := c.client.doRequest(ctx, http.MethodPost, authPath+"/login", req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Register ignores the acknowledgement body; only the status matters.
func (c *authClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.client.doRequest(ctx, http.MethodPost, authPath+"/register", req, nil)
}

package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yoga-studio/front/internal/models"
)

const userPath = "/api/user"

type userClient struct {
	client *BaseClient
}

func NewUserClient(client *BaseClient) UserClient {
	return &userClient{client: client}
}

func (c *userClient) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.client.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s/%d", userPath, id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *userClient) Delete(ctx context.Context, id int64) error {
	return c.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", userPath, id), nil, nil)
}

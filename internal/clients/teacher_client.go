package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yoga-studio/front/internal/models"
)

const teacherPath = "/api/teacher"

type teacherClient struct {
	client *BaseClient
}

func NewTeacherClient(client *BaseClient) TeacherClient {
	return &teacherClient{client: client}
}

func (c *teacherClient) All(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := c.client.doRequest(ctx, http.MethodGet, teacherPath, nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (c *teacherClient) Detail(ctx context.Context, id int64) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := c.client.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s/%d", teacherPath, id), nil, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

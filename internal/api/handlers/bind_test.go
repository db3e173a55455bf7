package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoga-studio/front/internal/models"
)

func TestBindFormReportsUnparsableField(t *testing.T) {
	c, _ := postContext(url.Values{
		"name":        {"Une session"},
		"date":        {"2024-10-01"},
		"teacher_id":  {"abc"},
		"description": {"Une description"},
	})

	var form models.SessionForm
	verr := bindForm(c, &form)

	require.NotNil(t, verr)
	assert.Equal(t, map[string]string{"teacher_id": "numeric"}, verr.Fields)
	// fields after the bad one are still mapped
	assert.Equal(t, "Une session", form.Name)
	assert.Equal(t, "2024-10-01", form.Date)
	assert.Equal(t, "Une description", form.Description)
	assert.Zero(t, form.TeacherID)
}

func TestBindFormAcceptsValidForm(t *testing.T) {
	c, _ := postContext(url.Values{"name": {"Yoga"}, "teacher_id": {"2"}})

	var form models.SessionForm
	assert.Nil(t, bindForm(c, &form))
	assert.Equal(t, "Yoga", form.Name)
	assert.Equal(t, int64(2), form.TeacherID)
}

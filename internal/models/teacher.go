package models

import "strings"

type Teacher struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	CreatedAt *Timestamp `json:"createdAt,omitempty"`
	UpdatedAt *Timestamp `json:"updatedAt,omitempty"`
}

// DisplayName renders "Margot DELAHAYE".
func (t *Teacher) DisplayName() string {
	return t.FirstName + " " + strings.ToUpper(t.LastName)
}

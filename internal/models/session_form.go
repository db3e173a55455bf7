package models

import "fmt"

// SessionForm is the create/update form of a session.
type SessionForm struct {
	Name        string `form:"name" validate:"required"`
	Date        string `form:"date" validate:"required,datetime=2006-01-02"`
	TeacherID   int64  `form:"teacher_id" validate:"required,gt=0"`
	Description string `form:"description" validate:"required,max=2000"`
}

// SessionFormFrom pre-fills a form from an existing session.
func SessionFormFrom(s *Session) SessionForm {
	return SessionForm{
		Name:        s.Name,
		Date:        s.Date.DateString(),
		TeacherID:   s.TeacherID,
		Description: s.Description,
	}
}

// ToSession converts a validated form into the partial session sent to the API.
func (f SessionForm) ToSession() (*Session, error) {
	date, err := ParseTimestamp(f.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid session date: %w", err)
	}
	return &Session{
		Name:        f.Name,
		Date:        date,
		TeacherID:   f.TeacherID,
		Description: f.Description,
		Users:       []int64{},
	}, nil
}

package models

import "slices"

// Session is a bookable yoga class.
type Session struct {
	ID          int64      `json:"id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Date        Timestamp  `json:"date"`
	TeacherID   int64      `json:"teacher_id"`
	Users       []int64    `json:"users"`
	CreatedAt   *Timestamp `json:"createdAt,omitempty"`
	UpdatedAt   *Timestamp `json:"updatedAt,omitempty"`
}

// HasParticipant reports whether userID is in the participant set.
func (s *Session) HasParticipant(userID int64) bool {
	return slices.Contains(s.Users, userID)
}

// AddParticipant adds userID unless it is already present. It reports whether the set changed.
func (s *Session) AddParticipant(userID int64) bool {
	if s.HasParticipant(userID) {
		return false
	}
	s.Users = append(s.Users, userID)
	return true
}

// RemoveParticipant drops every occurrence of userID. It reports whether the set changed.
func (s *Session) RemoveParticipant(userID int64) bool {
	before := len(s.Users)
	s.Users = slices.DeleteFunc(s.Users, func(id int64) bool { return id == userID })
	return len(s.Users) != before
}

// Clone returns a deep copy so cached sessions never share the participant slice.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Users = slices.Clone(s.Users)
	if s.CreatedAt != nil {
		t := *s.CreatedAt
		c.CreatedAt = &t
	}
	if s.UpdatedAt != nil {
		t := *s.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}

// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	FirstName string    `json:"first_name" gorm:"not null;size:255"`
	LastName  string    `json:"last_name" gorm:"not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Opportunity IDs this user has opted into. The membership list lives on
	// the user row; opportunities never persist a per-viewer joined flag.
	JoinedEvents StringSlice `json:"joined_events" gorm:"type:json"`
}

// DisplayName returns the name shown in organizer lists
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// HasJoined reports whether the user has joined the given opportunity
func (u *User) HasJoined(opportunityID string) bool {
	return u.JoinedEvents.Contains(opportunityID)
}

// JoinEvent appends an opportunity ID to the joined-events list.
// Joining an already-joined opportunity is a no-op; returns false in that case.
func (u *User) JoinEvent(opportunityID string) bool {
	if u.HasJoined(opportunityID) {
		return false
	}
	u.JoinedEvents = append(u.JoinedEvents, opportunityID)
	return true
}

// LeaveEvent removes an opportunity ID from the joined-events list.
// Returns false when the user never joined it.
func (u *User) LeaveEvent(opportunityID string) bool {
	for i, id := range u.JoinedEvents {
		if id == opportunityID {
			u.JoinedEvents = append(u.JoinedEvents[:i], u.JoinedEvents[i+1:]...)
			return true
		}
	}
	return false
}

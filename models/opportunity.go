// File: /models/opportunity.go
package models

import (
	"time"
)

// Placeholder values applied when a create request leaves a field empty
const (
	DefaultTitle       = "[Title]"
	DefaultDescription = "[Description]"
	DefaultOrganizer   = "[Organizer]"
	DefaultImageURL    = "/img/placeholder.jpg"
	DefaultZipCode     = 12345
)

type Opportunity struct {
	ID          string      `json:"id" gorm:"primaryKey;size:191"`
	Title       string      `json:"title" gorm:"not null;size:255"`
	Description string      `json:"description" gorm:"not null;type:text"`
	EventBegin  time.Time   `json:"event_begin" gorm:"not null"`
	EventEnd    time.Time   `json:"event_end" gorm:"not null"`
	ZipCode     int         `json:"zip_code" gorm:"not null;default:12345"`
	CreatedBy   string      `json:"created_by" gorm:"not null;size:191"`
	Organizers  StringSlice `json:"organizers" gorm:"type:json"`
	ImageURL    string      `json:"image_url" gorm:"size:500"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Derived per viewer from the user's joined-events list, never persisted
	Joined bool `json:"joined" gorm:"-"`

	// Formatted for display, filled in by Decorate
	DateStr      string `json:"date" gorm:"-"`
	StartTimeStr string `json:"start_time" gorm:"-"`
	EndTimeStr   string `json:"end_time" gorm:"-"`
}

// NewOpportunity builds an opportunity with placeholder defaults for any
// missing field. Start and end fall back to the current time when zero.
func NewOpportunity(title, description string, begin, end time.Time, organizers []string, imageURL string, zipCode int) *Opportunity {
	now := time.Now()

	if title == "" {
		title = DefaultTitle
	}
	if description == "" {
		description = DefaultDescription
	}
	if begin.IsZero() {
		begin = now
	}
	if end.IsZero() {
		end = now
	}
	if len(organizers) == 0 {
		organizers = []string{DefaultOrganizer}
	}
	if imageURL == "" {
		imageURL = DefaultImageURL
	}
	if zipCode == 0 {
		zipCode = DefaultZipCode
	}

	o := &Opportunity{
		Title:       title,
		Description: description,
		EventBegin:  begin,
		EventEnd:    end,
		ZipCode:     zipCode,
		Organizers:  StringSlice(organizers),
		ImageURL:    imageURL,
	}
	o.Decorate()

	return o
}

// IsActive reports whether the current time falls inside [begin, end)
func (o *Opportunity) IsActive() bool {
	now := time.Now()
	return !now.Before(o.EventBegin) && now.Before(o.EventEnd)
}

// IsExpired reports whether the opportunity's end has passed
func (o *Opportunity) IsExpired() bool {
	return !time.Now().Before(o.EventEnd)
}

// Decorate fills the formatted date and time strings from the event window
func (o *Opportunity) Decorate() {
	o.DateStr = o.EventBegin.Format("1/2/2006")
	o.StartTimeStr = o.EventBegin.Format("3:04 PM")
	o.EndTimeStr = o.EventEnd.Format("3:04 PM")
}

// File: /models/opportunity_test.go
package models

import (
	"testing"
	"time"
)

func TestNewOpportunity_Defaults(t *testing.T) {
	o := NewOpportunity("", "", time.Time{}, time.Time{}, nil, "", 0)

	if o.Title != DefaultTitle {
		t.Errorf("expected %q, got %q", DefaultTitle, o.Title)
	}
	if o.Description != DefaultDescription {
		t.Errorf("expected %q, got %q", DefaultDescription, o.Description)
	}
	if o.ZipCode != DefaultZipCode {
		t.Errorf("expected %d, got %d", DefaultZipCode, o.ZipCode)
	}
	if len(o.Organizers) != 1 || o.Organizers[0] != DefaultOrganizer {
		t.Errorf("expected placeholder organizer, got %v", o.Organizers)
	}
	if o.ImageURL != DefaultImageURL {
		t.Errorf("expected %q, got %q", DefaultImageURL, o.ImageURL)
	}
	if o.EventBegin.IsZero() || o.EventEnd.IsZero() {
		t.Error("expected start/end to default to now")
	}
}

func TestNewOpportunity_KeepsProvidedValues(t *testing.T) {
	begin := time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC)
	end := begin.Add(3 * time.Hour)

	o := NewOpportunity("River Cleanup", "Bring gloves.", begin, end, []string{"Ada Lovelace"}, "/img/river.jpg", 65201)

	if o.Title != "River Cleanup" || o.ZipCode != 65201 {
		t.Fatalf("provided values overwritten: %+v", o)
	}
	if !o.EventBegin.Equal(begin) || !o.EventEnd.Equal(end) {
		t.Fatal("event window overwritten")
	}
}

func TestOpportunity_Decorate(t *testing.T) {
	begin := time.Date(2026, 10, 3, 9, 30, 0, 0, time.UTC)
	end := time.Date(2026, 10, 3, 13, 0, 0, 0, time.UTC)

	o := NewOpportunity("x", "y", begin, end, []string{"z"}, "", 1)

	if o.DateStr != "10/3/2026" {
		t.Errorf("unexpected date string: %q", o.DateStr)
	}
	if o.StartTimeStr != "9:30 AM" {
		t.Errorf("unexpected start time string: %q", o.StartTimeStr)
	}
	if o.EndTimeStr != "1:00 PM" {
		t.Errorf("unexpected end time string: %q", o.EndTimeStr)
	}
}

func TestOpportunity_IsActive(t *testing.T) {
	now := time.Now()

	active := &Opportunity{EventBegin: now.Add(-time.Hour), EventEnd: now.Add(time.Hour)}
	if !active.IsActive() {
		t.Error("expected in-window opportunity to be active")
	}

	upcoming := &Opportunity{EventBegin: now.Add(time.Hour), EventEnd: now.Add(2 * time.Hour)}
	if upcoming.IsActive() {
		t.Error("expected future opportunity to be inactive")
	}

	past := &Opportunity{EventBegin: now.Add(-2 * time.Hour), EventEnd: now.Add(-time.Hour)}
	if past.IsActive() {
		t.Error("expected past opportunity to be inactive")
	}
}

func TestOpportunity_IsExpired(t *testing.T) {
	now := time.Now()

	past := &Opportunity{EventBegin: now.Add(-2 * time.Hour), EventEnd: now.Add(-time.Hour)}
	if !past.IsExpired() {
		t.Error("expected past opportunity to be expired")
	}

	upcoming := &Opportunity{EventBegin: now.Add(time.Hour), EventEnd: now.Add(2 * time.Hour)}
	if upcoming.IsExpired() {
		t.Error("expected future opportunity to not be expired")
	}
}

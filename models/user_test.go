// File: /models/user_test.go
package models

import (
	"testing"
)

func TestJoinEvent_Idempotent(t *testing.T) {
	u := &User{ID: "u1"}

	if !u.JoinEvent("opp-1") {
		t.Fatal("first join should report a change")
	}
	if u.JoinEvent("opp-1") {
		t.Fatal("second join should be a no-op")
	}

	if len(u.JoinedEvents) != 1 {
		t.Fatalf("expected exactly one entry, got %v", u.JoinedEvents)
	}
	if !u.HasJoined("opp-1") {
		t.Fatal("expected membership after join")
	}
}

func TestLeaveEvent(t *testing.T) {
	u := &User{ID: "u1", JoinedEvents: StringSlice{"opp-1", "opp-2", "opp-3"}}

	if !u.LeaveEvent("opp-2") {
		t.Fatal("leave of a joined opportunity should report a change")
	}
	if u.HasJoined("opp-2") {
		t.Fatal("membership should be gone after leave")
	}
	if len(u.JoinedEvents) != 2 {
		t.Fatalf("expected two remaining entries, got %v", u.JoinedEvents)
	}

	if u.LeaveEvent("opp-2") {
		t.Fatal("second leave should be a no-op")
	}
}

func TestLeaveEvent_NeverJoined(t *testing.T) {
	u := &User{ID: "u1"}
	if u.LeaveEvent("opp-1") {
		t.Fatal("leaving an unjoined opportunity should be a no-op")
	}
}

func TestDisplayName(t *testing.T) {
	u := &User{FirstName: "Ada", LastName: "Lovelace"}
	if got := u.DisplayName(); got != "Ada Lovelace" {
		t.Fatalf("unexpected display name: %q", got)
	}
}

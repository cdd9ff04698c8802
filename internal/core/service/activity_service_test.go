package service

import (
	"context"
	"testing"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

func TestRecord_AssignsIDAndTimestamp(t *testing.T) {
	repo := &memActivityRepo{}
	svc := NewActivityService(repo, testLogger())

	actor := int64(7)
	svc.Record(context.Background(), ports.ActivityEntry{
		ActorID:    &actor,
		EntityType: domain.EntityUser,
		EntityID:   "7",
		Action:     domain.ActionSignIn,
		IPAddress:  "203.0.113.9",
	})

	entries, err := svc.Recent(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.ID == "" || e.Timestamp.IsZero() {
		t.Fatal("expected ID and Timestamp to be assigned")
	}
	if e.Action != domain.ActionSignIn || e.IPAddress != "203.0.113.9" {
		t.Fatalf("entry fields lost: %+v", e)
	}
}

func TestRecord_SwallowsStoreErrors(t *testing.T) {
	repo := &memActivityRepo{failing: true}
	svc := NewActivityService(repo, testLogger())

	// Must not panic or surface the failure.
	svc.Record(context.Background(), ports.ActivityEntry{
		EntityType: domain.EntityUser,
		EntityID:   "1",
		Action:     domain.ActionSignUp,
	})

	entries, err := svc.Recent(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestForUserAndForEntity(t *testing.T) {
	repo := &memActivityRepo{}
	svc := NewActivityService(repo, testLogger())

	alice, bob := int64(1), int64(2)
	svc.Record(context.Background(), ports.ActivityEntry{ActorID: &alice, EntityType: domain.EntityJob, EntityID: "job-1", Action: domain.ActionJobPosted})
	svc.Record(context.Background(), ports.ActivityEntry{ActorID: &alice, EntityType: domain.EntityJob, EntityID: "job-1", Action: domain.ActionJobClosed})
	svc.Record(context.Background(), ports.ActivityEntry{ActorID: &bob, EntityType: domain.EntityJobSeeker, EntityID: "seeker-1", Action: domain.ActionJobSeekerAdded})

	byAlice, err := svc.ForUser(context.Background(), alice, 0, 0)
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(byAlice) != 2 {
		t.Fatalf("expected 2 entries for alice, got %d", len(byAlice))
	}

	byJob, err := svc.ForEntity(context.Background(), domain.EntityJob, "job-1", 0, 0)
	if err != nil {
		t.Fatalf("ForEntity: %v", err)
	}
	if len(byJob) != 2 {
		t.Fatalf("expected 2 entries for job-1, got %d", len(byJob))
	}

	bySeeker, err := svc.ForEntity(context.Background(), domain.EntityJobSeeker, "seeker-1", 0, 0)
	if err != nil {
		t.Fatalf("ForEntity: %v", err)
	}
	if len(bySeeker) != 1 {
		t.Fatalf("expected 1 entry for seeker-1, got %d", len(bySeeker))
	}
}

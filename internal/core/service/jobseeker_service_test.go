package service

import (
	"context"
	"errors"
	"testing"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
)

func seedConsultant(t *testing.T, users *memUserRepo) *domain.User {
	t.Helper()
	user, err := users.Create(context.Background(), &domain.User{
		Name:  "Consultant",
		Email: "consultant@example.com",
		Role:  domain.RoleMember,
	})
	if err != nil {
		t.Fatalf("seed consultant: %v", err)
	}
	return user
}

func createSeekerInput(consultantID int64, name string) ports.CreateJobSeekerInput {
	return ports.CreateJobSeekerInput{
		ConsultantID: consultantID,
		Name:         name,
		Email:        "candidate@example.com",
		Skills:       []string{"Go", "Kubernetes"},
		Experience:   5,
		Location:     "Amsterdam",
	}
}

func TestJobSeekerCreate_RequiresExistingConsultant(t *testing.T) {
	users := newMemUserRepo()
	svc := NewJobSeekerService(newMemJobSeekerRepo(), users, testLogger())
	consultant := seedConsultant(t, users)

	seeker, err := svc.Create(context.Background(), createSeekerInput(consultant.ID, "Grace"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if seeker.ID == "" || seeker.AddedAt.IsZero() {
		t.Fatal("expected ID and AddedAt to be set")
	}

	if _, err := svc.Create(context.Background(), createSeekerInput(999, "Orphan")); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for unknown consultant, got %v", err)
	}
}

func TestJobSeekerCreate_RejectsDeactivatedConsultant(t *testing.T) {
	users := newMemUserRepo()
	svc := NewJobSeekerService(newMemJobSeekerRepo(), users, testLogger())
	consultant := seedConsultant(t, users)

	if err := users.SoftDelete(context.Background(), consultant.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	if _, err := svc.Create(context.Background(), createSeekerInput(consultant.ID, "Grace")); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for deactivated consultant, got %v", err)
	}
}

func TestJobSeekerForConsultant(t *testing.T) {
	users := newMemUserRepo()
	svc := NewJobSeekerService(newMemJobSeekerRepo(), users, testLogger())
	consultant := seedConsultant(t, users)

	if _, err := svc.Create(context.Background(), createSeekerInput(consultant.ID, "Grace")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), createSeekerInput(consultant.ID, "Alan")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	seekers, err := svc.ForConsultant(context.Background(), consultant.ID, 0, 0)
	if err != nil {
		t.Fatalf("ForConsultant: %v", err)
	}
	if len(seekers) != 2 {
		t.Fatalf("expected 2 seekers, got %d", len(seekers))
	}

	if _, err := svc.ForConsultant(context.Background(), 999, 0, 0); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestJobSeekerSearch(t *testing.T) {
	users := newMemUserRepo()
	svc := NewJobSeekerService(newMemJobSeekerRepo(), users, testLogger())
	consultant := seedConsultant(t, users)

	senior := createSeekerInput(consultant.ID, "Senior")
	senior.Experience = 8
	if _, err := svc.Create(context.Background(), senior); err != nil {
		t.Fatalf("Create: %v", err)
	}
	junior := createSeekerInput(consultant.ID, "Junior")
	junior.Experience = 1
	if _, err := svc.Create(context.Background(), junior); err != nil {
		t.Fatalf("Create: %v", err)
	}

	minExp := 5
	results, err := svc.Search(context.Background(), ports.JobSeekerSearch{MinExperience: &minExp})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Senior" {
		t.Fatalf("expected the senior candidate only, got %d results", len(results))
	}

	results, err = svc.Search(context.Background(), ports.JobSeekerSearch{Skills: []string{"kubernetes"}})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("case-insensitive skill match failed: got %d results", len(results))
	}
}

func TestJobSeekerUpdateAndDelete(t *testing.T) {
	users := newMemUserRepo()
	svc := NewJobSeekerService(newMemJobSeekerRepo(), users, testLogger())
	consultant := seedConsultant(t, users)

	seeker, err := svc.Create(context.Background(), createSeekerInput(consultant.ID, "Grace"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	resume := "uploads/resumes/1/grace.pdf"
	updated, err := svc.Update(context.Background(), seeker.ID, ports.JobSeekerUpdate{Resume: &resume})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Resume != resume {
		t.Fatalf("resume not updated: %q", updated.Resume)
	}

	if err := svc.Delete(context.Background(), seeker.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), seeker.ID); !errors.Is(err, domain.ErrJobSeekerNotFound) {
		t.Fatalf("expected ErrJobSeekerNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), seeker.ID); !errors.Is(err, domain.ErrJobSeekerNotFound) {
		t.Fatalf("expected ErrJobSeekerNotFound on second delete, got %v", err)
	}
}

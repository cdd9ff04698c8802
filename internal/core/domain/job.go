package domain

import (
	"errors"
	"time"
)

// JobStatus represents the lifecycle state of a job posting.
type JobStatus string

const (
	JobActive JobStatus = "active"
	JobClosed JobStatus = "closed"
)

var ErrJobNotFound = errors.New("job not found")

// Job is a posted position. Postings are public; mutation goes through the
// job service so closures and edits are activity-logged.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Salary      int       `json:"salary"`
	Type        string    `json:"type"`
	ContactMail string    `json:"email,omitempty"`
	Status      JobStatus `json:"status"`
	PostedAt    time.Time `json:"posted_date"`
	Deadline    time.Time `json:"deadline"`
}

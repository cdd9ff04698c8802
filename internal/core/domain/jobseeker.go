package domain

import (
	"errors"
	"time"
)

var ErrJobSeekerNotFound = errors.New("job seeker not found")

// JobSeeker is a candidate record managed by a consultant (the owning
// member user). Email and phone are unique across the platform.
type JobSeeker struct {
	ID           string    `json:"id"`
	ConsultantID int64     `json:"consultant_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Resume       string    `json:"resume"`
	Skills       []string  `json:"skills"`
	Experience   int       `json:"experience"`
	Education    string    `json:"education"`
	Location     string    `json:"location"`
	About        string    `json:"about"`
	AddedAt      time.Time `json:"added_date"`
}

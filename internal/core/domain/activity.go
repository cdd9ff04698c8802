package domain

import "time"

// EntityType identifies what kind of record an activity entry refers to.
type EntityType string

const (
	EntityUser      EntityType = "user"
	EntityJobSeeker EntityType = "jobseeker"
	EntityJob       EntityType = "job"
)

// ActivityAction is the closed set of auditable actions.
type ActivityAction string

const (
	ActionSignUp         ActivityAction = "SIGN_UP"
	ActionSignIn         ActivityAction = "SIGN_IN"
	ActionSignOut        ActivityAction = "SIGN_OUT"
	ActionUpdatePassword ActivityAction = "UPDATE_PASSWORD"
	ActionDeleteAccount  ActivityAction = "DELETE_ACCOUNT"
	ActionUpdateAccount  ActivityAction = "UPDATE_ACCOUNT"

	ActionJobSeekerAdded   ActivityAction = "JOB_SEEKER_ADDED"
	ActionJobSeekerUpdated ActivityAction = "JOB_SEEKER_UPDATED"
	ActionJobSeekerDeleted ActivityAction = "JOB_SEEKER_DELETED"
	ActionJobPosted        ActivityAction = "JOB_POSTED"
	ActionJobUpdated       ActivityAction = "JOB_UPDATED"
	ActionJobClosed        ActivityAction = "JOB_CLOSED"
)

// ActivityLog is one append-only audit entry. ActorID is the consultant who
// performed the action; nil for anonymous or system actions.
type ActivityLog struct {
	ID         string         `json:"id"`
	ActorID    *int64         `json:"consultant_id,omitempty"`
	EntityType EntityType     `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Action     ActivityAction `json:"action"`
	Details    string         `json:"details,omitempty"`
	IPAddress  string         `json:"ip_address,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

package constants

// ProjectStatus is the lifecycle state of a posted project.
type ProjectStatus string

const (
	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// KnownProjectStatuses is the set of values accepted on a status update.
var KnownProjectStatuses = map[ProjectStatus]bool{
	ProjectStatusOpen:       true,
	ProjectStatusInProgress: true,
	ProjectStatusCompleted:  true,
}

// CollabStatus is the state of a collaboration link.
type CollabStatus string

const (
	CollabStatusPending  CollabStatus = "pending"
	CollabStatusVerified CollabStatus = "verified"
	CollabStatusRejected CollabStatus = "rejected"
)

// ParticipantStatus is the membership state of a project participant.
type ParticipantStatus string

const (
	ParticipantStatusPending  ParticipantStatus = "pending"
	ParticipantStatusApproved ParticipantStatus = "approved"
)

package models

type UserRole string
type JobStatus string
type ApplicationStatus string

const (
	UserRoleCandidate UserRole = "candidate"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"

	JobStatusPending  JobStatus = "pending"
	JobStatusApproved JobStatus = "approved"
	// active and inactive exist on rows imported from the previous system;
	// no status-change operation assigns them, but active listings stay
	// publicly visible.
	JobStatusActive   JobStatus = "active"
	JobStatusRejected JobStatus = "rejected"
	JobStatusInactive JobStatus = "inactive"
	JobStatusClosed   JobStatus = "closed"

	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
)

// ValidRole reports whether role is one of the registered roles.
func ValidRole(role UserRole) bool {
	switch role {
	case UserRoleCandidate, UserRoleRecruiter, UserRoleAdmin:
		return true
	}
	return false
}

// ValidApplicationStatus reports whether status belongs to the fixed
// application status set. Transitions within the set are unrestricted.
func ValidApplicationStatus(status ApplicationStatus) bool {
	switch status {
	case ApplicationStatusApplied, ApplicationStatusReviewed,
		ApplicationStatusShortlisted, ApplicationStatusRejected,
		ApplicationStatusAccepted:
		return true
	}
	return false
}

// AdminJobStatuses is the set an admin may assign when moderating a job.
var AdminJobStatuses = map[JobStatus]bool{
	JobStatusApproved: true,
	JobStatusRejected: true,
}

// RecruiterJobStatuses is the set the owning recruiter may assign.
var RecruiterJobStatuses = map[JobStatus]bool{
	JobStatusApproved: true,
	JobStatusClosed:   true,
}

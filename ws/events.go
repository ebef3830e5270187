package ws

import "time"

// Event kinds pushed over the realtime channel.
const (
	EventJobPosted         = "job_posted"
	EventNewApplication    = "new_application"
	EventJobStatusUpdate   = "job_status_update"
	EventApplicationStatus = "application_status_update"
)

// Event is the wire shape for every server-originated push. Data carries
// the identifiers the client needs to refresh its view.
type Event struct {
	Kind      string            `json:"kind"`
	Message   string            `json:"message"`
	Data      map[string]string `json:"data,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewEvent stamps an event with the current time.
func NewEvent(kind, message string, data map[string]string) Event {
	return Event{
		Kind:      kind,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// Package events streams composer notifications (per-file upload outcomes,
// submit results) to the client over a websocket, one stream per composer
// session. Delivery is best-effort: a session without a listener simply drops
// its events, mirroring a dismissed toast.
package events

import "time"

type Type string

const (
	TypeUploadCompleted Type = "upload_completed"
	TypeUploadFailed    Type = "upload_failed"
	TypeSubmitAccepted  Type = "submit_accepted"
	TypeSubmitRejected  Type = "submit_rejected"
)

// Event is one notification for a composer session.
type Event struct {
	Type    Type      `json:"type"`
	File    string    `json:"file,omitempty"`
	URL     string    `json:"url,omitempty"`
	Message string    `json:"message,omitempty"`
	At      time.Time `json:"at"`
}

func UploadCompleted(file, url string) Event {
	return Event{Type: TypeUploadCompleted, File: file, URL: url, At: time.Now()}
}

func UploadFailed(file, message string) Event {
	return Event{Type: TypeUploadFailed, File: file, Message: message, At: time.Now()}
}

func SubmitAccepted() Event {
	return Event{Type: TypeSubmitAccepted, At: time.Now()}
}

func SubmitRejected(message string) Event {
	return Event{Type: TypeSubmitRejected, Message: message, At: time.Now()}
}

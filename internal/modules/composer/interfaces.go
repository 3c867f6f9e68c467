package composer

import (
	"context"
	"encoding/json"

	"rentify/internal/backend"
	"rentify/internal/modules/events"
	"rentify/internal/modules/uploads"
)

// BackendGateway is the slice of the listing API the composer needs.
type BackendGateway interface {
	Me(ctx context.Context, token string) (*backend.Profile, error)
	CreateListing(ctx context.Context, token string, payload any) (json.RawMessage, error)
}

// Notifier pushes progress events to anyone watching a session.
type Notifier interface {
	Publish(sessionID string, ev events.Event) bool
}

// ImagePipeline uploads a batch of files and reports per-file results.
type ImagePipeline interface {
	Process(ctx context.Context, token string, files []uploads.File, sink uploads.Sink, onResult func(uploads.Result)) []uploads.Result
}

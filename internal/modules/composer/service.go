package composer

import (
	"context"
	"encoding/json"
	"log"

	"rentify/internal/backend"
	"rentify/internal/modules/events"
	"rentify/internal/modules/uploads"
)

// Service drives the wizard: it owns the session store and talks to the
// listing backend on the user's behalf.
type Service struct {
	store    *Store
	backend  BackendGateway
	pipeline ImagePipeline
	notifier Notifier
}

func NewService(store *Store, gw BackendGateway, pipeline ImagePipeline, notifier Notifier) *Service {
	return &Service{
		store:    store,
		backend:  gw,
		pipeline: pipeline,
		notifier: notifier,
	}
}

// Open starts a fresh session. Contact fields left blank in the request are
// pre-filled from the user's profile; a profile fetch failure only costs the
// pre-fill, never the session.
func (s *Service) Open(ctx context.Context, userID, token string, req OpenRequest) *Session {
	name, phone := req.ContactName, req.ContactPhone

	if name == "" || phone == "" {
		profile, err := s.backend.Me(ctx, token)
		if err != nil {
			log.Printf("composer: profile pre-fill skipped for user %s: %v", userID, err)
		} else {
			if name == "" {
				name = profile.Name
			}
			if phone == "" {
				phone = profile.Phone
			}
		}
	}

	return s.store.Open(userID, token, NewDraft(name, phone))
}

// Get returns the caller's session.
func (s *Service) Get(id, userID string) (*Session, error) {
	return s.store.Get(id, userID)
}

// Authorize implements the event stream's session check.
func (s *Service) Authorize(id, userID string) error {
	return s.store.Authorize(id, userID)
}

// SetFields patches the draft.
func (s *Service) SetFields(id, userID string, fields map[string]any) (*Session, error) {
	sess, err := s.store.Get(id, userID)
	if err != nil {
		return nil, err
	}
	if err := sess.SetFields(fields); err != nil {
		return nil, err
	}
	return sess, nil
}

// Next tries to advance the wizard. A non-empty missing list means the
// current step's gate stayed shut and the step did not move.
func (s *Service) Next(id, userID string) (*Session, []string, error) {
	sess, err := s.store.Get(id, userID)
	if err != nil {
		return nil, nil, err
	}
	return sess, sess.GoNext(), nil
}

// Back moves the wizard one step back.
func (s *Service) Back(id, userID string) (*Session, error) {
	sess, err := s.store.Get(id, userID)
	if err != nil {
		return nil, err
	}
	sess.GoBack()
	return sess, nil
}

// UploadImages runs the batch through the pipeline. Accepted files upload
// concurrently and land in the draft as they finish; each outcome also goes
// out on the session's event stream.
func (s *Service) UploadImages(ctx context.Context, id, userID string, files []uploads.File) (*Session, []uploads.Result, error) {
	sess, err := s.store.Get(id, userID)
	if err != nil {
		return nil, nil, err
	}

	results := s.pipeline.Process(ctx, sess.Token(), files, sess, func(r uploads.Result) {
		if r.Failed() {
			s.notifier.Publish(id, events.UploadFailed(r.File, r.Err.Error()))
		} else {
			s.notifier.Publish(id, events.UploadCompleted(r.File, r.URL))
		}
	})
	return sess, results, nil
}

// RemoveImage drops one image from the draft by position.
func (s *Service) RemoveImage(id, userID string, index int) (*Session, error) {
	sess, err := s.store.Get(id, userID)
	if err != nil {
		return nil, err
	}
	if err := sess.RemoveImage(index); err != nil {
		return nil, err
	}
	return sess, nil
}

// Submit serializes the draft and posts it to the backend. On success the
// session is discarded; on any failure the draft survives untouched so the
// user can correct and resubmit. Only one submission per session runs at a
// time.
func (s *Service) Submit(ctx context.Context, id, userID string) (json.RawMessage, map[string]string, error) {
	sess, err := s.store.Get(id, userID)
	if err != nil {
		return nil, nil, err
	}
	if err := sess.BeginSubmit(); err != nil {
		return nil, nil, err
	}

	draft := sess.Draft()
	payload, fieldErrs := Serialize(&draft)
	if len(fieldErrs) > 0 {
		sess.EndSubmit()
		return nil, fieldErrs, nil
	}

	raw, err := s.backend.CreateListing(ctx, sess.Token(), payload)
	if err != nil {
		sess.EndSubmit()
		detail := backend.Detail(err, "Failed to create property")
		s.notifier.Publish(id, events.SubmitRejected(detail))
		return nil, nil, err
	}

	s.store.Delete(id)
	s.notifier.Publish(id, events.SubmitAccepted())
	return raw, nil, nil
}

// Abandon discards the caller's session and whatever it holds.
func (s *Service) Abandon(id, userID string) error {
	if _, err := s.store.Get(id, userID); err != nil {
		return err
	}
	s.store.Delete(id)
	return nil
}

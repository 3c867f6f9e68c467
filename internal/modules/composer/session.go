package composer

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"rentify/internal/schema"
)

// Session is one user's in-flight wizard. All mutation goes through the
// mutex; upload goroutines append image URLs concurrently with edits coming
// from the HTTP handlers.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time

	token string

	mu         sync.Mutex
	draft      PropertyDraft
	step       int
	submitting bool
	touchedAt  time.Time
}

func newSession(id, userID, token string, draft PropertyDraft) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		token:     token,
		draft:     draft,
		step:      MinStep,
		touchedAt: now,
	}
}

// Token returns the bearer token the session was opened with. Backend calls
// made on the user's behalf reuse it.
func (s *Session) Token() string { return s.token }

// Step returns the current wizard step.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Draft returns a deep copy of the current draft.
func (s *Session) Draft() PropertyDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.clone()
}

// SetFields applies the edits and stops at the first bad one, leaving
// earlier edits in place. Changing the category cascades: the property type
// resets to the new category's default so the pair can never disagree, then
// an explicit property_type in the same patch overrides the default. The
// plot flag follows the effective type.
func (s *Session) SetFields(fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = time.Now()

	for _, name := range fieldOrder(fields) {
		value := fields[name]

		// The original wizard constrains these through select options; an
		// API has to reject out-of-vocabulary values itself so the type
		// always belongs to the category's set.
		switch name {
		case "category":
			if v, ok := value.(string); ok && !schema.IsValidCategory(v) {
				return fmt.Errorf("%w: category %q", ErrFieldValue, v)
			}
		case "property_type":
			if v, ok := value.(string); ok && !schema.IsAllowedType(schema.Category(s.draft.Category), v) {
				return fmt.Errorf("%w: property_type %q for category %q", ErrFieldValue, v, s.draft.Category)
			}
		}

		if err := s.draft.applyField(name, value); err != nil {
			return err
		}
		if name == "category" {
			s.draft.PropertyType = schema.DefaultType(schema.Category(s.draft.Category))
		}
		if name == "category" || name == "property_type" {
			s.draft.IsPlot = schema.IsPlotType(s.draft.PropertyType)
		}
	}
	return nil
}

// fieldOrder makes a patch deterministic: the category lands before the
// property type so the cascade cannot clobber an explicit type, and the rest
// follow alphabetically.
func fieldOrder(fields map[string]any) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if name == "category" || name == "property_type" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	ordered := make([]string, 0, len(fields))
	if _, ok := fields["category"]; ok {
		ordered = append(ordered, "category")
	}
	if _, ok := fields["property_type"]; ok {
		ordered = append(ordered, "property_type")
	}
	return append(ordered, names...)
}

// GoNext advances one step if the current step's requirements hold. It
// returns the fields still missing; a nil slice means the step advanced.
func (s *Session) GoNext() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = time.Now()

	if missing := MissingFields(&s.draft, s.step); len(missing) > 0 {
		return missing
	}
	if s.step < MaxStep {
		s.step++
	}
	return nil
}

// GoBack moves one step back. All entered data stays intact.
func (s *Session) GoBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = time.Now()

	if s.step > MinStep {
		s.step--
	}
}

// AppendImage records a stored image URL. Called from upload goroutines as
// each transfer finishes, so order reflects completion, not selection.
func (s *Session) AppendImage(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = time.Now()
	s.draft.Images = append(s.draft.Images, url)
}

// RemoveImage drops the URL at the given position.
func (s *Session) RemoveImage(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = time.Now()

	if index < 0 || index >= len(s.draft.Images) {
		return ErrImageIndex
	}
	s.draft.Images = append(s.draft.Images[:index], s.draft.Images[index+1:]...)
	return nil
}

// BeginSubmit marks the session as submitting. A second call before
// EndSubmit fails, which is what keeps double-clicks to a single request.
func (s *Session) BeginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = time.Now()

	if s.submitting {
		return ErrSubmitInFlight
	}
	if s.step != MaxStep {
		return ErrNotFinalStep
	}
	s.submitting = true
	return nil
}

// EndSubmit clears the submitting flag after a failed attempt so the user
// can fix the draft and try again.
func (s *Session) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.touchedAt)
}

func (s *Session) isSubmitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

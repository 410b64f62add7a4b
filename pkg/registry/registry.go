// pkg/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrActivityNotFound    = errors.New("ACTIVITY_NOT_FOUND")
	ErrAlreadyRegistered   = errors.New("ALREADY_REGISTERED")
	ErrParticipantNotFound = errors.New("PARTICIPANT_NOT_FOUND")
)

// Registry holds the current state of all activities, keyed by name.
// Activities are created once from seed data and never added or removed at
// runtime; the participant roster is the only mutable field. A single mutex
// guards every check-then-mutate sequence so concurrent signups cannot lose
// updates or register the same email twice.
type Registry struct {
	mu         sync.Mutex
	activities map[string]*Activity
}

// New builds a registry from a validated seed. Duplicate activity names and
// duplicate roster emails are rejected here rather than at request time.
func New(seed *SeedFile) (*Registry, error) {
	activities := make(map[string]*Activity, len(seed.Activities))

	for _, sa := range seed.Activities {
		if _, exists := activities[sa.Name]; exists {
			return nil, fmt.Errorf("duplicate activity name in seed: %q", sa.Name)
		}

		seen := make(map[string]bool, len(sa.Participants))
		participants := make([]string, 0, len(sa.Participants))
		for _, email := range sa.Participants {
			if seen[email] {
				return nil, fmt.Errorf("duplicate participant %q in activity %q", email, sa.Name)
			}
			seen[email] = true
			participants = append(participants, email)
		}

		activities[sa.Name] = &Activity{
			Description:     sa.Description,
			Schedule:        sa.Schedule,
			MaxParticipants: sa.MaxParticipants,
			Participants:    participants,
		}
	}

	return &Registry{activities: activities}, nil
}

// List returns a snapshot of the full name-to-activity mapping. Rosters are
// copied so callers cannot mutate registry state through the result.
func (r *Registry) List() map[string]Activity {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]Activity, len(r.activities))
	for name, a := range r.activities {
		copied := *a
		copied.Participants = append([]string(nil), a.Participants...)
		out[name] = copied
	}
	return out
}

// Get returns the named activity or ErrActivityNotFound.
func (r *Registry) Get(name string) (Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	copied := *a
	copied.Participants = append([]string(nil), a.Participants...)
	return copied, nil
}

// AddParticipant appends email to the named activity's roster, preserving
// insertion order. Capacity is advisory and deliberately not checked: the
// roster may grow past MaxParticipants.
func (r *Registry) AddParticipant(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	for _, p := range a.Participants {
		if p == email {
			return ErrAlreadyRegistered
		}
	}

	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant removes email from the named activity's roster.
func (r *Registry) RemoveParticipant(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}

	return ErrParticipantNotFound
}

// Availability returns the remaining-capacity figure a client would display:
// max_participants minus the current roster size. Negative values are
// possible because capacity is not enforced on signup.
func (r *Registry) Availability(name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return 0, ErrActivityNotFound
	}
	return a.MaxParticipants - len(a.Participants), nil
}

// Len reports the number of activities in the registry.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.activities)
}

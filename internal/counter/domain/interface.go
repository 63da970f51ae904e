package domain

//go:generate mockgen -destination=../../mocks/mock_counter_repository.go -package=mocks github.com/michaelgreenl/tally-tracker-server/internal/counter/domain CounterRepository,Notifier

import "context"

type CounterRepository interface {
	Create(ctx context.Context, counter *Counter) error
	// Delete removes the counter only when ownerID owns it; it reports
	// whether a row was removed so missing and unowned look the same.
	Delete(ctx context.Context, counterID, ownerID string) (bool, error)
	// GetByIDOrShare resolves the counter when userID is the owner or holds
	// an ACCEPTED share; nil otherwise.
	GetByIDOrShare(ctx context.Context, counterID, userID string) (*Counter, error)
	ListForUser(ctx context.Context, userID string) ([]*CounterWithShares, error)
	Update(ctx context.Context, counterID, userID string, patch UpdatePatch) (*Counter, error)
	// Increment applies the delta as a store-level atomic increment guarded
	// by the owner-or-accepted-share predicate.
	Increment(ctx context.Context, counterID, userID string, amount int) (*Counter, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (*CounterWithShares, error)
	GetShare(ctx context.Context, counterID, userID string) (*CounterShare, error)
	// UpsertShareAccepted creates the share as ACCEPTED, or flips an
	// existing record back to ACCEPTED, keyed on (counter, user).
	UpsertShareAccepted(ctx context.Context, counterID, userID string) error
	SetShareStatus(ctx context.Context, counterID, userID string, status ShareStatus) error
	// Participants returns the owner id plus every user id holding an
	// ACCEPTED share — the realtime fan-out set.
	Participants(ctx context.Context, counterID string) ([]string, error)
}

// Notifier pushes an event to every listed participant. The engine depends
// only on this capability, never on the transport behind it.
type Notifier interface {
	Publish(userIDs []string, event string, payload interface{})
}

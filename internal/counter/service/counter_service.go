package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/michaelgreenl/tally-tracker-server/internal/counter/domain"
	"github.com/michaelgreenl/tally-tracker-server/internal/counter/dto"
	apperrors "github.com/michaelgreenl/tally-tracker-server/internal/errors"
)

// CounterUpdateEvent is the realtime event name pushed to participants.
const CounterUpdateEvent = "counter-update"

// JoinResult reports which branch of the join reconciliation ran.
type JoinResult struct {
	Counter       *domain.CounterWithShares
	AlreadyJoined bool
}

type CounterService struct {
	repo     domain.CounterRepository
	notifier domain.Notifier
}

func NewCounterService(repo domain.CounterRepository, notifier domain.Notifier) *CounterService {
	return &CounterService{repo: repo, notifier: notifier}
}

// Create validates and inserts a counter. The id may be client-supplied so
// offline-created counters sync under a stable identity; a collision with
// an existing row is a conflict, never a silent overwrite.
func (s *CounterService) Create(ctx context.Context, userID string, input dto.CreateCounterInput) (*domain.Counter, error) {
	counterType := domain.TypePersonal
	if input.Type != "" {
		counterType = domain.CounterType(input.Type)
	}

	if counterType == domain.TypeShared && input.InviteCode == "" {
		return nil, &apperrors.ValidationError{Errors: []apperrors.FieldError{
			{Field: "inviteCode", Message: "inviteCode is required for shared counters"},
		}}
	}

	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	now := time.Now()

	counter := &domain.Counter{
		ID:         id,
		Title:      input.Title,
		Count:      input.Count,
		Color:      input.Color,
		Type:       counterType,
		InviteCode: input.InviteCode,
		UserID:     userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, counter); err != nil {
		return nil, err
	}

	return counter, nil
}

// Delete is owner-only. Missing counter and foreign counter both come back
// as not-found so existence never leaks.
func (s *CounterService) Delete(ctx context.Context, counterID, userID string) error {
	deleted, err := s.repo.Delete(ctx, counterID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrCounterNotFound
	}
	return nil
}

// List returns the counters the user owns plus those shared with them under
// an ACCEPTED share, most recently updated first.
func (s *CounterService) List(ctx context.Context, userID string) ([]*domain.CounterWithShares, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *CounterService) Get(ctx context.Context, counterID, userID string) (*domain.Counter, error) {
	counter, err := s.repo.GetByIDOrShare(ctx, counterID, userID)
	if err != nil {
		return nil, err
	}
	if counter == nil {
		return nil, apperrors.ErrCounterNotFound
	}
	return counter, nil
}

func (s *CounterService) Update(ctx context.Context, counterID, userID string, input dto.UpdateCounterInput) (*domain.Counter, error) {
	patch := domain.UpdatePatch{
		Title: input.Title,
		Count: input.Count,
		Color: input.Color,
	}
	if input.Type != nil {
		t := domain.CounterType(*input.Type)
		// A counter can only become SHARED if it already carries an invite
		// code; the update surface has no way to supply one.
		if t == domain.TypeShared {
			existing, err := s.repo.GetByIDOrShare(ctx, counterID, userID)
			if err != nil {
				return nil, err
			}
			if existing == nil {
				return nil, apperrors.ErrCounterNotFound
			}
			if existing.InviteCode == "" {
				return nil, &apperrors.ValidationError{Errors: []apperrors.FieldError{
					{Field: "inviteCode", Message: "inviteCode is required for shared counters"},
				}}
			}
		}
		patch.Type = &t
	}

	counter, err := s.repo.Update(ctx, counterID, userID, patch)
	if err != nil {
		return nil, err
	}
	if counter == nil {
		return nil, apperrors.ErrCounterNotFound
	}

	return counter, nil
}

// Increment applies the delta atomically at the store and, for shared
// counters, pushes the fresh counter to every participant. Negative amounts
// decrement.
func (s *CounterService) Increment(ctx context.Context, counterID, userID string, amount int) (*domain.Counter, error) {
	counter, err := s.repo.Increment(ctx, counterID, userID, amount)
	if err != nil {
		return nil, err
	}
	if counter == nil {
		return nil, apperrors.ErrCounterNotFound
	}

	if counter.Type == domain.TypeShared {
		s.notifyParticipants(ctx, counter)
	}

	return counter, nil
}

func (s *CounterService) notifyParticipants(ctx context.Context, counter *domain.Counter) {
	participants, err := s.repo.Participants(ctx, counter.ID)
	if err != nil {
		// The increment already committed; a failed fan-out must not fail
		// the request.
		return
	}
	s.notifier.Publish(participants, CounterUpdateEvent, counter)
}

// Join reconciles the caller's share on the counter behind inviteCode:
// no record creates an ACCEPTED share, a REJECTED record flips back to
// ACCEPTED (re-join), and an ACCEPTED record is a no-op.
func (s *CounterService) Join(ctx context.Context, userID, inviteCode string) (*JoinResult, error) {
	counter, err := s.repo.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}
	if counter == nil {
		return nil, apperrors.ErrInvalidInviteCode
	}

	if counter.UserID == userID {
		return nil, apperrors.ErrOwnerCannotJoin
	}

	for _, share := range counter.Shares {
		if share.UserID == userID && share.Status == domain.ShareAccepted {
			return &JoinResult{Counter: counter, AlreadyJoined: true}, nil
		}
	}

	if err := s.repo.UpsertShareAccepted(ctx, counter.ID, userID); err != nil {
		return nil, err
	}

	return &JoinResult{Counter: counter}, nil
}

// Leave soft-removes the caller from a shared counter: the share flips to
// REJECTED, preserving history and allowing a later re-join. The owner
// cannot leave their own counter.
func (s *CounterService) Leave(ctx context.Context, counterID, userID string) error {
	share, err := s.repo.GetShare(ctx, counterID, userID)
	if err != nil {
		return err
	}
	if share == nil {
		// Owner "leaving" their own counter is a state conflict, anything
		// else is an absent share.
		counter, err := s.repo.GetByIDOrShare(ctx, counterID, userID)
		if err != nil {
			return err
		}
		if counter != nil && counter.UserID == userID {
			return apperrors.ErrOwnerCannotJoin
		}
		return apperrors.ErrShareNotFound
	}

	return s.repo.SetShareStatus(ctx, counterID, userID, domain.ShareRejected)
}

package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Deletion confirmation errors
var (
	ErrConfirmationUnknown = errors.New("unknown confirmation token")
	ErrConfirmationExpired = errors.New("confirmation token expired")
)

// Deletable entity kinds a pending confirmation can refer to
const (
	EntityCoffee = "coffee"
	EntitySize   = "size"
	EntityExtra  = "extra"
)

// PendingDeletion describes a delete request awaiting confirmation
type PendingDeletion struct {
	Token     string
	Entity    string
	Key       string
	ExpiresAt time.Time
}

// DeletionService models the delete confirmation dialog as an explicit
// two-step command: Request returns a pending-confirmation token bound to
// one row, Confirm redeems it exactly once. Tokens expire after a fixed
// window and redemption is single-use, so a double submit of the same
// confirmation cannot delete twice.
type DeletionService interface {
	// Request registers a pending deletion and returns its token
	Request(entity, key string) PendingDeletion
	// Confirm redeems a token, returning the deletion it stood for
	Confirm(token string) (PendingDeletion, error)
}

type deletionService struct {
	mu      sync.Mutex
	pending map[string]PendingDeletion
	ttl     time.Duration
	now     func() time.Time
}

// NewDeletionService creates a DeletionService whose tokens expire after ttl
func NewDeletionService(ttl time.Duration) DeletionService {
	return &deletionService{
		pending: make(map[string]PendingDeletion),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *deletionService) Request(entity, key string) PendingDeletion {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	p := PendingDeletion{
		Token:     uuid.NewString(),
		Entity:    entity,
		Key:       key,
		ExpiresAt: s.now().Add(s.ttl),
	}
	s.pending[p.Token] = p
	return p
}

func (s *deletionService) Confirm(token string) (PendingDeletion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[token]
	if !ok {
		return PendingDeletion{}, ErrConfirmationUnknown
	}
	delete(s.pending, token)

	if s.now().After(p.ExpiresAt) {
		return PendingDeletion{}, ErrConfirmationExpired
	}
	return p, nil
}

// sweepLocked drops expired tokens; caller holds the mutex
func (s *deletionService) sweepLocked() {
	now := s.now()
	for token, p := range s.pending {
		if now.After(p.ExpiresAt) {
			delete(s.pending, token)
		}
	}
}

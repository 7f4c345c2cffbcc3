package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletionRequestConfirm(t *testing.T) {
	svc := NewDeletionService(time.Minute)

	pending := svc.Request(EntityExtra, "Milk")
	assert.NotEmpty(t, pending.Token)
	assert.Equal(t, EntityExtra, pending.Entity)
	assert.Equal(t, "Milk", pending.Key)

	confirmed, err := svc.Confirm(pending.Token)
	require.NoError(t, err)
	assert.Equal(t, pending.Key, confirmed.Key)
}

func TestDeletionConfirmIsSingleUse(t *testing.T) {
	svc := NewDeletionService(time.Minute)

	pending := svc.Request(EntitySize, "sm")

	_, err := svc.Confirm(pending.Token)
	require.NoError(t, err)

	// A second redemption of the same token must fail
	_, err = svc.Confirm(pending.Token)
	assert.ErrorIs(t, err, ErrConfirmationUnknown)
}

func TestDeletionUnknownToken(t *testing.T) {
	svc := NewDeletionService(time.Minute)

	_, err := svc.Confirm("no-such-token")
	assert.ErrorIs(t, err, ErrConfirmationUnknown)
}

func TestDeletionTokenExpiry(t *testing.T) {
	impl := &deletionService{
		pending: make(map[string]PendingDeletion),
		ttl:     time.Minute,
		now:     time.Now,
	}

	pending := impl.Request(EntityCoffee, "3")

	// Move the clock past the expiry window
	impl.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err := impl.Confirm(pending.Token)
	assert.ErrorIs(t, err, ErrConfirmationExpired)
}

func TestDeletionTokensAreDistinct(t *testing.T) {
	svc := NewDeletionService(time.Minute)

	a := svc.Request(EntityExtra, "Milk")
	b := svc.Request(EntityExtra, "Milk")
	assert.NotEqual(t, a.Token, b.Token)
}

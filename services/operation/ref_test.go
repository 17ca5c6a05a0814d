package operation

import (
	"testing"
	"time"

	"barberdesk/models"

	"github.com/stretchr/testify/assert"
)

func sampleOps() []models.Operation {
	return []models.Operation{
		{ID: "a", Name: "Cut", Price: 100, Status: models.StatusPending},
		{ID: "b", Name: "Wash", Price: 50, Status: models.StatusPending},
		{ID: "c", Name: "Wash", Price: 50, Status: models.StatusFinished, CreatedAt: time.Now()},
	}
}

func TestResolveByIndex(t *testing.T) {
	ops := sampleOps()

	idx, ok := Resolve(ops, ByIndex(1))
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = Resolve(ops, ByIndex(3))
	assert.False(t, ok)

	_, ok = Resolve(ops, ByIndex(-1))
	assert.False(t, ok)
}

func TestResolveByIdentityFirstMatchWins(t *testing.T) {
	ops := sampleOps()

	// two entries share name+price; the first in array order is the match
	idx, ok := Resolve(ops, ByIdentity("Wash", 50))
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestResolveByIdentityIsIdempotent(t *testing.T) {
	ops := sampleOps()
	first, ok := Resolve(ops, ByIdentity("Cut", 100))
	assert.True(t, ok)
	for i := 0; i < 3; i++ {
		again, ok := Resolve(ops, ByIdentity("Cut", 100))
		assert.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestResolveIdentityMissFallsBackToIndex(t *testing.T) {
	ops := sampleOps()

	idx, ok := Resolve(ops, ByIdentity("Shave", 80).WithIndexFallback(0))
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	// identity match beats the fallback index
	idx, ok = Resolve(ops, ByIdentity("Wash", 50).WithIndexFallback(0))
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = Resolve(ops, ByIdentity("Shave", 80).WithIndexFallback(9))
	assert.False(t, ok)
}

func TestResolveEmptyRef(t *testing.T) {
	_, ok := Resolve(sampleOps(), Ref{})
	assert.False(t, ok)
}

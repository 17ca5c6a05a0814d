package operation

import (
	"testing"
	"time"

	"barberdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		current, target models.OperationStatus
		want            bool
	}{
		{models.StatusPending, models.StatusPendingToConfirm, true},
		{models.StatusPending, models.StatusFinished, true},
		{models.StatusPendingToConfirm, models.StatusFinished, true},
		// re-applying the current state is allowed
		{models.StatusPending, models.StatusPending, true},
		{models.StatusFinished, models.StatusFinished, true},
		// nothing moves backward
		{models.StatusFinished, models.StatusPending, false},
		{models.StatusFinished, models.StatusPendingToConfirm, false},
		{models.StatusPendingToConfirm, models.StatusPending, false},
		// unknown states are rejected on either side
		{models.StatusPending, "cancelled", false},
		{"cancelled", models.StatusFinished, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.current, tc.target),
			"%s -> %s", tc.current, tc.target)
	}
}

func TestApplyStampsFinishedDate(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	op := models.Operation{Name: "Cut", Price: 100, Status: models.StatusPending}

	require.True(t, Apply(&op, models.StatusFinished, nil, now))
	assert.Equal(t, models.StatusFinished, op.Status)
	require.NotNil(t, op.FinishedDate)
	assert.Equal(t, now, *op.FinishedDate)
	assert.Nil(t, op.WorkerConfirmedDate)
}

func TestApplyHonorsCallerFinishedDate(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	want := now.Add(-2 * time.Hour)
	op := models.Operation{Name: "Cut", Price: 100, Status: models.StatusPendingToConfirm}

	require.True(t, Apply(&op, models.StatusFinished, &want, now))
	require.NotNil(t, op.FinishedDate)
	assert.Equal(t, want, *op.FinishedDate)
}

func TestApplyStampsWorkerConfirmedDateOnly(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	op := models.Operation{Name: "Wash", Price: 50, Status: models.StatusPending}

	require.True(t, Apply(&op, models.StatusPendingToConfirm, nil, now))
	assert.Equal(t, models.StatusPendingToConfirm, op.Status)
	require.NotNil(t, op.WorkerConfirmedDate)
	assert.Equal(t, now, *op.WorkerConfirmedDate)
	// finishedDate is stamped exactly when the operation finishes, never before
	assert.Nil(t, op.FinishedDate)
}

func TestApplyRejectionLeavesOperationUntouched(t *testing.T) {
	finished := time.Date(2026, 3, 13, 18, 0, 0, 0, time.UTC)
	op := models.Operation{
		Name:         "Cut",
		Price:        100,
		Status:       models.StatusFinished,
		FinishedDate: &finished,
	}
	before := op

	assert.False(t, Apply(&op, models.StatusPending, nil, time.Now()))
	assert.Equal(t, before, op)
}

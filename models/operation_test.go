package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestOperationDecodesLegacyWorkerFields(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"name":       "Cut+Wash",
		"price":      150.0,
		"status":     "finished",
		"workerId":   "w1",
		"workerName": "Abel",
		"workerRole": "barber",
	})
	require.NoError(t, err)

	var op Operation
	require.NoError(t, bson.Unmarshal(raw, &op))

	assert.Equal(t, OperationKindAdmin, op.Kind)
	require.Len(t, op.Workers, 1)
	assert.Equal(t, WorkerShare{WorkerID: "w1", WorkerName: "Abel", WorkerRole: "barber", Price: 150}, op.Workers[0])
}

func TestOperationDecodePrefersWorkersList(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"name":   "Cut+Wash",
		"price":  150.0,
		"kind":   "admin",
		"status": "pending",
		"workers": []bson.M{
			{"workerId": "w1", "workerName": "Abel", "workerRole": "barber", "price": 100.0},
			{"workerId": "w2", "workerName": "Mulu", "workerRole": "washer", "price": 50.0},
		},
		"workerId": "stale",
	})
	require.NoError(t, err)

	var op Operation
	require.NoError(t, bson.Unmarshal(raw, &op))

	require.Len(t, op.Workers, 2)
	assert.Equal(t, "w1", op.Workers[0].WorkerID)
	assert.Equal(t, 50.0, op.Workers[1].Price)
}

func TestOperationDecodeWorkerKindStaysFlat(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"id":     "op1",
		"name":   "Cut",
		"price":  100.0,
		"status": "pending",
	})
	require.NoError(t, err)

	var op Operation
	require.NoError(t, bson.Unmarshal(raw, &op))

	assert.Empty(t, op.Workers)
	assert.Empty(t, op.Kind)
	assert.Equal(t, StatusPending, op.Status)
}

func TestStatusReaches(t *testing.T) {
	assert.True(t, StatusPending.Reaches(StatusFinished))
	assert.True(t, StatusFinished.Reaches(StatusFinished))
	assert.False(t, StatusFinished.Reaches(StatusPending))
	assert.False(t, StatusPendingToConfirm.Reaches("cancelled"))
}

package report

import (
	"testing"
	"time"

	"barberdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(hour int) time.Time {
	return time.Date(2026, 3, 14, hour, 0, 0, 0, time.UTC)
}

func testBranch() *models.Branch {
	return &models.Branch{
		ID:      "b1",
		Name:    "Piassa",
		OwnerID: "o1",
		Services: []models.BranchService{
			{
				Name:          "Cut",
				BarberPrice:   100,
				ShareSettings: &models.ShareSettings{BarberShare: 40, WasherShare: 30},
			},
			{Name: "Wash", WasherPrice: 50},
		},
		ShareSettings: &models.ShareSettings{BarberShare: 50, WasherShare: 50},
	}
}

func TestReconcileCreditsRecordingWorker(t *testing.T) {
	staff := []models.User{{
		ID: "w1", Name: "Abel", Role: models.RoleBarber,
		ServiceOperations: []models.Operation{
			{ID: "op1", Name: "Cut", Price: 100, Status: models.StatusFinished, CreatedAt: day(9), By: models.PaymentCash},
			{ID: "op2", Name: "Cut", Price: 100, Status: models.StatusFinished, CreatedAt: day(11), By: models.PaymentTelebirr},
		},
	}}

	rpt := Reconcile(testBranch(), staff, "2026-03-14")

	assert.Equal(t, 200.0, rpt.TotalRevenue)
	assert.Equal(t, 100.0, rpt.CashTotal)
	assert.Equal(t, 100.0, rpt.TelebirrTotal)
	assert.Equal(t, 2, rpt.FinishedCount)
	require.Len(t, rpt.Workers, 1)
	w := rpt.Workers[0]
	assert.Equal(t, "w1", w.WorkerID)
	assert.Equal(t, 2, w.OperationCount)
	assert.Equal(t, 200.0, w.Gross)
	// per-service settings: barber keeps 40% of Cut
	assert.Equal(t, 80.0, w.Share)
}

func TestReconcileBranchShareFallback(t *testing.T) {
	staff := []models.User{{
		ID: "w2", Name: "Mulu", Role: models.RoleWasher,
		ServiceOperations: []models.Operation{
			// Wash has no per-service settings; branch-level 50% applies
			{ID: "op1", Name: "Wash", Price: 50, Status: models.StatusFinished, CreatedAt: day(10)},
		},
	}}

	rpt := Reconcile(testBranch(), staff, "2026-03-14")

	require.Len(t, rpt.Workers, 1)
	assert.Equal(t, 25.0, rpt.Workers[0].Share)
}

func TestReconcileAdminOperationCreditsEachWorker(t *testing.T) {
	staff := []models.User{{
		ID: "a1", Name: "Sara", Role: models.RoleAdmin,
		AdminServiceOperations: []models.Operation{{
			ID: "op1", Kind: models.OperationKindAdmin, Name: "Cut", Price: 150,
			Status: models.StatusFinished, CreatedAt: day(14), By: models.PaymentCash,
			Workers: []models.WorkerShare{
				{WorkerID: "w1", WorkerName: "Abel", WorkerRole: "barber", Price: 100},
				{WorkerID: "w2", WorkerName: "Mulu", WorkerRole: "washer", Price: 50},
			},
		}},
	}}

	rpt := Reconcile(testBranch(), staff, "2026-03-14")

	assert.Equal(t, 150.0, rpt.TotalRevenue)
	require.Len(t, rpt.Workers, 2)
	assert.Equal(t, "w1", rpt.Workers[0].WorkerID)
	assert.Equal(t, 40.0, rpt.Workers[0].Share) // 40% of the barber slice
	assert.Equal(t, "w2", rpt.Workers[1].WorkerID)
	assert.Equal(t, 15.0, rpt.Workers[1].Share) // 30% of the washer slice
}

func TestReconcileCountsPendingStates(t *testing.T) {
	staff := []models.User{{
		ID: "w1", Name: "Abel", Role: models.RoleBarber,
		ServiceOperations: []models.Operation{
			{ID: "op1", Name: "Cut", Price: 100, Status: models.StatusPending, CreatedAt: day(9)},
			{ID: "op2", Name: "Cut", Price: 100, Status: models.StatusPendingToConfirm, CreatedAt: day(10)},
			{ID: "op3", Name: "Cut", Price: 100, Status: models.StatusFinished, CreatedAt: day(11)},
		},
	}}

	rpt := Reconcile(testBranch(), staff, "2026-03-14")

	assert.Equal(t, 1, rpt.PendingCount)
	assert.Equal(t, 1, rpt.PendingToConfirmCount)
	assert.Equal(t, 1, rpt.FinishedCount)
	// only finished revenue counts
	assert.Equal(t, 100.0, rpt.TotalRevenue)
}

func TestReconcileIgnoresOtherDays(t *testing.T) {
	staff := []models.User{{
		ID: "w1", Name: "Abel", Role: models.RoleBarber,
		ServiceOperations: []models.Operation{
			{ID: "op1", Name: "Cut", Price: 100, Status: models.StatusFinished, CreatedAt: day(9).AddDate(0, 0, -1)},
			{ID: "op2", Name: "Cut", Price: 100, Status: models.StatusFinished, CreatedAt: day(9)},
		},
	}}

	rpt := Reconcile(testBranch(), staff, "2026-03-14")

	assert.Equal(t, 100.0, rpt.TotalRevenue)
	assert.Equal(t, 1, rpt.FinishedCount)
}

func TestReconcileNoSplitConfigured(t *testing.T) {
	branch := &models.Branch{ID: "b2", Name: "Bole", OwnerID: "o1"}
	staff := []models.User{{
		ID: "w1", Name: "Abel", Role: models.RoleBarber,
		ServiceOperations: []models.Operation{
			{ID: "op1", Name: "Cut", Price: 100, Status: models.StatusFinished, CreatedAt: day(9)},
		},
	}}

	rpt := Reconcile(branch, staff, "2026-03-14")

	require.Len(t, rpt.Workers, 1)
	assert.Equal(t, 100.0, rpt.Workers[0].Gross)
	assert.Zero(t, rpt.Workers[0].Share)
}

package operation

import (
	"time"

	userRepo "barberdesk/database/repository/user"
	"barberdesk/models"
)

// RecordInput carries the fields of a newly recorded service operation.
type RecordInput struct {
	Kind          models.OperationKind `json:"kind"`
	Name          string               `json:"name" binding:"required"`
	Price         float64              `json:"price" binding:"required"`
	OriginalPrice *float64             `json:"originalPrice"`
	Workers       []models.WorkerShare `json:"workers"`
}

// ConfirmRequest addresses one operation for a payment confirmation. Name and
// price identify the operation; Index is the fallback for entries the
// identity scan cannot reach.
type ConfirmRequest struct {
	Name            string                 `json:"name"`
	Price           *float64               `json:"price"`
	Index           *int                   `json:"index"`
	Status          models.OperationStatus `json:"status"`
	By              models.PaymentMethod   `json:"by"`
	PaymentImageURL string                 `json:"paymentImageUrl"`
}

// OperationService is the operation lifecycle engine: it resolves operation
// references inside a user document, applies status transitions, and
// persists them per element.
type OperationService interface {
	// Record appends a newly performed service to the user's operations array.
	Record(userID string, input RecordInput) (*models.Operation, error)
	// Transition applies target to a single addressed operation.
	Transition(userID string, ref Ref, target models.OperationStatus, finishedDate *time.Time) (*models.Operation, error)
	// BulkTransition applies target to every index that resolves; skipped
	// entries never fail the request. Returns the updated count.
	BulkTransition(userID string, indices []int, target models.OperationStatus, finishedDate *time.Time) (int, error)
	// ConfirmPayment resolves one operation by identity (index fallback) and
	// applies the requested status plus payment fields.
	ConfirmPayment(userID string, req ConfirmRequest) (*models.Operation, error)
	// BulkConfirmPayment resolves each request and finishes it. Returns the
	// updated count.
	BulkConfirmPayment(userID string, reqs []ConfirmRequest) (int, error)
	// List returns the user's operations newest first, optionally filtered to
	// one calendar day (YYYY-MM-DD).
	List(userID string, date string) ([]models.Operation, error)
	// PendingConfirmations returns operations awaiting owner confirmation,
	// ordered by when the worker confirmed them.
	PendingConfirmations(userID string) ([]models.Operation, error)
	// DeleteAdminOperation removes one admin-recorded operation by its ID.
	DeleteAdminOperation(userID, operationID string) error
}

// DefaultOperationService is the production implementation.
type DefaultOperationService struct {
	Repo userRepo.UserRepository
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultOperationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

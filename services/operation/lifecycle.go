package operation

import (
	"time"

	"barberdesk/models"
)

// CanTransition reports whether an operation in state current may move to
// target. The lifecycle only moves forward:
//
//	pending -> pending_to_confirm -> finished
//	pending -> finished (admin/owner skip path)
//
// Re-applying the current state is allowed; confirmations are reissued by
// clients after partial failures and must stay idempotent.
func CanTransition(current, target models.OperationStatus) bool {
	if !models.ValidStatus(current) || !models.ValidStatus(target) {
		return false
	}
	return current.Reaches(target)
}

// Apply moves op to target and stamps the date fields. finishedAt overrides
// the finished timestamp when the caller supplies one; otherwise now is used.
// finishedDate is stamped exactly when the operation reaches finished and
// never for any other target. Returns false, leaving op untouched, when the
// transition is not allowed.
func Apply(op *models.Operation, target models.OperationStatus, finishedAt *time.Time, now time.Time) bool {
	if !CanTransition(op.Status, target) {
		return false
	}
	op.Status = target
	switch target {
	case models.StatusPendingToConfirm:
		stamp := now
		op.WorkerConfirmedDate = &stamp
	case models.StatusFinished:
		if finishedAt != nil {
			op.FinishedDate = finishedAt
		} else {
			stamp := now
			op.FinishedDate = &stamp
		}
	}
	return true
}

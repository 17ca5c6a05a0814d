package operation

import (
	"fmt"
	"sort"
	"time"

	"barberdesk/models"
	"barberdesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Record appends a newly performed service to the user's operations array.
// Every operation gets a stable UUID at creation so later status updates can
// address it without racing on the whole array.
func (s *DefaultOperationService) Record(userID string, input RecordInput) (*models.Operation, error) {
	user, err := s.Repo.GetByIDWithProjection(userID, bson.M{"id": 1, "role": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, NotFoundError{Resource: "user"}
	}
	if user.Role != models.RoleAdmin && !user.Role.IsStaff() {
		return nil, ValidationError{Msg: "operations can only be recorded for staff users"}
	}

	kind := input.Kind
	if kind == "" {
		kind = models.OperationKindWorker
		if user.Role == models.RoleAdmin {
			kind = models.OperationKindAdmin
		}
	}

	op := models.Operation{
		ID:            uuid.New().String(),
		Kind:          kind,
		Name:          input.Name,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Status:        models.StatusPending,
		CreatedAt:     s.now(),
	}
	if kind == models.OperationKindAdmin {
		op.Workers = input.Workers
	}

	if err := s.Repo.PushOperation(userID, user.OperationsField(), op); err != nil {
		return nil, fmt.Errorf("failed to record operation: %w", err)
	}
	return &op, nil
}

// Transition applies target to a single addressed operation.
func (s *DefaultOperationService) Transition(userID string, ref Ref, target models.OperationStatus, finishedDate *time.Time) (*models.Operation, error) {
	user, ops, err := s.loadOperations(userID)
	if err != nil {
		return nil, err
	}

	idx, ok := Resolve(ops, ref)
	if !ok {
		return nil, NotFoundError{Resource: "operation"}
	}
	if !Apply(&ops[idx], target, finishedDate, s.now()) {
		return nil, ValidationError{Msg: fmt.Sprintf("cannot move operation from %s to %s", ops[idx].Status, target)}
	}

	if err := s.persist(user, ops, []int{idx}); err != nil {
		return nil, err
	}
	return &ops[idx], nil
}

// BulkTransition applies target to every index that resolves. Out-of-range
// indices and guard-rejected entries are skipped, never failing the request;
// the returned count covers only entries actually written.
func (s *DefaultOperationService) BulkTransition(userID string, indices []int, target models.OperationStatus, finishedDate *time.Time) (int, error) {
	if !models.ValidStatus(target) {
		return 0, ValidationError{Msg: fmt.Sprintf("unknown status %q", target)}
	}

	user, ops, err := s.loadOperations(userID)
	if err != nil {
		return 0, err
	}

	var touched []int
	for _, idx := range indices {
		i, ok := Resolve(ops, ByIndex(idx))
		if !ok {
			continue
		}
		if Apply(&ops[i], target, finishedDate, s.now()) {
			touched = append(touched, i)
		}
	}
	if len(touched) == 0 {
		return 0, NoUpdatesError{}
	}

	if err := s.persist(user, ops, touched); err != nil {
		return 0, err
	}
	return len(touched), nil
}

// ConfirmPayment resolves one operation by identity (index fallback) and
// applies the requested status along with the payment fields.
func (s *DefaultOperationService) ConfirmPayment(userID string, req ConfirmRequest) (*models.Operation, error) {
	ref, err := req.ref()
	if err != nil {
		return nil, err
	}
	target := req.Status
	if target == "" {
		target = models.StatusFinished
	}
	if !models.ValidStatus(target) {
		return nil, ValidationError{Msg: fmt.Sprintf("unknown status %q", target)}
	}

	user, ops, err := s.loadOperations(userID)
	if err != nil {
		return nil, err
	}

	idx, ok := Resolve(ops, ref)
	if !ok {
		return nil, NotFoundError{Resource: "operation"}
	}
	if !Apply(&ops[idx], target, nil, s.now()) {
		return nil, ValidationError{Msg: fmt.Sprintf("cannot move operation from %s to %s", ops[idx].Status, target)}
	}
	applyPayment(&ops[idx], req)

	if err := s.persist(user, ops, []int{idx}); err != nil {
		return nil, err
	}
	return &ops[idx], nil
}

// BulkConfirmPayment finishes every request that resolves. Unresolved and
// guard-rejected entries are skipped; the returned count covers only entries
// actually written.
func (s *DefaultOperationService) BulkConfirmPayment(userID string, reqs []ConfirmRequest) (int, error) {
	user, ops, err := s.loadOperations(userID)
	if err != nil {
		return 0, err
	}

	var touched []int
	for _, req := range reqs {
		ref, err := req.ref()
		if err != nil {
			continue
		}
		i, ok := Resolve(ops, ref)
		if !ok {
			continue
		}
		if !Apply(&ops[i], models.StatusFinished, nil, s.now()) {
			continue
		}
		applyPayment(&ops[i], req)
		touched = append(touched, i)
	}
	if len(touched) == 0 {
		return 0, NoUpdatesError{}
	}

	if err := s.persist(user, ops, touched); err != nil {
		return 0, err
	}
	return len(touched), nil
}

// List returns the user's operations newest first, optionally filtered to one
// calendar day (YYYY-MM-DD).
func (s *DefaultOperationService) List(userID string, date string) ([]models.Operation, error) {
	_, ops, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.Operation, 0, len(ops))
	for _, op := range ops {
		if date != "" && op.CreatedAt.Format("2006-01-02") != date {
			continue
		}
		result = append(result, op)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// PendingConfirmations returns operations awaiting owner confirmation,
// oldest confirmation first.
func (s *DefaultOperationService) PendingConfirmations(userID string) ([]models.Operation, error) {
	_, ops, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.Operation, 0)
	for _, op := range ops {
		if op.Status == models.StatusPendingToConfirm {
			result = append(result, op)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].WorkerConfirmedDate, result[j].WorkerConfirmedDate
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.Before(*b)
	})
	return result, nil
}

// DeleteAdminOperation removes one admin-recorded operation by its stable ID.
func (s *DefaultOperationService) DeleteAdminOperation(userID, operationID string) error {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return NotFoundError{Resource: "user"}
	}
	if user.Role != models.RoleAdmin {
		return ValidationError{Msg: "user has no admin operations"}
	}

	found := false
	for _, op := range user.AdminServiceOperations {
		if op.ID == operationID {
			found = true
			break
		}
	}
	if !found {
		return NotFoundError{Resource: "operation"}
	}
	return s.Repo.PullOperation(userID, "adminServiceOperations", operationID)
}

// loadUser fetches the user and its role-authoritative operations array.
// An empty array is fine here; read endpoints serve it as an empty list.
func (s *DefaultOperationService) loadUser(userID string) (*models.User, []models.Operation, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, nil, NotFoundError{Resource: "user"}
	}
	return user, user.Operations(), nil
}

// loadOperations is loadUser for mutation paths, where an empty array means
// there is nothing to address.
func (s *DefaultOperationService) loadOperations(userID string) (*models.User, []models.Operation, error) {
	user, ops, err := s.loadUser(userID)
	if err != nil {
		return nil, nil, err
	}
	if len(ops) == 0 {
		return nil, nil, NotFoundError{Resource: "operations"}
	}
	return user, ops, nil
}

// persist writes the touched operations back per element. Entries recorded
// before stable IDs existed are backfilled with one and the array is written
// whole this one time.
func (s *DefaultOperationService) persist(user *models.User, ops []models.Operation, touched []int) error {
	missingID := false
	for _, i := range touched {
		if ops[i].ID == "" {
			missingID = true
			break
		}
	}

	if missingID {
		for i := range ops {
			if ops[i].ID == "" {
				ops[i].ID = uuid.New().String()
			}
		}
		user.SetOperations(ops)
		utils.GetLogger().Info("backfilled operation ids",
			zap.String("userID", user.ID), zap.Int("count", len(ops)))
		return s.Repo.Update(user)
	}

	updated := make([]models.Operation, 0, len(touched))
	for _, i := range touched {
		updated = append(updated, ops[i])
	}
	return s.Repo.UpdateOperations(user.ID, user.OperationsField(), updated)
}

// ref builds the resolution reference for a confirmation request.
func (req ConfirmRequest) ref() (Ref, error) {
	switch {
	case req.Name != "" && req.Price != nil:
		r := ByIdentity(req.Name, *req.Price)
		if req.Index != nil {
			r = r.WithIndexFallback(*req.Index)
		}
		return r, nil
	case req.Index != nil:
		return ByIndex(*req.Index), nil
	}
	return Ref{}, ValidationError{Msg: "operation reference requires name and price, or an index"}
}

// applyPayment copies the payment fields onto the operation.
func applyPayment(op *models.Operation, req ConfirmRequest) {
	if req.By != "" {
		op.By = req.By
	}
	if req.PaymentImageURL != "" {
		op.PaymentImageURL = req.PaymentImageURL
	}
}

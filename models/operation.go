// models/operation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// OperationKind discriminates who recorded the operation.
type OperationKind string

const (
	// OperationKindWorker marks operations recorded by barbers and washers.
	OperationKindWorker OperationKind = "worker"
	// OperationKindAdmin marks operations recorded by branch admins on behalf
	// of one or more workers.
	OperationKindAdmin OperationKind = "admin"
)

// OperationStatus is the lifecycle state of a recorded service operation.
type OperationStatus string

const (
	StatusPending          OperationStatus = "pending"
	StatusPendingToConfirm OperationStatus = "pending_to_confirm"
	StatusFinished         OperationStatus = "finished"
)

// ValidStatus reports whether s is one of the declared lifecycle states.
func ValidStatus(s OperationStatus) bool {
	switch s {
	case StatusPending, StatusPendingToConfirm, StatusFinished:
		return true
	}
	return false
}

// rank orders the lifecycle states so transitions can be checked for
// direction. Higher rank never moves back to a lower one.
func (s OperationStatus) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusPendingToConfirm:
		return 1
	case StatusFinished:
		return 2
	}
	return -1
}

// Reaches reports whether target is the same state or a later one.
func (s OperationStatus) Reaches(target OperationStatus) bool {
	return target.rank() >= s.rank()
}

// PaymentMethod records how a finished operation was paid for.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTelebirr PaymentMethod = "mobile banking(telebirr)"
)

// WorkerShare is one worker's cut of an admin-recorded operation.
type WorkerShare struct {
	WorkerID   string  `bson:"workerId" json:"workerId"`
	WorkerName string  `bson:"workerName" json:"workerName"`
	WorkerRole string  `bson:"workerRole" json:"workerRole"`
	Price      float64 `bson:"price" json:"price"`
}

// Operation is a single recorded service. Worker-kind operations live in a
// user's serviceOperations array; admin-kind operations live in
// adminServiceOperations and carry the contributing workers. The legacy
// single-worker admin shape (flat workerId/workerName/workerRole fields)
// decodes into a one-element Workers list.
type Operation struct {
	ID                  string          `bson:"id,omitempty" json:"id,omitempty"`
	Kind                OperationKind   `bson:"kind,omitempty" json:"kind,omitempty"`
	Name                string          `bson:"name" json:"name"`
	Price               float64         `bson:"price" json:"price"`
	OriginalPrice       *float64        `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Status              OperationStatus `bson:"status" json:"status"`
	CreatedAt           time.Time       `bson:"createdAt" json:"createdAt"`
	FinishedDate        *time.Time      `bson:"finishedDate,omitempty" json:"finishedDate,omitempty"`
	WorkerConfirmedDate *time.Time      `bson:"workerConfirmedDate,omitempty" json:"workerConfirmedDate,omitempty"`
	By                  PaymentMethod   `bson:"by,omitempty" json:"by,omitempty"`
	PaymentImageURL     string          `bson:"paymentImageUrl,omitempty" json:"paymentImageUrl,omitempty"`
	Workers             []WorkerShare   `bson:"workers,omitempty" json:"workers,omitempty"`
}

// UnmarshalBSON folds the legacy flat worker fields into the Workers list so
// old admin documents and new ones share a single shape in memory.
func (o *Operation) UnmarshalBSON(data []byte) error {
	type operationAlias Operation
	var alias operationAlias
	if err := bson.Unmarshal(data, &alias); err != nil {
		return err
	}
	*o = Operation(alias)
	if len(o.Workers) > 0 {
		return nil
	}

	var legacy struct {
		WorkerID   string `bson:"workerId"`
		WorkerName string `bson:"workerName"`
		WorkerRole string `bson:"workerRole"`
	}
	if err := bson.Unmarshal(data, &legacy); err != nil {
		return err
	}
	if legacy.WorkerID != "" || legacy.WorkerName != "" {
		o.Workers = []WorkerShare{{
			WorkerID:   legacy.WorkerID,
			WorkerName: legacy.WorkerName,
			WorkerRole: legacy.WorkerRole,
			Price:      o.Price,
		}}
		if o.Kind == "" {
			o.Kind = OperationKindAdmin
		}
	}
	return nil
}

// models/report.go
package models

import "time"

// WorkerEarning is one worker's reconciled totals for a reporting day.
type WorkerEarning struct {
	WorkerID       string  `bson:"workerId" json:"workerId"`
	WorkerName     string  `bson:"workerName" json:"workerName"`
	WorkerRole     string  `bson:"workerRole" json:"workerRole"`
	OperationCount int     `bson:"operationCount" json:"operationCount"`
	Gross          float64 `bson:"gross" json:"gross"`
	Share          float64 `bson:"share" json:"share"`
}

// DailyReport is the persisted output of a branch revenue reconciliation for
// one calendar day. Only finished operations count toward revenue; pending
// counts are carried for the dashboard.
type DailyReport struct {
	ID                    string          `bson:"id" json:"id"`
	BranchID              string          `bson:"branchId" json:"branchId"`
	Date                  string          `bson:"date" json:"date"` // YYYY-MM-DD
	TotalRevenue          float64         `bson:"totalRevenue" json:"totalRevenue"`
	CashTotal             float64         `bson:"cashTotal" json:"cashTotal"`
	TelebirrTotal         float64         `bson:"telebirrTotal" json:"telebirrTotal"`
	FinishedCount         int             `bson:"finishedCount" json:"finishedCount"`
	PendingCount          int             `bson:"pendingCount" json:"pendingCount"`
	PendingToConfirmCount int             `bson:"pendingToConfirmCount" json:"pendingToConfirmCount"`
	Workers               []WorkerEarning `bson:"workers,omitempty" json:"workers,omitempty"`
	GeneratedAt           time.Time       `bson:"generatedAt" json:"generatedAt"`
}

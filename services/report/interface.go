package report

import (
	"context"

	branchRepo "barberdesk/database/repository/branch"
	reportRepo "barberdesk/database/repository/report"
	userRepo "barberdesk/database/repository/user"
	"barberdesk/models"

	"github.com/go-redis/redis/v8"
)

// ReportService reconciles a branch day into revenue totals and per-worker
// shares for the owner dashboard.
type ReportService interface {
	// GetDailyReport returns the reconciled report for one branch day,
	// rebuilding it from the operation ledgers when not cached.
	GetDailyReport(ctx context.Context, branchID, date string) (*models.DailyReport, error)
	// GetRange returns the stored reports between two dates inclusive.
	GetRange(ctx context.Context, branchID, from, to string) ([]models.DailyReport, error)
}

// DefaultReportService is the production implementation.
type DefaultReportService struct {
	Users    userRepo.UserRepository
	Branches branchRepo.BranchRepository
	Reports  reportRepo.ReportRepository
	// Cache holds recently built reports; may be nil.
	Cache *redis.Client
}

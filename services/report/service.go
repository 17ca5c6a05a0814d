package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barberdesk/models"
	"barberdesk/utils"

	"go.uber.org/zap"
)

const (
	cacheKeyPrefix = "report:"
	cacheTTL       = 5 * time.Minute
)

// GetDailyReport returns the reconciled report for one branch day. A cached
// copy is served when fresh; otherwise the report is rebuilt from the staff
// operation ledgers, persisted, and cached.
func (s *DefaultReportService) GetDailyReport(ctx context.Context, branchID, date string) (*models.DailyReport, error) {
	if cached := s.fromCache(ctx, branchID, date); cached != nil {
		return cached, nil
	}

	branch, err := s.Branches.GetByID(branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch branch: %w", err)
	}
	if branch == nil {
		return nil, fmt.Errorf("branch with id %s not found", branchID)
	}

	staff, err := s.Users.GetByBranch(branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch branch staff: %w", err)
	}

	rpt := Reconcile(branch, staff, date)
	if _, err := s.Reports.Upsert(ctx, rpt); err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}

	s.toCache(ctx, rpt)
	return &rpt, nil
}

// GetRange returns the stored reports between two dates inclusive.
func (s *DefaultReportService) GetRange(ctx context.Context, branchID, from, to string) ([]models.DailyReport, error) {
	return s.Reports.GetByBranchRange(ctx, branchID, from, to)
}

// Reconcile groups one day of staff operations into revenue totals and
// per-worker shares. Only finished operations count toward revenue; pending
// states are tallied for the dashboard. Worker-kind operations credit the
// recording user; admin-kind operations credit each listed worker with its
// own slice of the price.
func Reconcile(branch *models.Branch, staff []models.User, date string) models.DailyReport {
	rpt := models.DailyReport{
		BranchID: branch.ID,
		Date:     date,
	}
	earnings := make(map[string]*models.WorkerEarning)
	var order []string

	credit := func(id, name, role, service string, amount float64) {
		e, ok := earnings[id]
		if !ok {
			e = &models.WorkerEarning{WorkerID: id, WorkerName: name, WorkerRole: role}
			earnings[id] = e
			order = append(order, id)
		}
		pct := branch.EffectiveShares(service).ShareFor(models.Role(role))
		e.OperationCount++
		e.Gross += amount
		e.Share += amount * pct / 100
	}

	for _, u := range staff {
		for _, op := range u.Operations() {
			if op.CreatedAt.Format("2006-01-02") != date {
				continue
			}
			switch op.Status {
			case models.StatusPending:
				rpt.PendingCount++
				continue
			case models.StatusPendingToConfirm:
				rpt.PendingToConfirmCount++
				continue
			case models.StatusFinished:
				rpt.FinishedCount++
			default:
				continue
			}

			rpt.TotalRevenue += op.Price
			if op.By == models.PaymentTelebirr {
				rpt.TelebirrTotal += op.Price
			} else {
				rpt.CashTotal += op.Price
			}

			if op.Kind == models.OperationKindAdmin || len(op.Workers) > 0 {
				for _, ws := range op.Workers {
					credit(ws.WorkerID, ws.WorkerName, ws.WorkerRole, op.Name, ws.Price)
				}
			} else {
				credit(u.ID, u.Name, string(u.Role), op.Name, op.Price)
			}
		}
	}

	for _, id := range order {
		rpt.Workers = append(rpt.Workers, *earnings[id])
	}
	return rpt
}

func (s *DefaultReportService) fromCache(ctx context.Context, branchID, date string) *models.DailyReport {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, cacheKeyPrefix+branchID+":"+date).Result()
	if err != nil {
		return nil
	}
	var rpt models.DailyReport
	if err := json.Unmarshal([]byte(data), &rpt); err != nil {
		return nil
	}
	return &rpt
}

func (s *DefaultReportService) toCache(ctx context.Context, rpt models.DailyReport) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(rpt)
	if err != nil {
		return
	}
	key := cacheKeyPrefix + rpt.BranchID + ":" + rpt.Date
	if err := s.Cache.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache report", zap.String("key", key), zap.Error(err))
	}
}

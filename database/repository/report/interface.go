package reportRepo

import (
	"context"

	"barberdesk/database"
	"barberdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ReportRepository interface {
	Upsert(ctx context.Context, report models.DailyReport) (string, error)
	GetByBranchAndDate(ctx context.Context, branchID, date string) (*models.DailyReport, error)
	GetByBranchRange(ctx context.Context, branchID, from, to string) ([]models.DailyReport, error)
}

type mongoReportRepo struct {
	coll *mongo.Collection
}

// NewMongoReportRepo returns a new ReportRepository instance using MongoDB.
func NewMongoReportRepo() ReportRepository {
	return &mongoReportRepo{
		coll: database.Collection("reports"),
	}
}

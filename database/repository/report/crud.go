package reportRepo

import (
	"context"
	"time"

	"barberdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert writes the reconciled report for a branch/date, replacing any
// earlier snapshot for the same day, and returns its ID.
func (r *mongoReportRepo) Upsert(ctx context.Context, report models.DailyReport) (string, error) {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	report.GeneratedAt = time.Now()

	filter := bson.M{"branchId": report.BranchID, "date": report.Date}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, report, opts); err != nil {
		return "", err
	}
	return report.ID, nil
}

// GetByBranchAndDate returns the stored report for one branch day, or nil.
func (r *mongoReportRepo) GetByBranchAndDate(ctx context.Context, branchID, date string) (*models.DailyReport, error) {
	var report models.DailyReport
	err := r.coll.FindOne(ctx, bson.M{"branchId": branchID, "date": date}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

// GetByBranchRange fetches stored reports for a branch between two dates
// inclusive, oldest first.
func (r *mongoReportRepo) GetByBranchRange(ctx context.Context, branchID, from, to string) ([]models.DailyReport, error) {
	filter := bson.M{
		"branchId": branchID,
		"date":     bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []models.DailyReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

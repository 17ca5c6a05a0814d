package userRepo

import (
	"fmt"
	"time"

	"barberdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PushOperation appends one operation to the named operations array.
func (r *MongoUserRepo) PushOperation(userID, field string, op models.Operation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{field: op},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to push operation for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", userID)
	}
	return nil
}

// PullOperation removes one operation by its stable ID from the named array.
func (r *MongoUserRepo) PullOperation(userID, field, operationID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{field: bson.M{"id": operationID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to pull operation %s for user %s: %w", operationID, userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", userID)
	}
	return nil
}

// UpdateOperations writes the lifecycle fields of each given operation back
// to the named array in a single update. Elements are addressed by their
// stable IDs through arrayFilters, so two writers confirming different
// operations on the same user document do not overwrite each other.
func (r *MongoUserRepo) UpdateOperations(userID, field string, ops []models.Operation) error {
	if len(ops) == 0 {
		return nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	filters := make([]interface{}, 0, len(ops))
	for i, op := range ops {
		ident := fmt.Sprintf("op%d", i)
		prefix := fmt.Sprintf("%s.$[%s].", field, ident)

		set[prefix+"status"] = op.Status
		if op.FinishedDate != nil {
			set[prefix+"finishedDate"] = op.FinishedDate
		}
		if op.WorkerConfirmedDate != nil {
			set[prefix+"workerConfirmedDate"] = op.WorkerConfirmedDate
		}
		if op.By != "" {
			set[prefix+"by"] = op.By
		}
		if op.PaymentImageURL != "" {
			set[prefix+"paymentImageUrl"] = op.PaymentImageURL
		}

		filters = append(filters, bson.M{ident + ".id": op.ID})
	}

	opts := options.Update().SetArrayFilters(options.ArrayFilters{Filters: filters})
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, bson.M{"$set": set}, opts)
	if err != nil {
		return fmt.Errorf("failed to update operations for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", userID)
	}
	return nil
}

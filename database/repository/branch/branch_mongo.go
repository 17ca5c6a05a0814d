package branchRepo

import (
	"context"
	"fmt"
	"time"

	"barberdesk/database"
	"barberdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBranchRepo implements BranchRepository using MongoDB.
type MongoBranchRepo struct {
	coll *mongo.Collection
}

// NewMongoBranchRepo creates a new instance of BranchRepository using MongoDB.
func NewMongoBranchRepo() BranchRepository {
	coll := database.Collection("branches")
	repo := &MongoBranchRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBranchRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a branch by its unique ID.
func (r *MongoBranchRepo) GetByID(id string) (*models.Branch, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var branch models.Branch
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&branch); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch branch with id %s: %w", id, err)
	}
	return &branch, nil
}

// GetByOwner retrieves all branches owned by the given user.
func (r *MongoBranchRepo) GetByOwner(ownerID string) ([]models.Branch, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve branches: %w", err)
	}
	defer cursor.Close(ctx)

	var branches []models.Branch
	for cursor.Next(ctx) {
		var b models.Branch
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode branch: %w", err)
		}
		branches = append(branches, b)
	}
	return branches, nil
}

// Create inserts a new branch document.
func (r *MongoBranchRepo) Create(branch *models.Branch) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	branch.CreatedAt = now
	branch.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, branch); err != nil {
		return fmt.Errorf("failed to create branch: %w", err)
	}
	return nil
}

// Update modifies an existing branch document.
func (r *MongoBranchRepo) Update(branch *models.Branch) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	branch.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": branch.ID}, bson.M{"$set": branch})
	if err != nil {
		return fmt.Errorf("failed to update branch with id %s: %w", branch.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("branch with id %s not found", branch.ID)
	}
	return nil
}

// Delete removes a branch document by its ID.
func (r *MongoBranchRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete branch with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("branch with id %s not found", id)
	}
	return nil
}

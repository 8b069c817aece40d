// Package repository stores the parts catalog in MongoDB.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/platform/logger"
)

const duplicateKeyCode = 11000

type repository struct {
	coll *mongo.Collection
}

func NewCatalogRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) ItemByID(ctx context.Context, id string) (*model.CatalogItem, error) {
	const op = "repository.ItemByID"

	var ent ItemEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrCatalogItemMissing
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context) ([]*model.CatalogItem, error) {
	const op = "repository.List"

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor", logger.String("op", op), logger.ErrorF(cerr))
		}
	}()

	out := make([]*model.CatalogItem, 0)
	for cur.Next(ctx) {
		var ent ItemEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) Create(ctx context.Context, item *model.CatalogItem) error {
	const op = "repository.Create"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(item)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("catalog item %s: %w", item.ID, model.ErrConflict)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CreateBatch inserts the items that do not exist yet. Existing ids are skipped.
func (r *repository) CreateBatch(ctx context.Context, items []*model.CatalogItem) error {
	const op = "repository.CreateBatch"

	docs := make([]any, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		if it.ID == "" {
			return fmt.Errorf("%s: catalog item ID is empty", op)
		}
		docs = append(docs, EntityFromModel(it))
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil && !onlyDuplicates(err) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, id string, upd model.CatalogItemUpdate) (*model.CatalogItem, error) {
	const op = "repository.Update"

	set := BuildSetDocument(upd)
	if len(set) == 0 {
		return r.ItemByID(ctx, id)
	}

	var ent ItemEntity
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrCatalogItemMissing
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

// UpdateStock applies delta atomically with $inc. The result may be negative.
func (r *repository) UpdateStock(ctx context.Context, id string, delta int64) (int64, error) {
	const op = "repository.UpdateStock"

	var ent ItemEntity
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"stock": delta}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, model.ErrCatalogItemMissing
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return ent.Stock, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.Delete"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrCatalogItemMissing
	}

	return nil
}

func onlyDuplicates(err error) bool {
	var bwe mongo.BulkWriteException
	if !errors.As(err, &bwe) || bwe.WriteConcernError != nil || len(bwe.WriteErrors) == 0 {
		return false
	}
	for _, we := range bwe.WriteErrors {
		if we.Code != duplicateKeyCode {
			return false
		}
	}
	return true
}

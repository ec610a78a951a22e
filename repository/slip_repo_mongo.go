package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brcroadlines/derive"
	"brcroadlines/models"
)

type MongoSlipRepo struct {
	DB *mongo.Client
}

func NewMongoSlipRepo(db *mongo.Client) *MongoSlipRepo {
	return &MongoSlipRepo{DB: db}
}

func (r *MongoSlipRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("loading_slip")
}

func (r *MongoSlipRepo) SaveSlip(slip *models.LoadingSlip) error {
	ctx := context.Background()
	derive.LoadingSlip(slip)

	// Uniqueness check, excluding the record under edit.
	count, err := r.collection().CountDocuments(ctx, bson.M{
		"slip_number": slip.SlipNumber,
		"_id":         bson.M{"$ne": slip.ID},
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateNumber
	}

	if slip.ID == 0 {
		slip.ID = nextDocID()
		if slip.CreatedAt.IsZero() {
			slip.CreatedAt = time.Now().UTC()
		}
		_, err := r.collection().InsertOne(ctx, slip)
		return err
	}

	now := time.Now().UTC()
	slip.UpdatedAt = &now
	res, err := r.collection().ReplaceOne(ctx, bson.M{"_id": slip.ID}, slip)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoSlipRepo) GetSlips(filters map[string]interface{}, single bool) ([]*models.LoadingSlip, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		if k == "id" {
			k = "_id"
		}
		bsonFilter[k] = v
	}

	if single {
		var s models.LoadingSlip
		err := r.collection().FindOne(ctx, bsonFilter).Decode(&s)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			return nil, err
		}
		return []*models.LoadingSlip{&s}, nil
	}

	cur, err := r.collection().Find(ctx, bsonFilter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.LoadingSlip
	for cur.Next(ctx) {
		var s models.LoadingSlip
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, cur.Err()
}

func (r *MongoSlipRepo) DeleteSlip(id int64) error {
	res, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

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

type MongoMemoRepo struct {
	DB *mongo.Client
}

func NewMongoMemoRepo(db *mongo.Client) *MongoMemoRepo {
	return &MongoMemoRepo{DB: db}
}

func (r *MongoMemoRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("memo")
}

func (r *MongoMemoRepo) SaveMemo(memo *models.Memo) error {
	ctx := context.Background()
	derive.Memo(memo)

	count, err := r.collection().CountDocuments(ctx, bson.M{
		"memo_number": memo.MemoNumber,
		"_id":         bson.M{"$ne": memo.ID},
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateNumber
	}

	if memo.AdvancePayments == nil {
		memo.AdvancePayments = []models.AdvancePayment{}
	}

	if memo.ID == 0 {
		memo.ID = nextDocID()
		if memo.CreatedAt.IsZero() {
			memo.CreatedAt = time.Now().UTC()
		}
		_, err := r.collection().InsertOne(ctx, memo)
		return err
	}

	now := time.Now().UTC()
	memo.UpdatedAt = &now
	res, err := r.collection().ReplaceOne(ctx, bson.M{"_id": memo.ID}, memo)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoMemoRepo) GetMemos(filters map[string]interface{}, single bool) ([]*models.Memo, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		if k == "id" {
			k = "_id"
		}
		bsonFilter[k] = v
	}

	if single {
		var m models.Memo
		err := r.collection().FindOne(ctx, bsonFilter).Decode(&m)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			return nil, err
		}
		return []*models.Memo{&m}, nil
	}

	cur, err := r.collection().Find(ctx, bsonFilter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Memo
	for cur.Next(ctx) {
		var m models.Memo
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, cur.Err()
}

func (r *MongoMemoRepo) MarkPaid(id int64, t time.Time) error {
	ctx := context.Background()

	var m models.Memo
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	if m.IsPaid {
		return nil
	}

	_, err = r.collection().UpdateOne(ctx,
		bson.M{"_id": id, "is_paid": false},
		bson.M{"$set": bson.M{
			"is_paid":        true,
			"payment_date":   t,
			"payment_amount": m.NetAmount,
			"updated_at":     t,
		}},
	)
	return err
}

func (r *MongoMemoRepo) DeleteMemo(id int64) error {
	res, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

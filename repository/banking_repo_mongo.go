package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brcroadlines/models"
)

type MongoBankingRepo struct {
	DB *mongo.Client
}

func NewMongoBankingRepo(db *mongo.Client) *MongoBankingRepo {
	return &MongoBankingRepo{DB: db}
}

func (r *MongoBankingRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("banking_entry")
}

func (r *MongoBankingRepo) CreateEntry(entry *models.BankingEntry) error {
	if entry.ID == 0 {
		entry.ID = nextDocID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection().InsertOne(context.Background(), entry)
	return err
}

func (r *MongoBankingRepo) GetEntries(filters map[string]interface{}) ([]*models.BankingEntry, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		if k == "id" {
			k = "_id"
		}
		bsonFilter[k] = v
	}

	cur, err := r.collection().Find(ctx, bsonFilter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.BankingEntry
	for cur.Next(ctx) {
		var e models.BankingEntry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, cur.Err()
}

func (r *MongoBankingRepo) DeleteEntry(id int64) error {
	res, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

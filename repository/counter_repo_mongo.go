package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCounterRepo struct {
	DB *mongo.Client
}

func NewMongoCounterRepo(db *mongo.Client) *MongoCounterRepo {
	return &MongoCounterRepo{DB: db}
}

func (r *MongoCounterRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("counter")
}

func (r *MongoCounterRepo) GetLastNumber(kind string) (string, error) {
	var doc struct {
		LastNumber string `bson:"last_number"`
	}
	err := r.collection().FindOne(context.Background(), bson.M{"_id": kind}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", err
	}
	return doc.LastNumber, nil
}

func (r *MongoCounterRepo) SetLastNumber(kind, number string) error {
	_, err := r.collection().UpdateOne(context.Background(),
		bson.M{"_id": kind},
		bson.M{"$set": bson.M{"last_number": number}},
		options.Update().SetUpsert(true),
	)
	return err
}

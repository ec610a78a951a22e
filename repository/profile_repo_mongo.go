package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brcroadlines/models"
)

type MongoProfileRepo struct {
	DB *mongo.Client
}

func NewMongoProfileRepo(db *mongo.Client) *MongoProfileRepo {
	return &MongoProfileRepo{DB: db}
}

func (r *MongoProfileRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("company_profile")
}

func (r *MongoProfileRepo) SaveProfile(p *models.CompanyProfile) error {
	ctx := context.Background()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.ID == 0 {
		p.ID = nextDocID()
		_, err := r.collection().InsertOne(ctx, p)
		return err
	}
	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": p.ID}, p,
		options.Replace().SetUpsert(true))
	return err
}

func (r *MongoProfileRepo) GetProfile() (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	err := r.collection().FindOne(context.Background(), bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

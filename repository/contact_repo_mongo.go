package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brcroadlines/models"
)

type MongoPartyRepo struct {
	DB *mongo.Client
}

func NewMongoPartyRepo(db *mongo.Client) *MongoPartyRepo {
	return &MongoPartyRepo{DB: db}
}

func (r *MongoPartyRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("party")
}

func (r *MongoPartyRepo) SaveParty(p *models.Party) error {
	ctx := context.Background()
	if p.ID == 0 {
		p.ID = nextDocID()
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now().UTC()
		}
		_, err := r.collection().InsertOne(ctx, p)
		return err
	}
	res, err := r.collection().ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPartyRepo) GetParties() ([]*models.Party, error) {
	ctx := context.Background()
	cur, err := r.collection().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Party
	for cur.Next(ctx) {
		var p models.Party
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (r *MongoPartyRepo) DeleteParty(id int64) error {
	res, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoSupplierRepo struct {
	DB *mongo.Client
}

func NewMongoSupplierRepo(db *mongo.Client) *MongoSupplierRepo {
	return &MongoSupplierRepo{DB: db}
}

func (r *MongoSupplierRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("supplier")
}

func (r *MongoSupplierRepo) SaveSupplier(s *models.Supplier) error {
	ctx := context.Background()
	if s.ID == 0 {
		s.ID = nextDocID()
		if s.CreatedAt.IsZero() {
			s.CreatedAt = time.Now().UTC()
		}
		_, err := r.collection().InsertOne(ctx, s)
		return err
	}
	res, err := r.collection().ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoSupplierRepo) GetSuppliers() ([]*models.Supplier, error) {
	ctx := context.Background()
	cur, err := r.collection().Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Supplier
	for cur.Next(ctx) {
		var s models.Supplier
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, cur.Err()
}

func (r *MongoSupplierRepo) DeleteSupplier(id int64) error {
	res, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

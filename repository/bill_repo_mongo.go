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

type MongoBillRepo struct {
	DB *mongo.Client
}

func NewMongoBillRepo(db *mongo.Client) *MongoBillRepo {
	return &MongoBillRepo{DB: db}
}

func (r *MongoBillRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("bill")
}

func (r *MongoBillRepo) SaveBill(bill *models.Bill) error {
	ctx := context.Background()
	derive.Bill(bill)

	count, err := r.collection().CountDocuments(ctx, bson.M{
		"bill_number": bill.BillNumber,
		"_id":         bson.M{"$ne": bill.ID},
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateNumber
	}

	if bill.ID == 0 {
		bill.ID = nextDocID()
		if bill.CreatedAt.IsZero() {
			bill.CreatedAt = time.Now().UTC()
		}
		_, err := r.collection().InsertOne(ctx, bill)
		return err
	}

	now := time.Now().UTC()
	bill.UpdatedAt = &now
	res, err := r.collection().ReplaceOne(ctx, bson.M{"_id": bill.ID}, bill)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBillRepo) GetBills(filters map[string]interface{}, single bool) ([]*models.Bill, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		if k == "id" {
			k = "_id"
		}
		bsonFilter[k] = v
	}

	if single {
		var b models.Bill
		err := r.collection().FindOne(ctx, bsonFilter).Decode(&b)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			return nil, err
		}
		return []*models.Bill{&b}, nil
	}

	cur, err := r.collection().Find(ctx, bsonFilter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Bill
	for cur.Next(ctx) {
		var b models.Bill
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, cur.Err()
}

func (r *MongoBillRepo) MarkReceived(id int64, t time.Time) error {
	ctx := context.Background()

	var b models.Bill
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	if b.IsReceived {
		return nil
	}

	_, err = r.collection().UpdateOne(ctx,
		bson.M{"_id": id, "is_received": false},
		bson.M{"$set": bson.M{
			"is_received":    true,
			"receipt_date":   t,
			"receipt_amount": b.NetAmount,
			"updated_at":     t,
		}},
	)
	return err
}

func (r *MongoBillRepo) UpdatePODImage(id int64, url string) error {
	res, err := r.collection().UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"pod_image": url, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBillRepo) DeleteBill(id int64) error {
	res, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

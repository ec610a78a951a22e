package models

import "time"

// Party is a customer (receivable side). Loading slips and bills reference
// parties by name, not by id — a soft reference the ledger tolerates.
type Party struct {
	ID        int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Address   *string   `json:"address,omitempty" bson:"address,omitempty" db:"address"`
	Contact   *string   `json:"contact,omitempty" bson:"contact,omitempty" db:"contact"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// Supplier is a vehicle owner (payable side), referenced by name from
// loading slips and memos.
type Supplier struct {
	ID        int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Address   *string   `json:"address,omitempty" bson:"address,omitempty" db:"address"`
	Contact   *string   `json:"contact,omitempty" bson:"contact,omitempty" db:"contact"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

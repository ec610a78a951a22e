package models

import "time"

// LoadingSlip is the initiating trip document. Balance and TotalFreight are
// derived from the raw amounts and recomputed on every save.
type LoadingSlip struct {
	ID           int64      `json:"id" bson:"_id,omitempty" db:"id"`
	SlipNumber   string     `json:"slip_number" bson:"slip_number" db:"slip_number"`
	Date         time.Time  `json:"date" bson:"date" db:"date"`
	Party        string     `json:"party" bson:"party" db:"party"`
	VehicleNo    string     `json:"vehicle_no" bson:"vehicle_no" db:"vehicle_no"`
	FromLocation string     `json:"from_location" bson:"from_location" db:"from_location"`
	ToLocation   string     `json:"to_location" bson:"to_location" db:"to_location"`
	Dimension    string     `json:"dimension" bson:"dimension" db:"dimension"`
	Weight       float64    `json:"weight" bson:"weight" db:"weight"`
	Supplier     string     `json:"supplier" bson:"supplier" db:"supplier"`
	Freight      Rupees     `json:"freight" bson:"freight" db:"freight"`
	Advance      Rupees     `json:"advance" bson:"advance" db:"advance"`
	RTO          Rupees     `json:"rto" bson:"rto" db:"rto"`
	Balance      Rupees     `json:"balance" bson:"balance" db:"balance"`
	TotalFreight Rupees     `json:"total_freight" bson:"total_freight" db:"total_freight"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}

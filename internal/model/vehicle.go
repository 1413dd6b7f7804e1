package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Vehicle struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	LicencePlate string             `json:"licence_plate" bson:"licence_plate"`
	Informations string             `json:"informations" bson:"informations"`
	Km           int64              `json:"km" bson:"km"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

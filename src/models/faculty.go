package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Faculty อาจารย์
type Faculty struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code       string             `bson:"code" json:"code"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Department string             `bson:"department" json:"department"`
	Position   string             `bson:"position" json:"position"` // เช่น "Assistant Professor"
	Status     string             `bson:"status" json:"status"`     // "active" | "inactive"
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student นักศึกษา ใช้ใน flow เช็คชื่อรายคาบเท่านั้น
type Student struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RegNumber  string             `bson:"regNumber" json:"regNumber"`
	RollNumber string             `bson:"rollNumber,omitempty" json:"rollNumber,omitempty"`
	Name       string             `bson:"name" json:"name"`
	BatchID    primitive.ObjectID `bson:"batchId" json:"batchId"`
	Status     string             `bson:"status" json:"status"` // "active" | "inactive"
}

// Batch รุ่น/กลุ่มเรียน เช่น "CSE 2022-26"
type Batch struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Course string             `bson:"course" json:"course"`
	Year   string             `bson:"year" json:"year"`
}

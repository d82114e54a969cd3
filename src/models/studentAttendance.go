package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentAttendanceRecord การเช็คชื่อนักศึกษาหนึ่งคนในหนึ่งคาบ
// เขียนพร้อม TeachingSessionRecord ใน transaction เดียว ไม่มีครึ่ง ๆ กลาง ๆ
type StudentAttendanceRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID primitive.ObjectID `bson:"sessionId" json:"sessionId"`
	StudentID primitive.ObjectID `bson:"studentId" json:"studentId"`
	BatchID   primitive.ObjectID `bson:"batchId" json:"batchId"`
	Date      string             `bson:"date" json:"date"` // "2006-01-02"
	Subject   string             `bson:"subject" json:"subject"`
	Status    string             `bson:"status" json:"status"` // "present" | "absent" | "late" | "excused"
	MarkedBy  primitive.ObjectID `bson:"markedBy" json:"markedBy"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

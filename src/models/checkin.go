package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckInRecord การเช็คชื่อเข้า-ออกงานของอาจารย์ (1 record ต่อวัน)
type CheckInRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FacultyID    primitive.ObjectID `bson:"facultyId" json:"facultyId"`
	Date         string             `bson:"date" json:"date"` // "2006-01-02" เทียบเป็นวัน ไม่ใช่ timestamp
	CheckInTime  *time.Time         `bson:"checkInTime,omitempty" json:"checkInTime,omitempty"`
	CheckOutTime *time.Time         `bson:"checkOutTime,omitempty" json:"checkOutTime,omitempty"`
}

// IsCheckedOut บอกว่า record นี้ปิดวันแล้วหรือยัง
func (r *CheckInRecord) IsCheckedOut() bool {
	return r.CheckOutTime != nil
}

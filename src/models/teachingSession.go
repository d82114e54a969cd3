package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionAttendee สถานะนักศึกษาหนึ่งคนใน session
type SessionAttendee struct {
	StudentID primitive.ObjectID `bson:"studentId" json:"studentId"`
	Name      string             `bson:"name" json:"name"`
	RegNumber string             `bson:"regNumber" json:"regNumber"`
	Status    string             `bson:"status" json:"status"` // "present" | "absent" | "late" | "excused"
}

// TeachingSessionRecord คาบสอนหนึ่งคาบ สร้างจาก flow การเช็คชื่อนักศึกษา
// DurationHours เป็น optional ถ้าไม่ระบุจะใช้ค่า session duration จาก config
type TeachingSessionRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FacultyID     primitive.ObjectID `bson:"facultyId" json:"facultyId"`
	Date          string             `bson:"date" json:"date"` // "2006-01-02"
	Subject       string             `bson:"subject" json:"subject"`
	Batch         string             `bson:"batch" json:"batch"`
	SlotTime      string             `bson:"slotTime" json:"slotTime"` // เช่น "09:00-10:30"
	DurationHours *float64           `bson:"durationHours,omitempty" json:"durationHours,omitempty"`
	TotalStudents int                `bson:"totalStudents" json:"totalStudents"`
	PresentCount  int                `bson:"presentCount" json:"presentCount"`
	Attendees     []SessionAttendee  `bson:"attendees" json:"attendees"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

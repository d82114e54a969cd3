package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ประเภทงานนอกการสอน
const (
	ActivityMeeting        = "Meeting"
	ActivityResearch       = "Research"
	ActivityEvaluation     = "Evaluation"
	ActivityMentoring      = "Mentoring"
	ActivityAdministrative = "Administrative"
	ActivityOther          = "Other"
)

// WorkLogRecord ชั่วโมงงานนอกการสอนที่อาจารย์บันทึกเอง
// DurationHours ต้อง > 0 เสมอ ตรวจตั้งแต่ตอนรับข้อมูล ไม่ปล่อยให้หลุดไปถึงขั้นรวมยอด
type WorkLogRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FacultyID     primitive.ObjectID `bson:"facultyId" json:"facultyId"`
	Date          string             `bson:"date" json:"date" validate:"required,datetime=2006-01-02"`
	ActivityType  string             `bson:"activityType" json:"activityType" validate:"required,oneof=Meeting Research Evaluation Mentoring Administrative Other"`
	DurationHours float64            `bson:"durationHours" json:"durationHours" validate:"required,gt=0"`
	Description   string             `bson:"description" json:"description" validate:"required"`
	Status        string             `bson:"status" json:"status"` // "pending" | "approved" — log ที่กรอกเองต้องผ่านการอนุมัติ
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

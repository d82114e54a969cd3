package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// สถานะคำขอลา
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// LeaveRecord คำขอลา ช่วงวันที่เป็นแบบรวมปลายทั้งสองด้าน
type LeaveRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	StartDate string             `bson:"startDate" json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string             `bson:"endDate" json:"endDate" validate:"required,datetime=2006-01-02"`
	LeaveType string             `bson:"leaveType" json:"leaveType"` // "casual" | "sick" | "annual" | "other"
	Status    string             `bson:"status" json:"status"`       // pending | approved | rejected
	Reason    string             `bson:"reason" json:"reason" validate:"required"`
	AppliedAt time.Time          `bson:"appliedAt" json:"appliedAt"`
}

// ContainsDay ตรวจว่าวันอยู่ในช่วงลาหรือไม่ เทียบ string "2006-01-02"
// เพื่อเลี่ยงปัญหา timezone ที่ขอบช่วง (ห้ามเทียบ timestamp ตรง ๆ)
func (l *LeaveRecord) ContainsDay(date string) bool {
	return l.StartDate <= date && date <= l.EndDate
}

package leaves

import (
	"context"
	"fmt"
	"time"

	DB "Backend-CampusPortal/src/database"
	"Backend-CampusPortal/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// ApplyLeaveRequest คำขอลาใหม่
type ApplyLeaveRequest struct {
	UserID    string `json:"userId" validate:"required"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	LeaveType string `json:"leaveType" validate:"required,oneof=casual sick annual other"`
	Reason    string `json:"reason" validate:"required"`
}

// ApplyLeave ยื่นคำขอลา เริ่มที่ pending เสมอ
func ApplyLeave(ctx context.Context, req ApplyLeaveRequest) (*models.LeaveRecord, error) {
	if err := validate.Struct(req); err != nil {
		return nil, models.NewValidationError(fmt.Sprintf("ข้อมูลคำขอลาไม่ถูกต้อง: %v", err))
	}
	if req.EndDate < req.StartDate {
		return nil, models.NewValidationError("วันสิ้นสุดการลาต้องไม่ก่อนวันเริ่มลา")
	}

	uID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, models.NewValidationError("รหัสผู้ใช้ไม่ถูกต้อง")
	}

	rec := models.LeaveRecord{
		ID:        primitive.NewObjectID(),
		UserID:    uID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		LeaveType: req.LeaveType,
		Status:    models.LeavePending,
		Reason:    req.Reason,
		AppliedAt: time.Now(),
	}
	if _, err := DB.LeaveCollection.InsertOne(ctx, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateLeaveStatus อนุมัติหรือปฏิเสธคำขอ เปลี่ยนได้เฉพาะใบที่ยัง pending
// ใบที่อนุมัติแล้วถือว่า immutable ใน scope นี้
func UpdateLeaveStatus(ctx context.Context, leaveID, status string) (*models.LeaveRecord, error) {
	if status != models.LeaveApproved && status != models.LeaveRejected {
		return nil, models.NewValidationError("สถานะต้องเป็น approved หรือ rejected")
	}

	lID, err := primitive.ObjectIDFromHex(leaveID)
	if err != nil {
		return nil, models.NewValidationError("รหัสคำขอลาไม่ถูกต้อง")
	}

	var rec models.LeaveRecord
	err = DB.LeaveCollection.FindOne(ctx, bson.M{"_id": lID}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, models.NewNotFoundError("ไม่พบคำขอลา")
	}
	if err != nil {
		return nil, err
	}
	if rec.Status != models.LeavePending {
		return nil, models.NewStateConflictError("คำขอลานี้ถูกตัดสินไปแล้ว")
	}

	if _, err := DB.LeaveCollection.UpdateOne(ctx, bson.M{"_id": lID, "status": models.LeavePending},
		bson.M{"$set": bson.M{"status": status}}); err != nil {
		return nil, err
	}

	rec.Status = status
	return &rec, nil
}

// ListLeaves ดึงคำขอลาของผู้ใช้เรียงจากที่ยื่นล่าสุด
func ListLeaves(ctx context.Context, userID string, limit int) ([]models.LeaveRecord, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.NewValidationError("รหัสผู้ใช้ไม่ถูกต้อง")
	}

	opts := options.Find().SetSort(bson.D{{Key: "appliedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := DB.LeaveCollection.Find(ctx, bson.M{"userId": uID}, opts)
	if err != nil {
		return nil, fmt.Errorf("ไม่สามารถดึงคำขอลาได้: %v", err)
	}
	defer cursor.Close(ctx)

	var records []models.LeaveRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("ไม่สามารถถอดรหัสคำขอลาได้: %v", err)
	}
	return records, nil
}

// Overlaps ตรวจว่าช่วงลาคาบเกี่ยวช่วง [from, to] หรือไม่ (inclusive ทั้งสองด้าน)
func Overlaps(lv models.LeaveRecord, from, to string) bool {
	return lv.StartDate <= to && from <= lv.EndDate
}

// Store implementation ของ attendance.LeaveSource
type Store struct{}

// ApprovedOverlapping ดึงใบลาอนุมัติแล้วที่คาบเกี่ยวช่วง [from, to]
//
// ทำสองขั้น: ดึงกว้าง ๆ ด้วย userId+status จาก Mongo ก่อน แล้วค่อยกรอง
// ช่วงวันใน memory เพราะ query ช่วงซ้อนทับสองฟิลด์บน backend เดิมทำไม่ได้
// ฝั่ง resolver ไม่รู้เรื่องนี้ เปลี่ยนเป็น range query ฝั่ง server ได้ภายหลัง
func (Store) ApprovedOverlapping(ctx context.Context, userID primitive.ObjectID, from, to string) ([]models.LeaveRecord, error) {
	cursor, err := DB.LeaveCollection.Find(ctx, bson.M{
		"userId": userID,
		"status": models.LeaveApproved,
	})
	if err != nil {
		return nil, fmt.Errorf("ไม่สามารถดึงใบลาได้: %v", err)
	}
	defer cursor.Close(ctx)

	var all []models.LeaveRecord
	if err := cursor.All(ctx, &all); err != nil {
		return nil, fmt.Errorf("ไม่สามารถถอดรหัสใบลาได้: %v", err)
	}

	var overlapping []models.LeaveRecord
	for _, lv := range all {
		if Overlaps(lv, from, to) {
			overlapping = append(overlapping, lv)
		}
	}
	return overlapping, nil
}

package attendance

import (
	"context"
	"time"

	DB "Backend-CampusPortal/src/database"
	"Backend-CampusPortal/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// state machine รายวัน: NotCheckedIn → CheckedIn → CheckedOut
// record ที่เช็คเอาท์แล้วถือว่า immutable สำหรับวันนั้น

// GuardCheckIn ตรวจ transition เช็คอินจาก record ที่มีอยู่ (nil = ยังไม่มี)
func GuardCheckIn(existing *models.CheckInRecord) error {
	if existing != nil {
		return models.ErrAlreadyCheckedIn
	}
	return nil
}

// GuardCheckOut ตรวจ transition เช็คเอาท์ และกันเวลาออกก่อนเวลาเข้า
func GuardCheckOut(existing *models.CheckInRecord, at time.Time) error {
	if existing == nil {
		return models.ErrNotCheckedInYet
	}
	if existing.IsCheckedOut() {
		return models.ErrAlreadyCheckedOut
	}
	if existing.CheckInTime != nil && at.Before(*existing.CheckInTime) {
		return models.NewValidationError("เวลาเช็คเอาท์ต้องไม่ก่อนเวลาเช็คอิน")
	}
	return nil
}

// CheckIn เช็คอินของวันนี้ให้อาจารย์หนึ่งคน
// ตรวจซ้ำกับ DB ตอน commit เสมอ ไม่เชื่อ state ฝั่ง client (กันกดซ้ำจากหลาย tab)
func CheckIn(ctx context.Context, facultyID string, at time.Time) (*models.CheckInRecord, error) {
	fID, err := primitive.ObjectIDFromHex(facultyID)
	if err != nil {
		return nil, models.NewValidationError("รหัสอาจารย์ไม่ถูกต้อง")
	}

	date := at.Format(dayLayout)

	// re-check ก่อน insert: race จากสองอุปกรณ์พร้อมกันยังเหลืออยู่ (ยอมรับ ไม่ได้แก้)
	existing, err := findCheckIn(ctx, fID, date)
	if err != nil {
		return nil, err
	}
	if err := GuardCheckIn(existing); err != nil {
		return nil, err
	}

	rec := models.CheckInRecord{
		ID:          primitive.NewObjectID(),
		FacultyID:   fID,
		Date:        date,
		CheckInTime: &at,
	}
	if _, err := DB.CheckInCollection.InsertOne(ctx, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// CheckOut ปิดวันของวันนี้ filter ฝั่ง Mongo บังคับ checkOutTime ยังว่างอยู่อีกชั้น
func CheckOut(ctx context.Context, facultyID string, at time.Time) (*models.CheckInRecord, error) {
	fID, err := primitive.ObjectIDFromHex(facultyID)
	if err != nil {
		return nil, models.NewValidationError("รหัสอาจารย์ไม่ถูกต้อง")
	}

	date := at.Format(dayLayout)

	existing, err := findCheckIn(ctx, fID, date)
	if err != nil {
		return nil, err
	}
	if err := GuardCheckOut(existing, at); err != nil {
		return nil, err
	}

	filter := bson.M{
		"facultyId":    fID,
		"date":         date,
		"checkOutTime": bson.M{"$exists": false},
	}
	res, err := DB.CheckInCollection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"checkOutTime": at}})
	if err != nil {
		return nil, err
	}
	if res.ModifiedCount == 0 {
		// มีใครปิดไปก่อนระหว่างอ่านกับเขียน
		return nil, models.ErrAlreadyCheckedOut
	}

	existing.CheckOutTime = &at
	return existing, nil
}

// TodayStatus สถานะ state machine ของวันนี้ ใช้โชว์ปุ่มบน dashboard
func TodayStatus(ctx context.Context, facultyID string, today string) (string, *models.CheckInRecord, error) {
	fID, err := primitive.ObjectIDFromHex(facultyID)
	if err != nil {
		return "", nil, models.NewValidationError("รหัสอาจารย์ไม่ถูกต้อง")
	}

	rec, err := findCheckIn(ctx, fID, today)
	if err != nil {
		return "", nil, err
	}
	switch {
	case rec == nil:
		return "NotCheckedIn", nil, nil
	case rec.IsCheckedOut():
		return "CheckedOut", rec, nil
	default:
		return "CheckedIn", rec, nil
	}
}

func findCheckIn(ctx context.Context, facultyID primitive.ObjectID, date string) (*models.CheckInRecord, error) {
	var rec models.CheckInRecord
	err := DB.CheckInCollection.FindOne(ctx, bson.M{"facultyId": facultyID, "date": date}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

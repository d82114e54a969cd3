package sessions

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

// MarkSessionRequest คำขอเช็คชื่อนักศึกษาหนึ่งคาบ
type MarkSessionRequest struct {
	FacultyID string            `json:"facultyId" validate:"required"`
	BatchID   string            `json:"batchId" validate:"required"`
	Subject   string            `json:"subject" validate:"required"`
	Date      string            `json:"date" validate:"required,datetime=2006-01-02"`
	SlotTime  string            `json:"slotTime" validate:"required"`
	Statuses  map[string]string `json:"statuses" validate:"required"` // studentId -> status
}

var allowedStatus = map[string]bool{
	"present": true,
	"absent":  true,
	"late":    true,
	"excused": true,
}

// RosterByBatch ดึงนักศึกษา active ของ batch เรียงตาม roll number
func RosterByBatch(ctx context.Context, batchID string) ([]models.Student, error) {
	bID, err := primitive.ObjectIDFromHex(batchID)
	if err != nil {
		return nil, models.NewValidationError("รหัส batch ไม่ถูกต้อง")
	}

	opts := options.Find().SetSort(bson.D{{Key: "rollNumber", Value: 1}, {Key: "regNumber", Value: 1}})
	cursor, err := DB.StudentCollection.Find(ctx, bson.M{"batchId": bID, "status": "active"}, opts)
	if err != nil {
		return nil, fmt.Errorf("ไม่สามารถดึงรายชื่อนักศึกษาได้: %v", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("ไม่สามารถถอดรหัสรายชื่อนักศึกษาได้: %v", err)
	}
	return students, nil
}

// MarkSession บันทึกคาบสอนพร้อมผลเช็คชื่อรายคน
//
// เขียนเอกสาร session กับ record รายนักศึกษาทั้งหมดใน transaction เดียว
// สำเร็จทั้งก้อนหรือไม่เขียนอะไรเลย ไม่มีคาบที่บันทึกครึ่งเดียว
func MarkSession(ctx context.Context, req MarkSessionRequest) (*models.TeachingSessionRecord, error) {
	if err := validate.Struct(req); err != nil {
		return nil, models.NewValidationError(fmt.Sprintf("ข้อมูลคาบสอนไม่ถูกต้อง: %v", err))
	}

	fID, err1 := primitive.ObjectIDFromHex(req.FacultyID)
	bID, err2 := primitive.ObjectIDFromHex(req.BatchID)
	if err1 != nil || err2 != nil {
		return nil, models.NewValidationError("รหัสไม่ถูกต้อง")
	}

	roster, err := RosterByBatch(ctx, req.BatchID)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, models.NewNotFoundError("ไม่พบนักศึกษาใน batch นี้")
	}

	now := time.Now()
	session := models.TeachingSessionRecord{
		ID:        primitive.NewObjectID(),
		FacultyID: fID,
		Date:      req.Date,
		Subject:   req.Subject,
		SlotTime:  req.SlotTime,
		CreatedAt: now,
	}

	var studentDocs []interface{}
	for _, st := range roster {
		status := req.Statuses[st.ID.Hex()]
		if status == "" {
			status = "present" // default เหมือน flow หน้าเช็คชื่อ
		}
		if !allowedStatus[status] {
			return nil, models.NewValidationError(fmt.Sprintf("สถานะ %q ไม่ถูกต้องสำหรับนักศึกษา %s", status, st.RegNumber))
		}

		session.Attendees = append(session.Attendees, models.SessionAttendee{
			StudentID: st.ID,
			Name:      st.Name,
			RegNumber: st.RegNumber,
			Status:    status,
		})
		if status == "present" || status == "late" {
			session.PresentCount++
		}

		studentDocs = append(studentDocs, models.StudentAttendanceRecord{
			ID:        primitive.NewObjectID(),
			SessionID: session.ID,
			StudentID: st.ID,
			BatchID:   bID,
			Date:      req.Date,
			Subject:   req.Subject,
			Status:    status,
			MarkedBy:  fID,
			CreatedAt: now,
		})
	}
	session.TotalStudents = len(session.Attendees)

	// batch name เก็บซ้ำใน session ไว้โชว์ตารางโดยไม่ต้อง join
	var batch models.Batch
	if err := DB.BatchCollection.FindOne(ctx, bson.M{"_id": bID}).Decode(&batch); err == nil {
		session.Batch = batch.Name
	}

	mongoSession, err := DB.GetClient().StartSession()
	if err != nil {
		return nil, fmt.Errorf("ไม่สามารถเริ่ม transaction ได้: %v", err)
	}
	defer mongoSession.EndSession(ctx)

	_, err = mongoSession.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := DB.TeachingSessionCollection.InsertOne(sc, session); err != nil {
			return nil, err
		}
		if _, err := DB.StudentAttendanceColl.InsertMany(sc, studentDocs); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return nil, fmt.Errorf("บันทึกการเช็คชื่อไม่สำเร็จ: %v", err)
	}

	return &session, nil
}

// ListSessions ดึงคาบสอนของอาจารย์ในช่วงวัน เรียงจากล่าสุด
func ListSessions(ctx context.Context, facultyID, from, to string) ([]models.TeachingSessionRecord, error) {
	fID, err := primitive.ObjectIDFromHex(facultyID)
	if err != nil {
		return nil, models.NewValidationError("รหัสอาจารย์ไม่ถูกต้อง")
	}

	filter := bson.M{"facultyId": fID}
	if from != "" && to != "" {
		filter["date"] = bson.M{"$gte": from, "$lte": to}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})
	cursor, err := DB.TeachingSessionCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("ไม่สามารถดึงคาบสอนได้: %v", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.TeachingSessionRecord
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("ไม่สามารถถอดรหัสคาบสอนได้: %v", err)
	}
	return sessions, nil
}

package workhours

import (
	"context"
	"fmt"
	"time"

	DB "Backend-CampusPortal/src/database"
	"Backend-CampusPortal/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// LogHoursRequest คำขอบันทึกชั่วโมงงานนอกการสอน
type LogHoursRequest struct {
	FacultyID     string  `json:"facultyId" validate:"required"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	ActivityType  string  `json:"activityType" validate:"required,oneof=Meeting Research Evaluation Mentoring Administrative Other"`
	DurationHours float64 `json:"durationHours" validate:"required,gt=0"`
	Description   string  `json:"description" validate:"required"`
}

// LogHours บันทึก work log ใหม่ duration ≤ 0 ถูกปัดตกที่นี่ ไม่มีทางหลุดไปถึง aggregator
func LogHours(ctx context.Context, req LogHoursRequest) (*models.WorkLogRecord, error) {
	if err := validate.Struct(req); err != nil {
		return nil, models.NewValidationError(fmt.Sprintf("ข้อมูล work log ไม่ถูกต้อง: %v", err))
	}

	fID, err := primitive.ObjectIDFromHex(req.FacultyID)
	if err != nil {
		return nil, models.NewValidationError("รหัสอาจารย์ไม่ถูกต้อง")
	}

	rec := models.WorkLogRecord{
		ID:            primitive.NewObjectID(),
		FacultyID:     fID,
		Date:          req.Date,
		ActivityType:  req.ActivityType,
		DurationHours: req.DurationHours,
		Description:   req.Description,
		Status:        "pending", // log ที่กรอกเองรออนุมัติ
		CreatedAt:     time.Now(),
	}
	if _, err := DB.WorkLogCollection.InsertOne(ctx, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListWorkLogs ดึง work log ของอาจารย์แบบแบ่งหน้า
func ListWorkLogs(ctx context.Context, facultyID string, params models.PaginationParams) (*models.PaginatedResponse, error) {
	fID, err := primitive.ObjectIDFromHex(facultyID)
	if err != nil {
		return nil, models.NewValidationError("รหัสอาจารย์ไม่ถูกต้อง")
	}

	filter := bson.M{"facultyId": fID}

	total, err := DB.WorkLogCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort := bson.D{}
	for field, order := range params.GetSortOrder() {
		sort = append(sort, bson.E{Key: field, Value: order})
	}
	opts := options.Find().SetSort(sort).SetSkip(params.GetSkip()).SetLimit(int64(params.Limit))

	cursor, err := DB.WorkLogCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("ไม่สามารถดึง work log ได้: %v", err)
	}
	defer cursor.Close(ctx)

	var logs []models.WorkLogRecord
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("ไม่สามารถถอดรหัส work log ได้: %v", err)
	}

	return models.NewPaginatedResponse(logs, total, params), nil
}

// FetchRange ดึงคาบสอนกับ work log ของอาจารย์ในช่วงวัน ใช้เป็น input ของ AggregateDaily
func FetchRange(ctx context.Context, facultyID primitive.ObjectID, from, to string) ([]models.TeachingSessionRecord, []models.WorkLogRecord, error) {
	filter := bson.M{
		"facultyId": facultyID,
		"date":      bson.M{"$gte": from, "$lte": to},
	}

	cursor, err := DB.TeachingSessionCollection.Find(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("ไม่สามารถดึงคาบสอนได้: %v", err)
	}
	var sessions []models.TeachingSessionRecord
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, nil, fmt.Errorf("ไม่สามารถถอดรหัสคาบสอนได้: %v", err)
	}

	cursor, err = DB.WorkLogCollection.Find(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("ไม่สามารถดึง work log ได้: %v", err)
	}
	var logs []models.WorkLogRecord
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, nil, fmt.Errorf("ไม่สามารถถอดรหัส work log ได้: %v", err)
	}

	return sessions, logs, nil
}

// AggregateRange ดึงแล้วรวมชั่วโมงรายวันในช่วง [from, to] แบบ dense ตาม days ที่ส่งมา
func AggregateRange(ctx context.Context, facultyID string, from, to string, days []string) ([]DayHours, error) {
	fID, err := primitive.ObjectIDFromHex(facultyID)
	if err != nil {
		return nil, models.NewValidationError("รหัสอาจารย์ไม่ถูกต้อง")
	}

	sessions, logs, err := FetchRange(ctx, fID, from, to)
	if err != nil {
		return nil, err
	}

	return AggregateDaily(sessions, logs, days, LoadConfig()), nil
}

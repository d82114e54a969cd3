package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	DB "Backend-CampusPortal/src/database"
	"Backend-CampusPortal/src/models"
	"Backend-CampusPortal/src/services/workhours"
	"Backend-CampusPortal/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaveSource แหล่งใบลาที่อนุมัติแล้ว แยกเป็น interface เพื่อให้สลับ
// การกรองใน memory เป็น range query ฝั่ง server ได้โดยไม่แตะ resolver
type LeaveSource interface {
	ApprovedOverlapping(ctx context.Context, userID primitive.ObjectID, from, to string) ([]models.LeaveRecord, error)
}

var leaveSource LeaveSource

// SetLeaveSource ตั้งแหล่งใบลา เรียกครั้งเดียวตอน wiring ใน services init
func SetLeaveSource(src LeaveSource) {
	leaveSource = src
}

// ResolveMonthStatuses คำนวณสถานะรายวันทั้งเดือนของอาจารย์หนึ่งคน
// pipeline นี้อ่านอย่างเดียวแล้วคำนวณ เรียกซ้ำได้ปลอดภัย
func ResolveMonthStatuses(ctx context.Context, facultyID string, month string) ([]models.DayStatus, error) {
	fID, err := primitive.ObjectIDFromHex(facultyID)
	if err != nil {
		return nil, models.NewValidationError("รหัสอาจารย์ไม่ถูกต้อง")
	}

	year, m, err := ParseMonth(month)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	days := MonthDays(year, m)
	first := days[0].Date
	last := days[len(days)-1].Date

	// 1) check-in ทั้งเดือน
	cursor, err := DB.CheckInCollection.Find(ctx, bson.M{
		"facultyId": fID,
		"date":      bson.M{"$gte": first, "$lte": last},
	})
	if err != nil {
		return nil, fmt.Errorf("ไม่สามารถดึงข้อมูลเช็คชื่อได้: %v", err)
	}
	var checkIns []models.CheckInRecord
	if err := cursor.All(ctx, &checkIns); err != nil {
		return nil, fmt.Errorf("ไม่สามารถถอดรหัสข้อมูลเช็คชื่อได้: %v", err)
	}
	checkInByDate := make(map[string]models.CheckInRecord, len(checkIns))
	for _, c := range checkIns {
		checkInByDate[c.Date] = c
	}

	// 2) ใบลาอนุมัติแล้วที่คาบเกี่ยวเดือนนี้
	leaves, err := leaveSource.ApprovedOverlapping(ctx, fID, first, last)
	if err != nil {
		return nil, err
	}

	// 3) วันหยุดสถาบัน
	holidays, err := fetchHolidays(ctx, first, last)
	if err != nil {
		return nil, err
	}

	statuses := ResolveDays(days, ResolveInput{
		Today:    time.Now().Format(dayLayout),
		CheckIns: checkInByDate,
		Leaves:   leaves,
		Holidays: holidays,
	})

	// 4) เติมชั่วโมงงานรายวันลงในแต่ละ DayStatus
	sessions, logs, err := workhours.FetchRange(ctx, fID, first, last)
	if err != nil {
		return nil, err
	}
	dayKeys := make([]string, len(days))
	for i, d := range days {
		dayKeys[i] = d.Date
	}
	hours := workhours.AggregateDaily(sessions, logs, dayKeys, workhours.LoadConfig())
	MergeHours(statuses, hours)

	return statuses, nil
}

// MergeHours เติม DayHours ลง DayStatus ตามวัน ลำดับทั้งสองฝั่งต้องเป็นเดือนเดียวกัน
func MergeHours(statuses []models.DayStatus, hours []workhours.DayHours) {
	byDate := make(map[string]workhours.DayHours, len(hours))
	for _, h := range hours {
		byDate[h.Date] = h
	}
	for i := range statuses {
		if h, ok := byDate[statuses[i].Date]; ok {
			statuses[i].TeachingHours = h.TeachingHours
			statuses[i].NonTeachingHours = h.NonTeachingHours
			statuses[i].TotalHours = h.TotalHours
			statuses[i].OvertimeHours = h.OvertimeHours
		}
	}
}

// MonthlySummary สรุปรายเดือน ลองอ่านจาก Redis cache ก่อน คำนวณใหม่เมื่อ cache miss
func MonthlySummary(ctx context.Context, facultyID string, month string) (*models.MonthlySummary, error) {
	if cached, err := utils.GetCachedMonthlySummary(facultyID, month); err == nil && cached != nil {
		var sum models.MonthlySummary
		if err := json.Unmarshal(cached, &sum); err == nil {
			return &sum, nil
		}
	}

	sum, err := ComputeMonthlySummary(ctx, facultyID, month)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(sum); err == nil {
		if err := utils.CacheMonthlySummary(facultyID, month, data); err != nil {
			log.Println("⚠️ Failed to cache monthly summary:", err)
		}
	}
	return sum, nil
}

// ComputeMonthlySummary คำนวณสรุปรายเดือนสดจาก DB ข้าม cache ใช้จาก rollup worker ด้วย
func ComputeMonthlySummary(ctx context.Context, facultyID string, month string) (*models.MonthlySummary, error) {
	statuses, err := ResolveMonthStatuses(ctx, facultyID, month)
	if err != nil {
		return nil, err
	}
	sum := SummarizeMonth(month, statuses)
	return &sum, nil
}

func fetchHolidays(ctx context.Context, from, to string) (map[string]string, error) {
	cursor, err := DB.HolidayCollection.Find(ctx, bson.M{"date": bson.M{"$gte": from, "$lte": to}})
	if err != nil {
		return nil, fmt.Errorf("ไม่สามารถดึงวันหยุดได้: %v", err)
	}
	defer cursor.Close(ctx)

	var holidays []models.Holiday
	if err := cursor.All(ctx, &holidays); err != nil {
		return nil, fmt.Errorf("ไม่สามารถถอดรหัสวันหยุดได้: %v", err)
	}

	byDate := make(map[string]string, len(holidays))
	for _, h := range holidays {
		byDate[h.Date] = h.Name
	}
	return byDate, nil
}

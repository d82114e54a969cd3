package attendance

import (
	"time"

	"Backend-CampusPortal/src/models"
)

// ResolveInput ข้อมูลประกอบการตัดสินสถานะรายวัน เตรียมโดยฝั่ง service
type ResolveInput struct {
	Today    string                           // "2006-01-02" วันปัจจุบัน
	CheckIns map[string]models.CheckInRecord  // key = date
	Leaves   []models.LeaveRecord             // เฉพาะ approved เท่านั้นที่มีผล
	Holidays map[string]string                // date -> ชื่อวันหยุด
}

// ResolveDayStatus ตัดสินสถานะหนึ่งวันตามลำดับความสำคัญ
//  1. มี check-in → present (ชนะใบลาเสมอ ดู open question ใน DESIGN.md)
//  2. อยู่ในช่วงลาที่อนุมัติแล้ว → leave
//  3. วันหยุดสถาบัน → holiday
//  4. เสาร์-อาทิตย์ → weekend
//  5. วันอนาคต → upcoming
//  6. ที่เหลือ → absent
//
// การเทียบช่วงลาใช้ string ระดับวัน ไม่ใช้ timestamp กัน off-by-one จาก timezone
func ResolveDayStatus(day CalendarDay, in ResolveInput) models.DayStatus {
	ds := models.DayStatus{
		Date:    day.Date,
		Weekday: day.Weekday.String(),
	}

	if rec, ok := in.CheckIns[day.Date]; ok {
		ds.Status = models.StatusPresent
		if rec.CheckOutTime == nil {
			ds.Notes = "ยังไม่ได้เช็คเอาท์"
		}
		return ds
	}

	for _, lv := range in.Leaves {
		if lv.Status == models.LeaveApproved && lv.ContainsDay(day.Date) {
			ds.Status = models.StatusLeave
			ds.Notes = lv.Reason
			return ds
		}
	}

	if name, ok := in.Holidays[day.Date]; ok {
		ds.Status = models.StatusHoliday
		ds.Notes = name
		return ds
	}

	if day.Weekday == time.Saturday || day.Weekday == time.Sunday {
		ds.Status = models.StatusWeekend
		return ds
	}

	if day.Date > in.Today {
		ds.Status = models.StatusUpcoming
		return ds
	}

	ds.Status = models.StatusAbsent
	return ds
}

// ResolveDays ตัดสินสถานะทุกวันในลำดับ ได้ output หนึ่งรายการต่อวันเสมอ
func ResolveDays(days []CalendarDay, in ResolveInput) []models.DayStatus {
	statuses := make([]models.DayStatus, 0, len(days))
	for _, day := range days {
		statuses = append(statuses, ResolveDayStatus(day, in))
	}
	return statuses
}

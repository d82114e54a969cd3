package attendance

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// CalendarDay หนึ่งวันปฏิทินพร้อมวันในสัปดาห์
type CalendarDay struct {
	Date    string // "2006-01-02"
	Weekday time.Weekday
}

// ParseMonth แปลง "2006-01" เป็น year/month
func ParseMonth(month string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, 0, fmt.Errorf("รูปแบบเดือนไม่ถูกต้อง (ต้องเป็น YYYY-MM): %v", err)
	}
	return t.Year(), t.Month(), nil
}

// MonthDays สร้างทุกวันในเดือนเรียงตามลำดับ (28-31 วัน)
// ใช้ time.Date เดินทีละวัน ให้ standard library จัดการปีอธิกสุรทินและขอบเดือนเอง
func MonthDays(year int, month time.Month) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]CalendarDay, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, CalendarDay{
			Date:    d.Format(dayLayout),
			Weekday: d.Weekday(),
		})
	}
	return days
}

// DaysBetween สร้างทุกวันในช่วง [from, to] แบบรวมปลาย สำหรับ aggregation ข้ามเดือน
func DaysBetween(from, to string) ([]CalendarDay, error) {
	start, err := time.Parse(dayLayout, from)
	if err != nil {
		return nil, fmt.Errorf("รูปแบบวันที่ไม่ถูกต้อง: %v", err)
	}
	end, err := time.Parse(dayLayout, to)
	if err != nil {
		return nil, fmt.Errorf("รูปแบบวันที่ไม่ถูกต้อง: %v", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("วันสิ้นสุดต้องไม่ก่อนวันเริ่มต้น")
	}

	var days []CalendarDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, CalendarDay{Date: d.Format(dayLayout), Weekday: d.Weekday()})
	}
	return days, nil
}

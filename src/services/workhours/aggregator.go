package workhours

import (
	"sort"

	"Backend-CampusPortal/src/models"
)

// DayHours ชั่วโมงงานรวมของหนึ่งวัน
type DayHours struct {
	Date             string  `json:"date"`
	SessionCount     int     `json:"sessionCount"`
	TeachingHours    float64 `json:"teachingHours"`
	NonTeachingHours float64 `json:"nonTeachingHours"`
	TotalHours       float64 `json:"totalHours"`
	OvertimeHours    float64 `json:"overtimeHours"`
}

// AggregateDaily รวมคาบสอนกับ work log เป็นชั่วโมงรายวัน
//
// ถ้าส่ง days มา output จะครบทุกวันตามนั้น (วันที่ไม่มี record ได้ศูนย์ ไม่หายเงียบ)
// ถ้า days ว่าง จะได้เฉพาะวันที่มี record เรียงตามวันที่
//
// teachingHours คิดจากจำนวนคาบ × SessionHours ยกเว้น record ที่ระบุ duration มาเอง
// overtime = max(0, total − StandardDayHours)
func AggregateDaily(sessions []models.TeachingSessionRecord, logs []models.WorkLogRecord, days []string, cfg Config) []DayHours {
	byDate := make(map[string]*DayHours)

	get := func(date string) *DayHours {
		if dh, ok := byDate[date]; ok {
			return dh
		}
		dh := &DayHours{Date: date}
		byDate[date] = dh
		return dh
	}

	for _, s := range sessions {
		dh := get(s.Date)
		dh.SessionCount++
		if s.DurationHours != nil {
			dh.TeachingHours += *s.DurationHours
		} else {
			dh.TeachingHours += cfg.SessionHours
		}
	}

	for _, l := range logs {
		// log ที่ duration ไม่บวกต้องถูกปัดตกตั้งแต่ตอนรับข้อมูลแล้ว ข้ามซ้ำอีกชั้นกันข้อมูลเก่า
		if l.DurationHours <= 0 {
			continue
		}
		get(l.Date).NonTeachingHours += l.DurationHours
	}

	var ordered []string
	if len(days) > 0 {
		ordered = days
	} else {
		for date := range byDate {
			ordered = append(ordered, date)
		}
		sort.Strings(ordered)
	}

	out := make([]DayHours, 0, len(ordered))
	for _, date := range ordered {
		dh := get(date)
		dh.TotalHours = dh.TeachingHours + dh.NonTeachingHours
		if over := dh.TotalHours - cfg.StandardDayHours; over > 0 {
			dh.OvertimeHours = over
		}
		out = append(out, *dh)
	}
	return out
}

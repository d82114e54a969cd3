package workhours

import (
	"os"
	"strconv"
)

// Config ค่าคงที่การคิดชั่วโมง inject เข้า aggregator ไม่ hardcode ในสูตร
type Config struct {
	SessionHours     float64 // ชั่วโมงต่อคาบสอน เมื่อ record ไม่ระบุ duration เอง
	StandardDayHours float64 // เกณฑ์ชั่วโมงงานต่อวัน ส่วนเกินนับเป็น overtime
}

// DefaultConfig ค่าที่สถาบันใช้จริง คาบละ 1.5 ชม. วันละ 8 ชม.
func DefaultConfig() Config {
	return Config{SessionHours: 1.5, StandardDayHours: 8}
}

// LoadConfig อ่านค่าจาก env ถ้าไม่ตั้งหรือ parse ไม่ได้ใช้ค่า default
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("SESSION_HOURS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.SessionHours = f
		}
	}
	if v := os.Getenv("STANDARD_DAY_HOURS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.StandardDayHours = f
		}
	}
	return cfg
}

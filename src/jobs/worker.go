package jobs

import (
	"context"
	"encoding/json"
	"log"

	DB "Backend-CampusPortal/src/database"
	"Backend-CampusPortal/src/services/attendance"
	"Backend-CampusPortal/src/utils"

	"github.com/hibiken/asynq"
)

// HandleMonthlyRollupTask คำนวณสรุปรายเดือนสดแล้วเขียนทับ cache
// เรียกหลังเช็คเอาท์เพื่อให้ dashboard เห็นตัวเลขล่าสุดโดยไม่ต้องรอ cache หมดอายุ
func HandleMonthlyRollupTask(ctx context.Context, t *asynq.Task) error {
	var payload MonthlyRollupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	sum, err := attendance.ComputeMonthlySummary(ctx, payload.FacultyID, payload.Month)
	if err != nil {
		log.Println("❌ Failed to compute monthly summary:", err)
		return err
	}

	data, err := json.Marshal(sum)
	if err != nil {
		return err
	}
	if err := utils.CacheMonthlySummary(payload.FacultyID, payload.Month, data); err != nil {
		log.Println("❌ Failed to cache monthly summary:", err)
		return err
	}

	log.Printf("✅ Monthly summary refreshed: faculty=%s month=%s", payload.FacultyID, payload.Month)
	return nil
}

// StartWorker รัน asynq server ใน goroutine แยก ถ้าไม่มี Redis จะไม่รัน
func StartWorker() {
	if DB.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMonthlyRollup, HandleMonthlyRollupTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatal("❌ Asynq worker error:", err)
		}
	}()
	log.Println("✅ Background worker started")
}

package jobs

import (
	"log"

	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/database"

	"github.com/hibiken/asynq"
)

// StartWorker รัน asynq worker ใน goroutine แยก
// ถ้าไม่มี Redis ระบบหลักยังทำงานได้ แค่ไม่มีงานตั้งเวลาอัตโนมัติ
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Scheduled jobs are disabled.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCloseRound, HandleCloseRoundTask)
	mux.HandleFunc(TypeCloseRegistration, HandleCloseRegistrationTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Asynq worker started")
}

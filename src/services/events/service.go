package events

import (
	"context"
	"errors"
	"log"
	"time"

	DB "github.com/Thiraphat-tony/seminar-checkin-sub000/src/database"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/jobs"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("ไม่พบงานสัมมนา")
	ErrForbidden = errors.New("ต้องเป็น super admin เท่านั้น")
)

// Create สร้างงานสัมมนาใหม่ (super admin เท่านั้น)
func Create(scope models.StaffScope, event *models.Event) error {
	if scope.Role != models.RoleSuperAdmin {
		return ErrForbidden
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event.ID = primitive.NewObjectID()
	event.CheckinRoundOpen = 0
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt

	_, err := DB.EventCollection.InsertOne(ctx, event)
	return err
}

// GetByID อ่านงานสัมมนาหนึ่งงาน
func GetByID(id string) (*models.Event, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var event models.Event
	if err := DB.EventCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&event); err != nil {
		return nil, ErrNotFound
	}
	return &event, nil
}

// GetAll รายการงานทั้งหมด (งานมีไม่กี่รายการ ไม่ต้องแบ่งหน้า)
func GetAll() ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := DB.EventCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Event
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateSettings แก้ settings ของงาน — เฉพาะ super admin
// ค่า round ถูกบีบเข้า {0..3} ก่อนเก็บเสมอ
func UpdateSettings(scope models.StaffScope, id string, req *models.EventSettingsUpdate) (*models.Event, error) {
	if scope.Role != models.RoleSuperAdmin {
		return nil, ErrForbidden
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.RegistrationOpen != nil {
		set["registrationOpen"] = *req.RegistrationOpen
	}
	if req.CheckinOpen != nil {
		set["checkinOpen"] = *req.CheckinOpen
	}
	if req.CheckinRoundOpen != nil {
		round := *req.CheckinRoundOpen
		if round < 0 || round > 3 {
			round = 0
		}
		set["checkinRoundOpen"] = round
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.EventCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return GetByID(id)
}

// ScheduleRoundClose ตั้งเวลาปิดรอบเช็คอินอัตโนมัติผ่าน asynq
// ถ้าไม่มี Redis จะแจ้งเตือนแล้วข้าม (เจ้าหน้าที่ปิดมือได้เสมอ)
func ScheduleRoundClose(scope models.StaffScope, id string, at time.Time) error {
	if scope.Role != models.RoleSuperAdmin {
		return ErrForbidden
	}
	if _, err := GetByID(id); err != nil {
		return err
	}
	if DB.AsynqClient == nil {
		log.Println("⚠️ [ScheduleRoundClose] Asynq not available, skipping schedule")
		return nil
	}

	task, err := jobs.NewCloseRoundTask(id)
	if err != nil {
		return err
	}
	info, err := DB.AsynqClient.Enqueue(task, asynq.ProcessAt(at))
	if err != nil {
		return err
	}
	log.Printf("✅ [ScheduleRoundClose] queued task=%s event=%s at=%s", info.ID, id, at.Format(time.RFC3339))
	return nil
}

// ScheduleRegistrationClose ตั้งเวลาปิดรับลงทะเบียนอัตโนมัติ
func ScheduleRegistrationClose(scope models.StaffScope, id string, at time.Time) error {
	if scope.Role != models.RoleSuperAdmin {
		return ErrForbidden
	}
	if _, err := GetByID(id); err != nil {
		return err
	}
	if DB.AsynqClient == nil {
		log.Println("⚠️ [ScheduleRegistrationClose] Asynq not available, skipping schedule")
		return nil
	}

	task, err := jobs.NewCloseRegistrationTask(id)
	if err != nil {
		return err
	}
	info, err := DB.AsynqClient.Enqueue(task, asynq.ProcessAt(at))
	if err != nil {
		return err
	}
	log.Printf("✅ [ScheduleRegistrationClose] queued task=%s event=%s at=%s", info.ID, id, at.Format(time.RFC3339))
	return nil
}

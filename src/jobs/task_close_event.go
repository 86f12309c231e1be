package jobs

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/database"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleCloseRoundTask ปิดรอบเช็คอินที่เปิดอยู่ (checkinRoundOpen → 0)
func HandleCloseRoundTask(ctx context.Context, t *asynq.Task) error {
	var payload EventPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.EventID)
	if err != nil {
		return err
	}

	// ✅ ตรวจสอบว่า event ยังมีอยู่ไหม
	err = database.EventCollection.FindOne(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Event not found. Possibly deleted. Skipping task:", id.Hex())
			return nil // ✅ ไม่ถือว่า error
		}
		return err
	}

	_, err = database.EventCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"checkinRoundOpen": 0}},
	)
	if err != nil {
		log.Println("❌ Failed to close check-in round:", err)
		return err
	}

	log.Println("✅ Check-in round auto-closed:", id.Hex())
	return nil
}

// HandleCloseRegistrationTask ปิดรับลงทะเบียนเมื่อถึงกำหนดเวลา
func HandleCloseRegistrationTask(ctx context.Context, t *asynq.Task) error {
	var payload EventPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.EventID)
	if err != nil {
		return err
	}

	_, err = database.EventCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"registrationOpen": false}},
	)
	if err == nil {
		log.Println("✅ Registration auto-closed after deadline:", payload.EventID)
	}
	return err
}

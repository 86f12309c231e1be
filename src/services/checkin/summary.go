package checkin

import (
	"context"
	"time"

	DB "github.com/Thiraphat-tony/seminar-checkin-sub000/src/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoundSummary ยอดเช็คอินรายรอบของงานหนึ่ง สำหรับหน้า dashboard
// ส่งเป็นตัวเลขล้วน ๆ — การทำกราฟ/รายงานเป็นเรื่องของ frontend
type RoundSummary struct {
	EventID    string        `json:"eventId"`
	Registered int64         `json:"registered"`
	Rounds     map[int]int64 `json:"rounds"` // round → จำนวนที่เช็คอินแล้ว
}

// GetRoundSummary นับยอดลงทะเบียนและยอดเช็คอินต่อรอบ
func GetRoundSummary(eventID string) (*RoundSummary, error) {
	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, ErrEventNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	registered, err := DB.AttendeeCollection.CountDocuments(ctx, bson.M{"eventId": objID})
	if err != nil {
		return nil, err
	}

	summary := &RoundSummary{
		EventID:    eventID,
		Registered: registered,
		Rounds:     make(map[int]int64, MaxRound),
	}
	for round := 1; round <= MaxRound; round++ {
		count, err := DB.CheckinCollection.CountDocuments(ctx, bson.M{"eventId": objID, "round": round})
		if err != nil {
			return nil, err
		}
		summary.Rounds[round] = count
	}
	return summary, nil
}

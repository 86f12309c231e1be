package checkin

import (
	"context"
	"errors"

	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error จากชั้น store ที่ protocol ต้องแยกแยะ
var (
	// ErrNotFound คืนจาก store เมื่อไม่พบเอกสารที่ค้นหา
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateRound คืนจาก LedgerStore.Insert เมื่อชน unique index
	// (attendeeId, round) — protocol ตีความว่า "เช็คอินรอบนี้ไปแล้ว" ไม่ใช่ error
	ErrDuplicateRound = errors.New("checkin record already exists for this round")
)

// AttendeeStore การอ่าน/แก้ไขผู้เข้าร่วมเท่าที่ protocol เช็คอินต้องใช้
type AttendeeStore interface {
	FindByTicketToken(ctx context.Context, token string) (*models.Attendee, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Attendee, error)
	UpdateFoodType(ctx context.Context, id primitive.ObjectID, foodType string) error
}

// EventStore การอ่าน event สำหรับตรวจนโยบายเปิดรับเช็คอิน
type EventStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
}

// LedgerStore แถวเช็คอินดิบใน attendee_checkins
// Insert ต้องคืน ErrDuplicateRound เมื่อมีแถว (attendeeId, round) อยู่แล้ว
type LedgerStore interface {
	Insert(ctx context.Context, rec *models.CheckinRecord) error
	Find(ctx context.Context, attendeeID primitive.ObjectID, round int) (*models.CheckinRecord, error)
	FindAll(ctx context.Context, attendeeID primitive.ObjectID) ([]models.CheckinRecord, error)
	Delete(ctx context.Context, attendeeID primitive.ObjectID, round int) (int64, error)
	DeleteAll(ctx context.Context, attendeeID primitive.ObjectID) (int64, error)
}

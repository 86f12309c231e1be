package checkin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	DB "github.com/Thiraphat-tony/seminar-checkin-sub000/src/database"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// สถานะผลลัพธ์ของ protocol — client แยก branch จากค่านี้ ไม่ใช่จากข้อความ
const (
	StatusCheckedIn        = "checked_in"
	StatusAlreadyCheckedIn = "already_checked_in"
	StatusClosed           = "closed"
	StatusRoundNotOpen     = "round_not_open"
	StatusInvalid          = "invalid"
	StatusNotFound         = "not_found"
	StatusRateLimited      = "rate_limited"
)

// sub-code สำหรับ StatusInvalid
const CodeEventIDRequired = "EVENT_ID_REQUIRED"

// ข้อความภาษาไทยสำหรับแสดงผลเท่านั้น
var statusMessages = map[string]string{
	StatusCheckedIn:        "เช็คอินสำเร็จ",
	StatusAlreadyCheckedIn: "ท่านได้เช็คอินรอบนี้ไปแล้ว",
	StatusClosed:           "ยังไม่เปิดให้เช็คอิน",
	StatusRoundNotOpen:     "ยังไม่เปิดรอบเช็คอิน กรุณารอประกาศ",
	StatusInvalid:          "ข้อมูลไม่ถูกต้อง",
	StatusNotFound:         "ไม่พบข้อมูลการลงทะเบียน กรุณาตรวจสอบลิงก์บัตรของท่าน",
	StatusRateLimited:      "มีการเรียกใช้งานถี่เกินไป กรุณารอสักครู่",
}

// Error ที่ controller ใช้ map เป็น HTTP response
var (
	// ErrTokenNotFound ครอบทั้ง "ไม่พบ token" และ "token เทียบไม่ตรง"
	// จงใจไม่แยกสองกรณีเพื่อไม่ให้ใช้เป็น oracle เดา token
	ErrTokenNotFound    = errors.New(statusMessages[StatusNotFound])
	ErrEventRequired    = errors.New("ต้องระบุงานสัมมนา")
	ErrEventNotFound    = errors.New("ไม่พบงานสัมมนา")
	ErrAttendeeNotFound = errors.New("ไม่พบผู้เข้าร่วม")
	ErrInvalidRound     = errors.New("รอบเช็คอินไม่ถูกต้อง (ต้องเป็น 1-3 หรือ all)")
)

// RateLimitedError แนบ retry-after ให้ client
type RateLimitedError struct {
	RetryAfter int // วินาที
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("%s (retry in %ds)", statusMessages[StatusRateLimited], e.RetryAfter)
}

// Service คือ protocol การเช็คอินทั้ง self-service และ staff override
// store ทุกตัว inject ได้เพื่อใช้ mock ในเทสต์
type Service struct {
	Attendees      AttendeeStore
	Events         EventStore
	Ledger         *Ledger
	Limiter        *RateLimiter
	DefaultEventID string
}

// NewService ประกอบ Service จาก MongoDB + Redis ที่ init แล้ว
func NewService() *Service {
	return &Service{
		Attendees:      &MongoAttendeeStore{Col: DB.AttendeeCollection},
		Events:         &MongoEventStore{Col: DB.EventCollection},
		Ledger:         NewLedger(&MongoLedgerStore{Col: DB.CheckinCollection}),
		Limiter:        NewRateLimiter(&RedisCounterStore{Client: DB.RedisClient}),
		DefaultEventID: os.Getenv("DEFAULT_EVENT_ID"),
	}
}

// SelfCheckinRequest คำขอเช็คอินด้วยตนเองผ่าน ticket token
type SelfCheckinRequest struct {
	TicketToken string `json:"ticketToken"`
	EventID     string `json:"eventId,omitempty"`
	FoodType    string `json:"foodType,omitempty"` // อัปเดตแบบ best-effort พร้อมเช็คอิน
	ClientIP    string `json:"-"`
}

// CheckinResult ผลลัพธ์ของการเช็คอิน self-service
type CheckinResult struct {
	Status      string     `json:"status"`
	Code        string     `json:"code,omitempty"`
	Message     string     `json:"message"`
	Round       int        `json:"round,omitempty"`
	CheckedInAt *time.Time `json:"checkedInAt,omitempty"`
	RetryAfter  int        `json:"retryAfter,omitempty"`
}

func refusal(status, code string) *CheckinResult {
	return &CheckinResult{Status: status, Code: code, Message: statusMessages[status]}
}

// SelfCheckin เช็คอินรอบที่เปิดอยู่ให้ผู้ถือ ticket token
// ทุก path ที่ปฏิเสธ (ก่อนขั้น ledger) ไม่แตะฐานข้อมูลฝั่งเขียนเลย
func (s *Service) SelfCheckin(ctx context.Context, req SelfCheckinRequest) (*CheckinResult, error) {
	// 1) token ต้องไม่ว่าง
	token := strings.TrimSpace(req.TicketToken)
	if token == "" {
		return refusal(StatusInvalid, "TOKEN_REQUIRED"), nil
	}

	// 2) rate limit ต่อ IP และต่อ token — ต้องผ่านทั้งคู่
	if limited := s.checkRateLimits(ctx, req.ClientIP, token); limited != nil {
		return limited, nil
	}

	// 3) หา attendee จาก token (generic not found เสมอ)
	attendee, err := s.resolveAttendee(ctx, token)
	if err == ErrTokenNotFound {
		return refusal(StatusNotFound, ""), nil
	}
	if err != nil {
		return nil, err
	}

	// 4) หา event: จาก request → จาก attendee → จากค่า default ของระบบ
	eventID, err := s.resolveEventID(req.EventID, attendee)
	if err != nil {
		return refusal(StatusInvalid, CodeEventIDRequired), nil
	}

	// 5) โหลด event
	event, err := s.Events.FindByID(ctx, eventID)
	if err == ErrNotFound {
		return refusal(StatusNotFound, "EVENT_NOT_FOUND"), nil
	}
	if err != nil {
		return nil, err
	}

	// 6) ตรวจนโยบายเปิดรับเช็คอิน — ไม่ผ่านคือจบ ไม่เขียนอะไรทั้งนั้น
	if decision := IsAdmissible(event); !decision.Allowed {
		status := StatusClosed
		if decision.Reason == ReasonRoundNotOpen {
			status = StatusRoundNotOpen
		}
		return refusal(status, decision.Reason), nil
	}

	round := NormalizeRound(event.CheckinRoundOpen)

	// 7) เช็คอินรอบนี้ไปแล้ว → สำเร็จแบบ no-op
	if existing, err := s.Ledger.store.Find(ctx, attendee.ID, round); err == nil {
		t := existing.CheckedInAt
		return &CheckinResult{
			Status:      StatusAlreadyCheckedIn,
			Message:     statusMessages[StatusAlreadyCheckedIn],
			Round:       round,
			CheckedInAt: &t,
		}, nil
	} else if err != ErrNotFound {
		return nil, err
	}

	// 8) บันทึกรอบ (duplicate จากการ race → already_checked_in เช่นกัน)
	rec := &models.CheckinRecord{
		AttendeeID: attendee.ID,
		EventID:    event.ID,
		Round:      round,
		Source:     models.CheckinSourceSelf,
	}
	inserted, checkedInAt, err := s.Ledger.RecordRound(ctx, rec)
	if err != nil {
		return nil, err
	}

	// 9) อัปเดตประเภทอาหารแบบ best-effort — พลาดก็ไม่ทำให้เช็คอินล้ม
	if req.FoodType != "" {
		if err := s.Attendees.UpdateFoodType(ctx, attendee.ID, req.FoodType); err != nil {
			log.Printf("⚠️ [SelfCheckin] food update failed for %s: %v", attendee.ID.Hex(), err)
		}
	}

	status := StatusCheckedIn
	if !inserted {
		status = StatusAlreadyCheckedIn
	}
	return &CheckinResult{
		Status:      status,
		Message:     statusMessages[status],
		Round:       round,
		CheckedInAt: &checkedInAt,
	}, nil
}

// StatusResult ผลการสอบถามสถานะเช็คอินด้วย ticket token
type StatusResult struct {
	CheckinOpen      bool                   `json:"checkinOpen"`
	CheckinRoundOpen int                    `json:"checkinRoundOpen"`
	Allowed          bool                   `json:"allowed"`
	AlreadyCheckedIn bool                   `json:"alreadyCheckedIn"`
	CheckedInAt      *time.Time             `json:"checkedInAt,omitempty"`
	Rounds           models.RoundTimestamps `json:"rounds"`
}

// Status สอบถามสถานะโดยไม่เขียนอะไรเลย ใช้ rate limit ชุดเดียวกับการเช็คอิน
func (s *Service) Status(ctx context.Context, ticketToken, eventIDArg, clientIP string) (*StatusResult, error) {
	token := strings.TrimSpace(ticketToken)
	if token == "" {
		return nil, ErrTokenNotFound
	}

	if limited := s.checkRateLimits(ctx, clientIP, token); limited != nil {
		return nil, &RateLimitedError{RetryAfter: limited.RetryAfter}
	}

	attendee, err := s.resolveAttendee(ctx, token)
	if err != nil {
		return nil, err
	}

	eventID, err := s.resolveEventID(eventIDArg, attendee)
	if err != nil {
		return nil, ErrEventRequired
	}
	event, err := s.Events.FindByID(ctx, eventID)
	if err == ErrNotFound {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}

	rounds, err := s.Ledger.RoundsFor(ctx, attendee.ID)
	if err != nil {
		return nil, err
	}

	decision := IsAdmissible(event)
	openRound := NormalizeRound(event.CheckinRoundOpen)

	result := &StatusResult{
		CheckinOpen:      event.CheckinOpen,
		CheckinRoundOpen: openRound,
		Allowed:          decision.Allowed,
		Rounds:           rounds,
	}
	if openRound > 0 {
		if t := rounds.At(openRound); t != nil {
			result.AlreadyCheckedIn = true
			result.CheckedInAt = t
		}
	}
	return result, nil
}

// checkRateLimits คืน refusal result ถ้าเกิน limit (nil = ผ่าน)
func (s *Service) checkRateLimits(ctx context.Context, clientIP, token string) *CheckinResult {
	var worst RateLimitResult

	if clientIP != "" {
		res := s.Limiter.Check(ctx, "ip:"+clientIP, IPLimit, RateLimitWindow)
		if !res.Allowed {
			worst = res
		}
	}
	res := s.Limiter.Check(ctx, "token:"+token, TokenLimit, RateLimitWindow)
	if !res.Allowed && (worst.ResetAt.IsZero() || res.ResetAt.After(worst.ResetAt)) {
		worst = res
	}

	if worst.ResetAt.IsZero() {
		return nil
	}

	// log เป็น warning — เป็น noise ปกติของงานที่คนเยอะ ไม่ใช่ error
	log.Printf("⚠️ [RateLimiter] refused request (resetAt=%s)", worst.ResetAt.Format(time.RFC3339))
	out := refusal(StatusRateLimited, "")
	out.RetryAfter = worst.RetryAfter()
	return out
}

// resolveAttendee คือ Token Matcher: lookup แล้วเทียบซ้ำแบบ constant-time
// ทั้ง lookup พลาดและเทียบไม่ตรงให้ผลเดียวกัน (ErrTokenNotFound)
func (s *Service) resolveAttendee(ctx context.Context, token string) (*models.Attendee, error) {
	attendee, err := s.Attendees.FindByTicketToken(ctx, token)
	if err == ErrNotFound {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, err
	}
	if !utils.SecureTokenEqual(attendee.TicketToken, token) {
		return nil, ErrTokenNotFound
	}
	return attendee, nil
}

func (s *Service) resolveEventID(requested string, attendee *models.Attendee) (primitive.ObjectID, error) {
	if requested != "" {
		id, err := primitive.ObjectIDFromHex(requested)
		if err != nil {
			return primitive.NilObjectID, ErrEventRequired
		}
		return id, nil
	}
	if !attendee.EventID.IsZero() {
		return attendee.EventID, nil
	}
	if s.DefaultEventID != "" {
		if id, err := primitive.ObjectIDFromHex(s.DefaultEventID); err == nil {
			return id, nil
		}
	}
	return primitive.NilObjectID, ErrEventRequired
}

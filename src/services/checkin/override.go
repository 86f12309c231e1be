package checkin

import (
	"context"
	"strconv"
	"time"

	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OverrideResult ผลของ staff override (force check-in / uncheck)
// การเรียกซ้ำหลังมีผลแล้วต้องได้ success พร้อม flag บอกว่าไม่มีอะไรเปลี่ยน
type OverrideResult struct {
	Success          bool       `json:"success"`
	AlreadyCheckedIn bool       `json:"alreadyCheckedIn,omitempty"`
	AlreadyUnchecked bool       `json:"alreadyUnchecked,omitempty"`
	AllRoundsDone    bool       `json:"allRoundsDone,omitempty"`
	Round            int        `json:"round,omitempty"`
	RemovedCount     int64      `json:"removedCount"`
	CheckedInAt      *time.Time `json:"checkedInAt,omitempty"`
	Message          string     `json:"message"`
}

// roundArg ตีความพารามิเตอร์ round จากเจ้าหน้าที่: "1"-"3", "all",
// หรือว่าง/"auto" = ให้ระบบเลือกตามกติกาใน ledger
type roundArg struct {
	round int
	all   bool
	auto  bool
}

func parseRoundArg(arg string, allowAll bool) (roundArg, error) {
	switch arg {
	case "", "auto":
		return roundArg{auto: true}, nil
	case "all":
		if !allowAll {
			return roundArg{}, ErrInvalidRound
		}
		return roundArg{all: true}, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || NormalizeRound(n) == 0 {
		return roundArg{}, ErrInvalidRound
	}
	return roundArg{round: n}, nil
}

// loadScopedAttendee โหลดผู้เข้าร่วมและบังคับขอบเขตศาลของเจ้าหน้าที่
// ข้ามศาลได้ผลเป็น "ไม่พบ" เสมอ (ไม่เผยว่ามีตัวตน) ยกเว้น legacy bypass
// เมื่อ allowLegacyBypass เปิด
func (s *Service) loadScopedAttendee(ctx context.Context, scope models.StaffScope, attendeeID string, allowLegacyBypass bool) (*models.Attendee, error) {
	id, err := primitive.ObjectIDFromHex(attendeeID)
	if err != nil {
		return nil, ErrAttendeeNotFound
	}

	attendee, err := s.Attendees.FindByID(ctx, id)
	if err == ErrNotFound {
		return nil, ErrAttendeeNotFound
	}
	if err != nil {
		return nil, err
	}

	if scope.CanAccessCourt(attendee.CourtID) {
		return attendee, nil
	}
	if allowLegacyBypass && scope.HasLegacyProvinceBypass() {
		return attendee, nil
	}
	return nil, ErrAttendeeNotFound
}

// ForceCheckin เช็คอินแทนผู้เข้าร่วมโดยเจ้าหน้าที่
// ข้ามนโยบายเปิดรอบโดยตั้งใจ — ใช้แก้เคสที่ผู้เข้าร่วมพลาดเช็คอินเอง
// roundArg ว่าง = auto (รอบต่ำสุดที่ยังไม่เช็คอิน)
func (s *Service) ForceCheckin(ctx context.Context, scope models.StaffScope, attendeeID, round string) (*OverrideResult, error) {
	arg, err := parseRoundArg(round, false)
	if err != nil {
		return nil, err
	}

	attendee, err := s.loadScopedAttendee(ctx, scope, attendeeID, false)
	if err != nil {
		return nil, err
	}

	target := arg.round
	if arg.auto {
		rounds, err := s.Ledger.RoundsFor(ctx, attendee.ID)
		if err != nil {
			return nil, err
		}
		target = NextCheckinRound(rounds)
		if target == 0 {
			// ครบทั้งสามรอบแล้ว — ไม่ใช่ error และไม่เขียนอะไรเพิ่ม
			return &OverrideResult{
				Success:          true,
				AlreadyCheckedIn: true,
				AllRoundsDone:    true,
				Message:          "เช็คอินครบทุกรอบแล้ว",
			}, nil
		}
	}

	staffID := scope.StaffID
	rec := &models.CheckinRecord{
		AttendeeID: attendee.ID,
		EventID:    attendee.EventID,
		Round:      target,
		Source:     models.CheckinSourceStaff,
		StaffID:    &staffID,
	}
	inserted, checkedInAt, err := s.Ledger.RecordRound(ctx, rec)
	if err != nil {
		return nil, err
	}

	result := &OverrideResult{
		Success:     true,
		Round:       target,
		CheckedInAt: &checkedInAt,
		Message:     "เช็คอินรอบ " + strconv.Itoa(target) + " สำเร็จ",
	}
	if !inserted {
		result.AlreadyCheckedIn = true
		result.Message = "ผู้เข้าร่วมเช็คอินรอบ " + strconv.Itoa(target) + " ไปแล้ว"
	}
	return result, nil
}

// ForceUncheckin ถอนเช็คอินหนึ่งรอบ ("1"-"3"), ทุกรอบ ("all")
// หรือ auto (รอบล่าสุดที่มี) ถ้าไม่มีอะไรให้ถอนถือว่าสำเร็จแบบ no-op
// จุดนี้ยังเปิด legacy province bypass ตามพฤติกรรมระบบเดิม (ดู models.LegacyBypassProvince)
func (s *Service) ForceUncheckin(ctx context.Context, scope models.StaffScope, attendeeID, round string) (*OverrideResult, error) {
	arg, err := parseRoundArg(round, true)
	if err != nil {
		return nil, err
	}

	attendee, err := s.loadScopedAttendee(ctx, scope, attendeeID, true)
	if err != nil {
		return nil, err
	}

	if arg.all {
		removed, err := s.Ledger.RemoveAll(ctx, attendee.ID)
		if err != nil {
			return nil, err
		}
		return unchecked(removed, 0), nil
	}

	target := arg.round
	if arg.auto {
		rounds, err := s.Ledger.RoundsFor(ctx, attendee.ID)
		if err != nil {
			return nil, err
		}
		target = LatestPresentRound(rounds)
		if target == 0 {
			return unchecked(0, 0), nil
		}
	}

	removed, err := s.Ledger.RemoveRound(ctx, attendee.ID, target)
	if err != nil {
		return nil, err
	}
	return unchecked(removed, target), nil
}

func unchecked(removed int64, round int) *OverrideResult {
	result := &OverrideResult{
		Success:      true,
		Round:        round,
		RemovedCount: removed,
		Message:      "ถอนการเช็คอินสำเร็จ",
	}
	if removed == 0 {
		result.AlreadyUnchecked = true
		result.Message = "ไม่มีการเช็คอินให้ถอน"
	}
	return result
}

package checkin

import (
	"context"
	"time"

	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ledger บันทึกรอบเช็คอินของผู้เข้าร่วม (Round Ledger)
// ความถูกต้องภายใต้ concurrency พึ่ง unique index (attendeeId, round)
// ที่ฐานข้อมูล — ชั้นนี้ไม่ lock เอง แค่ตีความ duplicate-key เป็น no-op
type Ledger struct {
	store LedgerStore
}

func NewLedger(store LedgerStore) *Ledger {
	return &Ledger{store: store}
}

// HasRound ตรวจว่าผู้เข้าร่วมเช็คอินรอบนี้ไปแล้วหรือยัง
func (l *Ledger) HasRound(ctx context.Context, attendeeID primitive.ObjectID, round int) (bool, error) {
	_, err := l.store.Find(ctx, attendeeID, round)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RecordRound พยายามบันทึกรอบเช็คอิน timestamp เซ็ตฝั่ง server เสมอ
// ถ้าชน unique index (มีคนบันทึกตัดหน้า หรือเรียกซ้ำ) ถือว่าสำเร็จแบบ
// inserted=false และคืน timestamp ของแถวเดิม — ผู้เรียกห้ามรายงานเป็น error
func (l *Ledger) RecordRound(ctx context.Context, rec *models.CheckinRecord) (bool, time.Time, error) {
	rec.CheckedInAt = time.Now()

	err := l.store.Insert(ctx, rec)
	if err == nil {
		return true, rec.CheckedInAt, nil
	}
	if err != ErrDuplicateRound {
		return false, time.Time{}, err
	}

	existing, err := l.store.Find(ctx, rec.AttendeeID, rec.Round)
	if err != nil {
		return false, time.Time{}, err
	}
	return false, existing.CheckedInAt, nil
}

// RemoveRound ลบหนึ่งรอบ คืนจำนวนแถวที่ลบจริง (0 = ไม่มีอะไรให้ถอน)
func (l *Ledger) RemoveRound(ctx context.Context, attendeeID primitive.ObjectID, round int) (int64, error) {
	return l.store.Delete(ctx, attendeeID, round)
}

// RemoveAll ลบทุกรอบของผู้เข้าร่วม
func (l *Ledger) RemoveAll(ctx context.Context, attendeeID primitive.ObjectID) (int64, error) {
	return l.store.DeleteAll(ctx, attendeeID)
}

// RoundsFor สรุป ledger เป็น timestamp ต่อรอบ
// ถ้าพบรอบซ้ำ (ไม่ควรเกิดภายใต้ unique index) ใช้ timestamp ที่เก่ากว่า
func (l *Ledger) RoundsFor(ctx context.Context, attendeeID primitive.ObjectID) (models.RoundTimestamps, error) {
	recs, err := l.store.FindAll(ctx, attendeeID)
	if err != nil {
		return models.RoundTimestamps{}, err
	}

	var rounds models.RoundTimestamps
	for i := range recs {
		rec := &recs[i]
		slot := roundSlot(&rounds, rec.Round)
		if slot == nil {
			continue // ข้อมูลรอบเพี้ยน ข้าม
		}
		if *slot == nil || rec.CheckedInAt.Before(**slot) {
			t := rec.CheckedInAt
			*slot = &t
		}
	}
	return rounds, nil
}

func roundSlot(r *models.RoundTimestamps, round int) **time.Time {
	switch round {
	case 1:
		return &r.Round1At
	case 2:
		return &r.Round2At
	case 3:
		return &r.Round3At
	}
	return nil
}

// NextCheckinRound รอบถัดไปสำหรับ auto check-in:
// รอบเลขต่ำสุดที่ยังไม่เช็คอิน (0 = ครบทุกรอบแล้ว)
func NextCheckinRound(rounds models.RoundTimestamps) int {
	for round := 1; round <= MaxRound; round++ {
		if rounds.At(round) == nil {
			return round
		}
	}
	return 0
}

// LatestPresentRound รอบสำหรับ auto uncheck:
// รอบเลขสูงสุดที่เช็คอินแล้ว (ถอนรายการล่าสุดก่อน) 0 = ไม่มีเลย
func LatestPresentRound(rounds models.RoundTimestamps) int {
	for round := MaxRound; round >= 1; round-- {
		if rounds.At(round) != nil {
			return round
		}
	}
	return 0
}

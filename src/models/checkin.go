package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// แหล่งที่มาของการเช็คอิน
const (
	CheckinSourceSelf  = "self"  // ผู้เข้าร่วมเช็คอินเองผ่าน ticket token
	CheckinSourceStaff = "staff" // เจ้าหน้าที่เช็คอินแทน (force)
)

// CheckinRecord หนึ่งแถวต่อ (attendeeId, round) — unique index ที่ฐานข้อมูล
// เป็นตัวบังคับว่าเช็คอินซ้ำรอบเดิมไม่ได้
type CheckinRecord struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	AttendeeID  primitive.ObjectID  `bson:"attendeeId" json:"attendeeId"`
	EventID     primitive.ObjectID  `bson:"eventId" json:"eventId"`
	Round       int                 `bson:"round" json:"round"`
	CheckedInAt time.Time           `bson:"checkedInAt" json:"checkedInAt"`
	Source      string              `bson:"source" json:"source"`
	StaffID     *primitive.ObjectID `bson:"staffId,omitempty" json:"staffId,omitempty"`
}

// RoundTimestamps มุมมองสรุปของ ledger ต่อผู้เข้าร่วมหนึ่งคน
type RoundTimestamps struct {
	Round1At *time.Time `json:"round1At"`
	Round2At *time.Time `json:"round2At"`
	Round3At *time.Time `json:"round3At"`
}

// Any รายงานว่ามีการเช็คอินอย่างน้อยหนึ่งรอบหรือไม่
func (r RoundTimestamps) Any() bool {
	return r.Round1At != nil || r.Round2At != nil || r.Round3At != nil
}

// At คืน timestamp ของรอบที่ระบุ (nil ถ้ายังไม่เช็คอิน)
func (r RoundTimestamps) At(round int) *time.Time {
	switch round {
	case 1:
		return r.Round1At
	case 2:
		return r.Round2At
	case 3:
		return r.Round3At
	}
	return nil
}

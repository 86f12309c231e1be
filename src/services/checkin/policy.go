package checkin

import "github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"

// MaxRound จำนวนรอบเช็คอินสูงสุดต่องาน
const MaxRound = 3

// เหตุผลที่ admission ไม่ผ่าน
const (
	ReasonCheckinClosed = "CHECKIN_CLOSED"
	ReasonRoundNotOpen  = "ROUND_NOT_OPEN"
)

// AdmissionDecision ผลตัดสินว่าเปิดรับเช็คอินหรือไม่
type AdmissionDecision struct {
	Allowed bool
	Reason  string
}

// NormalizeRound บีบค่ารอบให้อยู่ใน {0..3}
// ค่านอกช่วงถือว่าปิด (0) เสมอ ไม่ใช่ error — กันข้อมูล settings เพี้ยน
func NormalizeRound(round int) int {
	if round < 1 || round > MaxRound {
		return 0
	}
	return round
}

// IsAdmissible ตัดสินจาก settings ของ event ว่ารับเช็คอิน self-service ได้หรือไม่
func IsAdmissible(event *models.Event) AdmissionDecision {
	if !event.CheckinOpen {
		return AdmissionDecision{Allowed: false, Reason: ReasonCheckinClosed}
	}
	if NormalizeRound(event.CheckinRoundOpen) == 0 {
		return AdmissionDecision{Allowed: false, Reason: ReasonRoundNotOpen}
	}
	return AdmissionDecision{Allowed: true}
}

package utils

import (
	"crypto/subtle"

	"github.com/google/uuid"
)

// NewTicketToken สร้าง ticket token ให้ผู้ลงทะเบียนหนึ่งคน
// ออกครั้งเดียวตอนลงทะเบียนและไม่เปลี่ยนอีก
func NewTicketToken() string {
	return uuid.NewString()
}

// SecureTokenEqual เปรียบเทียบ token แบบ constant-time
// ใช้หลัง lookup จากฐานข้อมูลอีกชั้น เพื่อไม่ให้เดาค่า token
// จากเวลาตอบกลับได้ (timing side-channel)
func SecureTokenEqual(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

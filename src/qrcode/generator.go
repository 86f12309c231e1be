package qrcode

import (
	"github.com/skip2/go-qrcode"
)

// GenerateTicketQR สร้าง QR ของ ticket token เป็น PNG bytes
// สำหรับแนบบนบัตรผู้เข้าร่วม — client สแกนแล้วได้ลิงก์เช็คอิน
func GenerateTicketQR(checkinURL string) ([]byte, error) {
	return qrcode.Encode(checkinURL, qrcode.Medium, 256)
}

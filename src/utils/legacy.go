package utils

// ตารางแปลงชื่อตำแหน่งงานที่เพี้ยนจากระบบเดิม (encoding พังตอน migrate
// ข้อมูลชุดแรก ทำให้บาง record เก็บเป็นตัวอักษรขยะ) ไม่ใช่ feature —
// เป็น lookup ครั้งเดียวสำหรับข้อมูลเก่าเท่านั้น ห้ามเพิ่ม key ใหม่
// นอกจากเจอข้อมูลเพี้ยนเพิ่มจากชุด import เดิม
var legacyPositionLabels = map[string]string{
	"??????????????":    "นิติกร",
	"????????????":      "เจ้าพนักงานคดี",
	"?????????????????": "ผู้อำนวยการ",
	"???????????????":   "เจ้าหน้าที่ศาลยุติธรรม",
	"??????????":        "ผู้พิพากษา",
}

// TranslatePositionLabel แปลงชื่อตำแหน่งจากข้อมูลเก่า
// ถ้าไม่อยู่ในตารางให้ส่งค่าเดิมกลับ (passthrough) และรายงานว่าไม่รู้จัก
func TranslatePositionLabel(raw string) (string, bool) {
	if canonical, ok := legacyPositionLabels[raw]; ok {
		return canonical, true
	}
	return raw, false
}

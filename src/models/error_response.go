package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
// Code เป็นรหัสสำหรับ client ใช้แยก branch ส่วน Message ไว้แสดงผลเท่านั้น
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

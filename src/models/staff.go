package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleStaff      = "staff"
	RoleSuperAdmin = "super_admin"
)

// StaffProfile เจ้าหน้าที่ประจำศาล (court) หรือ super admin
// super admin ไม่ผูกกับศาลใด (CourtID = nil)
type StaffProfile struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Email     string              `bson:"email" json:"email"`
	Password  string              `bson:"password,omitempty" json:"-"`
	Name      string              `bson:"name" json:"name"`
	Role      string              `bson:"role" json:"role"`
	CourtID   *primitive.ObjectID `bson:"courtId,omitempty" json:"courtId,omitempty"`
	Province  string              `bson:"province,omitempty" json:"province,omitempty"`
	IsActive  bool                `bson:"isActive" json:"isActive"`
	CreatedAt time.Time           `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// ScopeLevel ขอบเขตข้อมูลที่เจ้าหน้าที่เข้าถึงได้
type ScopeLevel int

const (
	ScopeOwnCourt ScopeLevel = iota // เห็นเฉพาะศาลตัวเอง
	ScopeAllCourts                  // super admin เห็นทุกศาล
)

// LegacyBypassProvince ข้อยกเว้นเดิมจากระบบก่อนหน้า: เจ้าหน้าที่จังหวัดนี้
// ลบ/ถอนเช็คอินข้ามศาลได้ ใช้เฉพาะจุดที่ระบบเดิมใช้เท่านั้น ห้ามขยาย
// TODO: ยืนยันกับ product owner ว่าจะคงสิทธิ์ข้ามศาลของสุราษฎร์ไว้หรือไม่
const LegacyBypassProvince = "สุราษฎร์"

// StaffScope ตัวตนของเจ้าหน้าที่ที่ resolve แล้ว ใช้กรองข้อมูลทุก operation
type StaffScope struct {
	StaffID  primitive.ObjectID
	Role     string
	CourtID  *primitive.ObjectID
	Province string
}

// DataScope แปลง role เป็นขอบเขตข้อมูล
func (s StaffScope) DataScope() ScopeLevel {
	if s.Role == RoleSuperAdmin {
		return ScopeAllCourts
	}
	return ScopeOwnCourt
}

// CanAccessCourt ตรวจว่า scope นี้แตะข้อมูลของศาล courtID ได้หรือไม่
func (s StaffScope) CanAccessCourt(courtID primitive.ObjectID) bool {
	if s.DataScope() == ScopeAllCourts {
		return true
	}
	return s.CourtID != nil && *s.CourtID == courtID
}

// HasLegacyProvinceBypass ข้อยกเว้นข้ามศาลเดิม (ดู LegacyBypassProvince)
func (s StaffScope) HasLegacyProvinceBypass() bool {
	return s.Province == LegacyBypassProvince
}

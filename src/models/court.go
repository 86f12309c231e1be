package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Court ศาล/หน่วยงานระดับจังหวัด เป็นขอบเขตสิทธิ์ของเจ้าหน้าที่
type Court struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code     string             `bson:"code" json:"code" validate:"required"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Province string             `bson:"province" json:"province" validate:"required"`
	// StaffQuota จำนวนบัญชีเจ้าหน้าที่สูงสุดต่อศาล (0 = ใช้ค่าเริ่มต้น)
	StaffQuota int `bson:"staffQuota,omitempty" json:"staffQuota,omitempty"`
}

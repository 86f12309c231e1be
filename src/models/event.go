package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event งานสัมมนาหนึ่งครั้ง (หนึ่ง instance ต่อการจัดงาน)
type Event struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Location         string             `bson:"location,omitempty" json:"location,omitempty"`
	RegistrationOpen bool               `bson:"registrationOpen" json:"registrationOpen"`
	CheckinOpen      bool               `bson:"checkinOpen" json:"checkinOpen"`
	// CheckinRoundOpen รอบที่เปิดเช็คอินอยู่ (0 = ยังไม่เปิดรอบใด, 1-3 = รอบที่เปิด)
	CheckinRoundOpen int       `bson:"checkinRoundOpen" json:"checkinRoundOpen"`
	CreatedAt        time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt        time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// EventSettingsUpdate ค่าที่ super admin แก้ไขได้จากหน้า settings
type EventSettingsUpdate struct {
	Name             *string `json:"name,omitempty"`
	Location         *string `json:"location,omitempty"`
	RegistrationOpen *bool   `json:"registrationOpen,omitempty"`
	CheckinOpen      *bool   `json:"checkinOpen,omitempty"`
	CheckinRoundOpen *int    `json:"checkinRoundOpen,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendee ผู้ลงทะเบียนเข้าร่วมสัมมนา
// TicketToken เป็น bearer capability สำหรับเช็คอินด้วยตนเอง
// สร้างครั้งเดียวตอนลงทะเบียนและห้ามแก้ไข
type Attendee struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID          primitive.ObjectID `bson:"eventId" json:"eventId"`
	CourtID          primitive.ObjectID `bson:"courtId" json:"courtId"`
	TicketToken      string             `bson:"ticketToken" json:"ticketToken"`
	Prefix           string             `bson:"prefix,omitempty" json:"prefix,omitempty"`
	Name             string             `bson:"name" json:"name" validate:"required"`
	Phone            string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email            string             `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Organization     string             `bson:"organization,omitempty" json:"organization,omitempty"`
	Province         string             `bson:"province" json:"province"`
	Position         string             `bson:"position,omitempty" json:"position,omitempty"`
	FoodType         string             `bson:"foodType,omitempty" json:"foodType,omitempty"`
	TravelMode       string             `bson:"travelMode,omitempty" json:"travelMode,omitempty"`
	Hotel            string             `bson:"hotel,omitempty" json:"hotel,omitempty"`
	CoordinatorName  string             `bson:"coordinatorName,omitempty" json:"coordinatorName,omitempty"`
	CoordinatorPhone string             `bson:"coordinatorPhone,omitempty" json:"coordinatorPhone,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt        time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// AttendeeRegisterRequest ข้อมูลจากฟอร์มลงทะเบียน
type AttendeeRegisterRequest struct {
	EventID          string `json:"eventId"`
	CourtID          string `json:"courtId" validate:"required"`
	Prefix           string `json:"prefix"`
	Name             string `json:"name" validate:"required"`
	Phone            string `json:"phone"`
	Email            string `json:"email" validate:"omitempty,email"`
	Organization     string `json:"organization"`
	Province         string `json:"province" validate:"required"`
	Position         string `json:"position"`
	FoodType         string `json:"foodType"`
	TravelMode       string `json:"travelMode"`
	Hotel            string `json:"hotel"`
	CoordinatorName  string `json:"coordinatorName"`
	CoordinatorPhone string `json:"coordinatorPhone"`
}

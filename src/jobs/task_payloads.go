package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	TypeCloseRound        = "event:close-round"
	TypeCloseRegistration = "event:close-registration"
)

type EventPayload struct {
	EventID string `json:"event_id"`
}

// NewCloseRoundTask งานปิดรอบเช็คอินตามเวลาที่เจ้าหน้าที่ตั้งไว้
func NewCloseRoundTask(eventID string) (*asynq.Task, error) {
	payload, err := json.Marshal(EventPayload{EventID: eventID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCloseRound, payload), nil
}

// NewCloseRegistrationTask งานปิดรับลงทะเบียนเมื่อถึงกำหนด
func NewCloseRegistrationTask(eventID string) (*asynq.Task, error) {
	payload, err := json.Marshal(EventPayload{EventID: eventID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCloseRegistration, payload), nil
}

package checkin

import (
	"context"
	"testing"
	"time"

	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mock implementations
type MockAttendeeStore struct {
	mock.Mock
}

func (m *MockAttendeeStore) FindByTicketToken(_ context.Context, token string) (*models.Attendee, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendee), args.Error(1)
}

func (m *MockAttendeeStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Attendee, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendee), args.Error(1)
}

func (m *MockAttendeeStore) UpdateFoodType(_ context.Context, id primitive.ObjectID, foodType string) error {
	args := m.Called(id, foodType)
	return args.Error(0)
}

type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

type MockLedgerStore struct {
	mock.Mock
}

func (m *MockLedgerStore) Insert(_ context.Context, rec *models.CheckinRecord) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *MockLedgerStore) Find(_ context.Context, attendeeID primitive.ObjectID, round int) (*models.CheckinRecord, error) {
	args := m.Called(attendeeID, round)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckinRecord), args.Error(1)
}

func (m *MockLedgerStore) FindAll(_ context.Context, attendeeID primitive.ObjectID) ([]models.CheckinRecord, error) {
	args := m.Called(attendeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CheckinRecord), args.Error(1)
}

func (m *MockLedgerStore) Delete(_ context.Context, attendeeID primitive.ObjectID, round int) (int64, error) {
	args := m.Called(attendeeID, round)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerStore) DeleteAll(_ context.Context, attendeeID primitive.ObjectID) (int64, error) {
	args := m.Called(attendeeID)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(attendees AttendeeStore, events EventStore, ledger LedgerStore) *Service {
	return &Service{
		Attendees: attendees,
		Events:    events,
		Ledger:    NewLedger(ledger),
		Limiter:   NewRateLimiter(nil),
	}
}

func testAttendee(eventID primitive.ObjectID, token string) *models.Attendee {
	return &models.Attendee{
		ID:          primitive.NewObjectID(),
		EventID:     eventID,
		CourtID:     primitive.NewObjectID(),
		TicketToken: token,
		Name:        "สมชาย ใจดี",
		Province:    "นนทบุรี",
	}
}

func TestSelfCheckinEmptyToken(t *testing.T) {
	svc := newTestService(new(MockAttendeeStore), new(MockEventStore), new(MockLedgerStore))

	result, err := svc.SelfCheckin(context.Background(), SelfCheckinRequest{TicketToken: "   "})
	require.NoError(t, err)
	assert.Equal(t, StatusInvalid, result.Status)
	assert.Equal(t, "TOKEN_REQUIRED", result.Code)
}

func TestSelfCheckinUnknownToken(t *testing.T) {
	attendees := new(MockAttendeeStore)
	attendees.On("FindByTicketToken", "no-such-token").Return(nil, ErrNotFound)

	svc := newTestService(attendees, new(MockEventStore), new(MockLedgerStore))

	result, err := svc.SelfCheckin(context.Background(), SelfCheckinRequest{TicketToken: "no-such-token"})
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, result.Status)
}

func TestSelfCheckinTokenMismatchBehavesAsNotFound(t *testing.T) {
	// store คืน attendee แต่ token ที่เก็บไว้ไม่ตรงกับที่ส่งมา
	// ต้องได้ not_found เหมือนกรณีไม่พบ ไม่เผยว่า lookup เจออะไร
	eventID := primitive.NewObjectID()
	attendees := new(MockAttendeeStore)
	attendees.On("FindByTicketToken", "presented").Return(testAttendee(eventID, "stored"), nil)

	svc := newTestService(attendees, new(MockEventStore), new(MockLedgerStore))

	result, err := svc.SelfCheckin(context.Background(), SelfCheckinRequest{TicketToken: "presented"})
	require.NoError(t, err)
	assert.Equal(t, StatusNotFound, result.Status)
}

func TestSelfCheckinClosedEvent(t *testing.T) {
	eventID := primitive.NewObjectID()
	attendee := testAttendee(eventID, "tok-closed")

	attendees := new(MockAttendeeStore)
	attendees.On("FindByTicketToken", "tok-closed").Return(attendee, nil)

	events := new(MockEventStore)
	events.On("FindByID", eventID).Return(&models.Event{ID: eventID, CheckinOpen: false, CheckinRoundOpen: 1}, nil)

	ledger := new(MockLedgerStore)
	svc := newTestService(attendees, events, ledger)

	result, err := svc.SelfCheckin(context.Background(), SelfCheckinRequest{TicketToken: "tok-closed"})
	require.NoError(t, err)
	assert.Equal(t, StatusClosed, result.Status)
	assert.Equal(t, ReasonCheckinClosed, result.Code)

	// ปฏิเสธก่อนถึงชั้น ledger — ห้ามแตะเลย
	ledger.AssertNotCalled(t, "Insert", mock.Anything)
	ledger.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestSelfCheckinRoundNotOpen(t *testing.T) {
	eventID := primitive.NewObjectID()
	attendee := testAttendee(eventID, "tok-noround")

	attendees := new(MockAttendeeStore)
	attendees.On("FindByTicketToken", "tok-noround").Return(attendee, nil)

	events := new(MockEventStore)
	events.On("FindByID", eventID).Return(&models.Event{ID: eventID, CheckinOpen: true, CheckinRoundOpen: 0}, nil)

	svc := newTestService(attendees, events, new(MockLedgerStore))

	result, err := svc.SelfCheckin(context.Background(), SelfCheckinRequest{TicketToken: "tok-noround"})
	require.NoError(t, err)
	assert.Equal(t, StatusRoundNotOpen, result.Status)
	assert.Equal(t, ReasonRoundNotOpen, result.Code)
}

func TestSelfCheckinSuccess(t *testing.T) {
	eventID := primitive.NewObjectID()
	attendee := testAttendee(eventID, "tok-ok")

	attendees := new(MockAttendeeStore)
	attendees.On("FindByTicketToken", "tok-ok").Return(attendee, nil)
	attendees.On("UpdateFoodType", attendee.ID, "มังสวิรัติ").Return(nil)

	events := new(MockEventStore)
	events.On("FindByID", eventID).Return(&models.Event{ID: eventID, CheckinOpen: true, CheckinRoundOpen: 2}, nil)

	ledger := new(MockLedgerStore)
	ledger.On("Find", attendee.ID, 2).Return(nil, ErrNotFound)
	ledger.On("Insert", mock.AnythingOfType("*models.CheckinRecord")).Return(nil)

	svc := newTestService(attendees, events, ledger)

	result, err := svc.SelfCheckin(context.Background(), SelfCheckinRequest{
		TicketToken: "tok-ok",
		FoodType:    "มังสวิรัติ",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, result.Status)
	assert.Equal(t, 2, result.Round)
	require.NotNil(t, result.CheckedInAt)

	attendees.AssertCalled(t, "UpdateFoodType", attendee.ID, "มังสวิรัติ")
	ledger.AssertExpectations(t)
}

func TestSelfCheckinFoodUpdateFailureDoesNotFailCheckin(t *testing.T) {
	eventID := primitive.NewObjectID()
	attendee := testAttendee(eventID, "tok-food")

	attendees := new(MockAttendeeStore)
	attendees.On("FindByTicketToken", "tok-food").Return(attendee, nil)
	attendees.On("UpdateFoodType", attendee.ID, "ฮาลาล").Return(assert.AnError)

	events := new(MockEventStore)
	events.On("FindByID", eventID).Return(&models.Event{ID: eventID, CheckinOpen: true, CheckinRoundOpen: 1}, nil)

	ledger := new(MockLedgerStore)
	ledger.On("Find", attendee.ID, 1).Return(nil, ErrNotFound)
	ledger.On("Insert", mock.AnythingOfType("*models.CheckinRecord")).Return(nil)

	svc := newTestService(attendees, events, ledger)

	result, err := svc.SelfCheckin(context.Background(), SelfCheckinRequest{
		TicketToken: "tok-food",
		FoodType:    "ฮาลาล",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, result.Status)
}

func TestSelfCheckinAlreadyCheckedIn(t *testing.T) {
	eventID := primitive.NewObjectID()
	attendee := testAttendee(eventID, "tok-dup")
	checkedInAt := time.Now().Add(-time.Hour)

	attendees := new(MockAttendeeStore)
	attendees.On("FindByTicketToken", "tok-dup").Return(attendee, nil)

	events := new(MockEventStore)
	events.On("FindByID", eventID).Return(&models.Event{ID: eventID, CheckinOpen: true, CheckinRoundOpen: 3}, nil)

	ledger := new(MockLedgerStore)
	ledger.On("Find", attendee.ID, 3).Return(&models.CheckinRecord{
		AttendeeID:  attendee.ID,
		Round:       3,
		CheckedInAt: checkedInAt,
	}, nil)

	svc := newTestService(attendees, events, ledger)

	result, err := svc.SelfCheckin(context.Background(), SelfCheckinRequest{TicketToken: "tok-dup"})
	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyCheckedIn, result.Status)
	assert.Equal(t, 3, result.Round)
	require.NotNil(t, result.CheckedInAt)
	assert.WithinDuration(t, checkedInAt, *result.CheckedInAt, time.Second)

	ledger.AssertNotCalled(t, "Insert", mock.Anything)
}

func TestSelfCheckinDuplicateRace(t *testing.T) {
	// race: Find ไม่เจอ แต่ Insert ชน unique index เพราะมีคนตัดหน้า
	eventID := primitive.NewObjectID()
	attendee := testAttendee(eventID, "tok-race")
	winnerAt := time.Now().Add(-time.Minute)

	attendees := new(MockAttendeeStore)
	attendees.On("FindByTicketToken", "tok-race").Return(attendee, nil)

	events := new(MockEventStore)
	events.On("FindByID", eventID).Return(&models.Event{ID: eventID, CheckinOpen: true, CheckinRoundOpen: 1}, nil)

	ledger := new(MockLedgerStore)
	ledger.On("Find", attendee.ID, 1).Return(nil, ErrNotFound).Once()
	ledger.On("Insert", mock.AnythingOfType("*models.CheckinRecord")).Return(ErrDuplicateRound)
	ledger.On("Find", attendee.ID, 1).Return(&models.CheckinRecord{
		AttendeeID:  attendee.ID,
		Round:       1,
		CheckedInAt: winnerAt,
	}, nil)

	svc := newTestService(attendees, events, ledger)

	result, err := svc.SelfCheckin(context.Background(), SelfCheckinRequest{TicketToken: "tok-race"})
	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyCheckedIn, result.Status)
	require.NotNil(t, result.CheckedInAt)
	assert.WithinDuration(t, winnerAt, *result.CheckedInAt, time.Second)
}

func TestSelfCheckinEventRequired(t *testing.T) {
	// attendee ไม่ผูก event, request ไม่ระบุ, ระบบไม่มี default → invalid
	attendee := testAttendee(primitive.NilObjectID, "tok-noevent")

	attendees := new(MockAttendeeStore)
	attendees.On("FindByTicketToken", "tok-noevent").Return(attendee, nil)

	svc := newTestService(attendees, new(MockEventStore), new(MockLedgerStore))

	result, err := svc.SelfCheckin(context.Background(), SelfCheckinRequest{TicketToken: "tok-noevent"})
	require.NoError(t, err)
	assert.Equal(t, StatusInvalid, result.Status)
	assert.Equal(t, CodeEventIDRequired, result.Code)
}

func TestSelfCheckinRateLimitedPerToken(t *testing.T) {
	attendees := new(MockAttendeeStore)
	attendees.On("FindByTicketToken", "tok-flood").Return(nil, ErrNotFound)

	svc := newTestService(attendees, new(MockEventStore), new(MockLedgerStore))
	ctx := context.Background()

	for i := 0; i < TokenLimit; i++ {
		result, err := svc.SelfCheckin(ctx, SelfCheckinRequest{TicketToken: "tok-flood"})
		require.NoError(t, err)
		assert.Equal(t, StatusNotFound, result.Status)
	}

	result, err := svc.SelfCheckin(ctx, SelfCheckinRequest{TicketToken: "tok-flood"})
	require.NoError(t, err)
	assert.Equal(t, StatusRateLimited, result.Status)
	assert.GreaterOrEqual(t, result.RetryAfter, 1)

	// ครั้งที่โดน limit ต้องไม่ไปถึงชั้น lookup
	attendees.AssertNumberOfCalls(t, "FindByTicketToken", TokenLimit)
}

func TestStatusReportsRounds(t *testing.T) {
	ctx := context.Background()
	eventID := primitive.NewObjectID()
	attendee := testAttendee(eventID, "tok-status")

	attendees := new(MockAttendeeStore)
	attendees.On("FindByTicketToken", "tok-status").Return(attendee, nil)

	events := new(MockEventStore)
	events.On("FindByID", eventID).Return(&models.Event{ID: eventID, CheckinOpen: true, CheckinRoundOpen: 2}, nil)

	store := &memLedgerStore{}
	ledger := NewLedger(store)
	_, _, err := ledger.RecordRound(ctx, &models.CheckinRecord{AttendeeID: attendee.ID, Round: 1})
	require.NoError(t, err)
	_, _, err = ledger.RecordRound(ctx, &models.CheckinRecord{AttendeeID: attendee.ID, Round: 2})
	require.NoError(t, err)

	svc := &Service{
		Attendees: attendees,
		Events:    events,
		Ledger:    ledger,
		Limiter:   NewRateLimiter(nil),
	}

	result, err := svc.Status(ctx, "tok-status", "", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, result.CheckinOpen)
	assert.Equal(t, 2, result.CheckinRoundOpen)
	assert.True(t, result.Allowed)
	assert.True(t, result.AlreadyCheckedIn)
	require.NotNil(t, result.CheckedInAt)
	assert.NotNil(t, result.Rounds.Round1At)
	assert.Nil(t, result.Rounds.Round3At)
}

func TestStatusUnknownToken(t *testing.T) {
	attendees := new(MockAttendeeStore)
	attendees.On("FindByTicketToken", "nope").Return(nil, ErrNotFound)

	svc := newTestService(attendees, new(MockEventStore), new(MockLedgerStore))

	_, err := svc.Status(context.Background(), "nope", "", "10.0.0.1")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

package checkin

import (
	"context"
	"testing"
	"time"

	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memLedgerStore จำลอง unique index (attendeeId, round) ใน memory
type memLedgerStore struct {
	recs []models.CheckinRecord
}

func (s *memLedgerStore) Insert(_ context.Context, rec *models.CheckinRecord) error {
	for _, r := range s.recs {
		if r.AttendeeID == rec.AttendeeID && r.Round == rec.Round {
			return ErrDuplicateRound
		}
	}
	s.recs = append(s.recs, *rec)
	return nil
}

func (s *memLedgerStore) Find(_ context.Context, attendeeID primitive.ObjectID, round int) (*models.CheckinRecord, error) {
	for i := range s.recs {
		if s.recs[i].AttendeeID == attendeeID && s.recs[i].Round == round {
			rec := s.recs[i]
			return &rec, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memLedgerStore) FindAll(_ context.Context, attendeeID primitive.ObjectID) ([]models.CheckinRecord, error) {
	var out []models.CheckinRecord
	for _, r := range s.recs {
		if r.AttendeeID == attendeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memLedgerStore) Delete(_ context.Context, attendeeID primitive.ObjectID, round int) (int64, error) {
	var kept []models.CheckinRecord
	var removed int64
	for _, r := range s.recs {
		if r.AttendeeID == attendeeID && r.Round == round {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.recs = kept
	return removed, nil
}

func (s *memLedgerStore) DeleteAll(_ context.Context, attendeeID primitive.ObjectID) (int64, error) {
	var kept []models.CheckinRecord
	var removed int64
	for _, r := range s.recs {
		if r.AttendeeID == attendeeID {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.recs = kept
	return removed, nil
}

func TestLedgerRecordRoundIdempotent(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(&memLedgerStore{})
	attendeeID := primitive.NewObjectID()

	rec := &models.CheckinRecord{
		AttendeeID: attendeeID,
		Round:      1,
		Source:     models.CheckinSourceSelf,
	}

	inserted, firstAt, err := ledger.RecordRound(ctx, rec)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.False(t, firstAt.IsZero())

	// เรียกซ้ำรอบเดิม — ต้องไม่ error และได้ timestamp ของแถวแรก
	again := &models.CheckinRecord{
		AttendeeID: attendeeID,
		Round:      1,
		Source:     models.CheckinSourceSelf,
	}
	inserted, secondAt, err := ledger.RecordRound(ctx, again)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, firstAt, secondAt)
}

func TestLedgerRecordRoundSetsServerTimestamp(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(&memLedgerStore{})

	// ต่อให้ client ยัด timestamp มา ก็ต้องถูกทับด้วยเวลาฝั่ง server
	forged := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := &models.CheckinRecord{
		AttendeeID:  primitive.NewObjectID(),
		Round:       2,
		CheckedInAt: forged,
	}

	before := time.Now()
	_, at, err := ledger.RecordRound(ctx, rec)
	require.NoError(t, err)
	assert.True(t, at.After(before) || at.Equal(before))
	assert.NotEqual(t, forged, at)
}

func TestLedgerRoundsFor(t *testing.T) {
	ctx := context.Background()
	store := &memLedgerStore{}
	ledger := NewLedger(store)
	attendeeID := primitive.NewObjectID()

	for _, round := range []int{1, 3} {
		_, _, err := ledger.RecordRound(ctx, &models.CheckinRecord{
			AttendeeID: attendeeID,
			Round:      round,
		})
		require.NoError(t, err)
	}

	rounds, err := ledger.RoundsFor(ctx, attendeeID)
	require.NoError(t, err)
	assert.NotNil(t, rounds.Round1At)
	assert.Nil(t, rounds.Round2At)
	assert.NotNil(t, rounds.Round3At)
	assert.True(t, rounds.Any())
}

func TestLedgerRoundsForEmpty(t *testing.T) {
	ledger := NewLedger(&memLedgerStore{})

	rounds, err := ledger.RoundsFor(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.False(t, rounds.Any())
	assert.Nil(t, rounds.At(1))
	assert.Nil(t, rounds.At(2))
	assert.Nil(t, rounds.At(3))
}

func TestNextCheckinRound(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name   string
		rounds models.RoundTimestamps
		want   int
	}{
		{"none done picks round 1", models.RoundTimestamps{}, 1},
		{"round 1 done picks round 2", models.RoundTimestamps{Round1At: &now}, 2},
		{"gap picks lowest missing", models.RoundTimestamps{Round2At: &now}, 1},
		{"rounds 1-2 done picks round 3", models.RoundTimestamps{Round1At: &now, Round2At: &now}, 3},
		{"all done returns 0", models.RoundTimestamps{Round1At: &now, Round2At: &now, Round3At: &now}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextCheckinRound(tc.rounds))
		})
	}
}

func TestLatestPresentRound(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name   string
		rounds models.RoundTimestamps
		want   int
	}{
		{"none present returns 0", models.RoundTimestamps{}, 0},
		{"only round 1 present", models.RoundTimestamps{Round1At: &now}, 1},
		{"highest present wins", models.RoundTimestamps{Round1At: &now, Round3At: &now}, 3},
		{"middle round only", models.RoundTimestamps{Round2At: &now}, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LatestPresentRound(tc.rounds))
		})
	}
}

func TestLedgerRemoveRound(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(&memLedgerStore{})
	attendeeID := primitive.NewObjectID()

	_, _, err := ledger.RecordRound(ctx, &models.CheckinRecord{AttendeeID: attendeeID, Round: 2})
	require.NoError(t, err)

	removed, err := ledger.RemoveRound(ctx, attendeeID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// ถอนซ้ำ — ไม่มีอะไรให้ลบแล้ว
	removed, err = ledger.RemoveRound(ctx, attendeeID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestLedgerRemoveAll(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(&memLedgerStore{})
	attendeeID := primitive.NewObjectID()
	other := primitive.NewObjectID()

	for _, round := range []int{1, 2, 3} {
		_, _, err := ledger.RecordRound(ctx, &models.CheckinRecord{AttendeeID: attendeeID, Round: round})
		require.NoError(t, err)
	}
	_, _, err := ledger.RecordRound(ctx, &models.CheckinRecord{AttendeeID: other, Round: 1})
	require.NoError(t, err)

	removed, err := ledger.RemoveAll(ctx, attendeeID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	// ของคนอื่นต้องไม่โดนลบไปด้วย
	has, err := ledger.HasRound(ctx, other, 1)
	require.NoError(t, err)
	assert.True(t, has)
}

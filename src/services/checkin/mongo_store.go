package checkin

import (
	"context"

	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAttendeeStore implementation จริงของ AttendeeStore
type MongoAttendeeStore struct {
	Col *mongo.Collection
}

func (s *MongoAttendeeStore) FindByTicketToken(ctx context.Context, token string) (*models.Attendee, error) {
	var attendee models.Attendee
	err := s.Col.FindOne(ctx, bson.M{"ticketToken": token}).Decode(&attendee)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &attendee, nil
}

func (s *MongoAttendeeStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Attendee, error) {
	var attendee models.Attendee
	err := s.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&attendee)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &attendee, nil
}

func (s *MongoAttendeeStore) UpdateFoodType(ctx context.Context, id primitive.ObjectID, foodType string) error {
	_, err := s.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"foodType": foodType}})
	return err
}

// MongoEventStore implementation จริงของ EventStore
type MongoEventStore struct {
	Col *mongo.Collection
}

func (s *MongoEventStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := s.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// MongoLedgerStore implementation จริงของ LedgerStore บน attendee_checkins
// duplicate-key จาก unique index (attendeeId, round) ถูกแปลงเป็น ErrDuplicateRound
type MongoLedgerStore struct {
	Col *mongo.Collection
}

func (s *MongoLedgerStore) Insert(ctx context.Context, rec *models.CheckinRecord) error {
	rec.ID = primitive.NewObjectID()
	_, err := s.Col.InsertOne(ctx, rec)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateRound
	}
	return err
}

func (s *MongoLedgerStore) Find(ctx context.Context, attendeeID primitive.ObjectID, round int) (*models.CheckinRecord, error) {
	var rec models.CheckinRecord
	err := s.Col.FindOne(ctx, bson.M{"attendeeId": attendeeID, "round": round}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *MongoLedgerStore) FindAll(ctx context.Context, attendeeID primitive.ObjectID) ([]models.CheckinRecord, error) {
	cursor, err := s.Col.Find(ctx, bson.M{"attendeeId": attendeeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []models.CheckinRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *MongoLedgerStore) Delete(ctx context.Context, attendeeID primitive.ObjectID, round int) (int64, error) {
	result, err := s.Col.DeleteOne(ctx, bson.M{"attendeeId": attendeeID, "round": round})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (s *MongoLedgerStore) DeleteAll(ctx context.Context, attendeeID primitive.ObjectID) (int64, error) {
	result, err := s.Col.DeleteMany(ctx, bson.M{"attendeeId": attendeeID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

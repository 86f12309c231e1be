package attendees

import (
	"context"
	"errors"
	"os"
	"time"

	DB "github.com/Thiraphat-tony/seminar-checkin-sub000/src/database"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

var (
	ErrNotFound           = errors.New("ไม่พบผู้เข้าร่วม")
	ErrRegistrationClosed = errors.New("ปิดรับลงทะเบียนแล้ว")
	ErrCourtNotFound      = errors.New("ไม่พบศาลที่ระบุ")
	ErrEventNotFound      = errors.New("ไม่พบงานสัมมนา")
	ErrDuplicateTicket    = errors.New("ออก ticket token ซ้ำ กรุณาลองใหม่")
)

// Register ลงทะเบียนผู้เข้าร่วมหนึ่งคนจากฟอร์ม self-service
// ออก ticket token ให้ตอนนี้เลย — token ไม่เปลี่ยนอีกตลอดอายุ record
func Register(req *models.AttendeeRegisterRequest) (*models.Attendee, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	eventID, err := resolveEventID(req.EventID)
	if err != nil {
		return nil, err
	}

	var event models.Event
	if err := DB.EventCollection.FindOne(ctx, bson.M{"_id": eventID}).Decode(&event); err != nil {
		return nil, ErrEventNotFound
	}
	if !event.RegistrationOpen {
		return nil, ErrRegistrationClosed
	}

	courtID, err := primitive.ObjectIDFromHex(req.CourtID)
	if err != nil {
		return nil, ErrCourtNotFound
	}
	if err := DB.CourtCollection.FindOne(ctx, bson.M{"_id": courtID}).Err(); err != nil {
		return nil, ErrCourtNotFound
	}

	attendee := fromRequest(req, eventID, courtID)
	attendee.ID = primitive.NewObjectID()
	attendee.TicketToken = utils.NewTicketToken()
	attendee.CreatedAt = time.Now()
	attendee.UpdatedAt = attendee.CreatedAt

	if _, err := DB.AttendeeCollection.InsertOne(ctx, attendee); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateTicket
		}
		return nil, err
	}
	return attendee, nil
}

// BulkImport ลงทะเบียนหลายคนจากรายชื่อที่เตรียมไว้ (แปลง format ไฟล์เป็นหน้าที่ฝั่ง client)
// ข้าม validation ของ registrationOpen — การ import เป็นงานของเจ้าหน้าที่
func BulkImport(scope models.StaffScope, reqs []models.AttendeeRegisterRequest) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var docs []interface{}
	for i := range reqs {
		req := &reqs[i]
		if err := validate.Struct(req); err != nil {
			return 0, err
		}

		eventID, err := resolveEventID(req.EventID)
		if err != nil {
			return 0, err
		}
		courtID, err := primitive.ObjectIDFromHex(req.CourtID)
		if err != nil {
			return 0, ErrCourtNotFound
		}
		if !scope.CanAccessCourt(courtID) {
			return 0, ErrCourtNotFound
		}

		attendee := fromRequest(req, eventID, courtID)
		attendee.ID = primitive.NewObjectID()
		attendee.TicketToken = utils.NewTicketToken()
		attendee.CreatedAt = time.Now()
		attendee.UpdatedAt = attendee.CreatedAt
		docs = append(docs, attendee)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	result, err := DB.AttendeeCollection.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(result.InsertedIDs), nil
}

func fromRequest(req *models.AttendeeRegisterRequest, eventID, courtID primitive.ObjectID) *models.Attendee {
	// ชื่อตำแหน่งจากข้อมูลเก่าอาจเป็นตัวอักษรขยะ — แปลงก่อนเก็บ
	position, _ := utils.TranslatePositionLabel(req.Position)

	return &models.Attendee{
		EventID:          eventID,
		CourtID:          courtID,
		Prefix:           req.Prefix,
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		Organization:     req.Organization,
		Province:         req.Province,
		Position:         position,
		FoodType:         req.FoodType,
		TravelMode:       req.TravelMode,
		Hotel:            req.Hotel,
		CoordinatorName:  req.CoordinatorName,
		CoordinatorPhone: req.CoordinatorPhone,
	}
}

func resolveEventID(requested string) (primitive.ObjectID, error) {
	if requested != "" {
		id, err := primitive.ObjectIDFromHex(requested)
		if err != nil {
			return primitive.NilObjectID, ErrEventNotFound
		}
		return id, nil
	}
	if def := os.Getenv("DEFAULT_EVENT_ID"); def != "" {
		if id, err := primitive.ObjectIDFromHex(def); err == nil {
			return id, nil
		}
	}
	return primitive.NilObjectID, ErrEventNotFound
}

// scopeFilter เติมเงื่อนไขศาลให้ทุก query ของเจ้าหน้าที่ที่ไม่ใช่ super admin
func scopeFilter(scope models.StaffScope, filter bson.M) bson.M {
	if scope.DataScope() == models.ScopeAllCourts {
		return filter
	}
	if scope.CourtID != nil {
		filter["courtId"] = *scope.CourtID
	} else {
		// staff ที่ไม่มีศาล (ข้อมูลเพี้ยน) ต้องไม่เห็นอะไรเลย
		filter["courtId"] = primitive.NilObjectID
	}
	return filter
}

// GetAll รายการผู้เข้าร่วมตามขอบเขตของเจ้าหน้าที่ พร้อมแบ่งหน้า/ค้นหา
func GetAll(scope models.StaffScope, params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := scopeFilter(scope, bson.M{})
	if params.Search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": params.Search, "$options": "i"}},
			{"organization": bson.M{"$regex": params.Search, "$options": "i"}},
			{"province": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	total, err := DB.AttendeeCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	sortField := params.SortBy
	if sortField == "" {
		sortField = "_id"
	}
	findOptions := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: sortField, Value: params.SortOrder()}})

	cursor, err := DB.AttendeeCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Attendee
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return models.NewPaginatedResponse(list, total, params), nil
}

// GetByID อ่านผู้เข้าร่วมหนึ่งคนภายใต้ขอบเขตศาล
func GetByID(scope models.StaffScope, id string) (*models.Attendee, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var attendee models.Attendee
	err = DB.AttendeeCollection.FindOne(ctx, scopeFilter(scope, bson.M{"_id": objID})).Decode(&attendee)
	if err != nil {
		return nil, ErrNotFound
	}
	return &attendee, nil
}

// Update แก้ไขข้อมูลผู้เข้าร่วม (ไม่แตะ ticketToken และ courtId)
func Update(scope models.StaffScope, id string, req *models.AttendeeRegisterRequest) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	if err := validate.StructPartial(req, "Name"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	position, _ := utils.TranslatePositionLabel(req.Position)
	update := bson.M{"$set": bson.M{
		"prefix":           req.Prefix,
		"name":             req.Name,
		"phone":            req.Phone,
		"email":            req.Email,
		"organization":     req.Organization,
		"province":         req.Province,
		"position":         position,
		"foodType":         req.FoodType,
		"travelMode":       req.TravelMode,
		"hotel":            req.Hotel,
		"coordinatorName":  req.CoordinatorName,
		"coordinatorPhone": req.CoordinatorPhone,
		"updatedAt":        time.Now(),
	}}

	result, err := DB.AttendeeCollection.UpdateOne(ctx, scopeFilter(scope, bson.M{"_id": objID}), update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete ลบผู้เข้าร่วมพร้อมแถว ledger ทั้งหมดของเขา
// จุดนี้ยังเปิด legacy province bypass ตามพฤติกรรมระบบเดิม
func Delete(scope models.StaffScope, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": objID}
	if !scope.HasLegacyProvinceBypass() {
		filter = scopeFilter(scope, filter)
	}

	result, err := DB.AttendeeCollection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	// ลบ ledger ตาม — พลาดตรงนี้ได้แค่ log ไม่ rollback (record หลักหายไปแล้ว)
	if _, err := DB.CheckinCollection.DeleteMany(ctx, bson.M{"attendeeId": objID}); err != nil {
		return err
	}
	return nil
}

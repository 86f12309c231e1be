package courts

import (
	"context"
	"errors"
	"time"

	DB "github.com/Thiraphat-tony/seminar-checkin-sub000/src/database"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

var (
	ErrNotFound  = errors.New("ไม่พบศาล")
	ErrForbidden = errors.New("ต้องเป็น super admin เท่านั้น")
)

// Create เพิ่มศาลใหม่เข้าระบบ (super admin เท่านั้น)
func Create(scope models.StaffScope, court *models.Court) error {
	if scope.Role != models.RoleSuperAdmin {
		return ErrForbidden
	}
	if err := validate.Struct(court); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	court.ID = primitive.NewObjectID()
	_, err := DB.CourtCollection.InsertOne(ctx, court)
	return err
}

// GetAll รายชื่อศาลทั้งหมด เรียงตามจังหวัด (ใช้เติม dropdown ฟอร์มลงทะเบียน)
func GetAll() ([]models.Court, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "province", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := DB.CourtCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Court
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID อ่านข้อมูลศาลหนึ่งแห่ง
func GetByID(id string) (*models.Court, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var court models.Court
	if err := DB.CourtCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&court); err != nil {
		return nil, ErrNotFound
	}
	return &court, nil
}

package staffs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	DB "github.com/Thiraphat-tony/seminar-checkin-sub000/src/database"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

// DefaultStaffQuota จำนวนบัญชีเจ้าหน้าที่ต่อศาล เมื่อศาลไม่กำหนดเอง
const DefaultStaffQuota = 3

var (
	ErrInvalidLogin   = errors.New("อีเมลหรือรหัสผ่านไม่ถูกต้อง")
	ErrInactive       = errors.New("บัญชีนี้ถูกปิดการใช้งาน")
	ErrNoProfile      = errors.New("ไม่พบข้อมูลเจ้าหน้าที่")
	ErrCourtNotFound  = errors.New("ไม่พบศาลที่ระบุ")
	ErrQuotaExceeded  = errors.New("จำนวนบัญชีเจ้าหน้าที่ของศาลนี้เต็มแล้ว")
	ErrDuplicateEmail = errors.New("อีเมลนี้ถูกใช้แล้ว")
	ErrForbidden      = errors.New("ไม่มีสิทธิ์ดำเนินการ")
)

// StaffRegisterRequest คำขอเปิดบัญชีเจ้าหน้าที่ประจำศาล
type StaffRegisterRequest struct {
	CourtID  string `json:"courtId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register เปิดบัญชีเจ้าหน้าที่ใหม่ภายใต้ quota ของศาล
// อีเมล login สังเคราะห์จากรหัสศาล + ลำดับบัญชี (ระบบเดิมทำแบบนี้
// เพราะเจ้าหน้าที่ศาลไม่มีอีเมลกลางให้ใช้)
func Register(req *StaffRegisterRequest) (*models.StaffProfile, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	courtID, err := primitive.ObjectIDFromHex(req.CourtID)
	if err != nil {
		return nil, ErrCourtNotFound
	}
	var court models.Court
	if err := DB.CourtCollection.FindOne(ctx, bson.M{"_id": courtID}).Decode(&court); err != nil {
		return nil, ErrCourtNotFound
	}

	quota := court.StaffQuota
	if quota <= 0 {
		quota = DefaultStaffQuota
	}
	count, err := DB.StaffCollection.CountDocuments(ctx, bson.M{"courtId": courtID})
	if err != nil {
		return nil, err
	}
	if count >= int64(quota) {
		return nil, ErrQuotaExceeded
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &models.StaffProfile{
		ID:        primitive.NewObjectID(),
		Email:     synthesizeEmail(court.Code, count+1),
		Password:  string(hashed),
		Name:      req.Name,
		Role:      models.RoleStaff,
		CourtID:   &courtID,
		Province:  court.Province,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if _, err := DB.StaffCollection.InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	profile.Password = ""
	return profile, nil
}

// synthesizeEmail สร้างอีเมล login จากรหัสศาล เช่น crt-nst-02@seminar.local
func synthesizeEmail(courtCode string, seq int64) string {
	return fmt.Sprintf("crt-%s-%02d@seminar.local", strings.ToLower(courtCode), seq)
}

// Login ตรวจรหัสผ่านและออก JWT — บัญชีที่ถูกปิดห้าม login
func Login(email, password string) (*models.StaffProfile, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var profile models.StaffProfile
	err := DB.StaffCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&profile)
	if err != nil {
		return nil, "", ErrInvalidLogin
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidLogin
	}
	if !profile.IsActive {
		return nil, "", ErrInactive
	}

	courtID := ""
	if profile.CourtID != nil {
		courtID = profile.CourtID.Hex()
	}
	token, err := utils.GenerateJWT(profile.ID.Hex(), profile.Email, profile.Role, courtID, profile.Province)
	if err != nil {
		return nil, "", err
	}

	profile.Password = ""
	return &profile, token, nil
}

// ResolveScope แปลง JWT claims เป็น StaffScope โดยยืนยันกับ profile ปัจจุบัน
// ใน DB เสมอ (บัญชีที่เพิ่งถูกปิดต้องหลุดทันที ไม่รอ token หมดอายุ)
func ResolveScope(claims *utils.JWTClaims) (*models.StaffScope, error) {
	staffID, err := primitive.ObjectIDFromHex(claims.StaffID)
	if err != nil {
		return nil, ErrNoProfile
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var profile models.StaffProfile
	if err := DB.StaffCollection.FindOne(ctx, bson.M{"_id": staffID}).Decode(&profile); err != nil {
		return nil, ErrNoProfile
	}
	if !profile.IsActive {
		return nil, ErrInactive
	}

	return &models.StaffScope{
		StaffID:  profile.ID,
		Role:     profile.Role,
		CourtID:  profile.CourtID,
		Province: profile.Province,
	}, nil
}

// GetAll รายการเจ้าหน้าที่ — super admin เห็นทุกศาล staff เห็นเฉพาะศาลตัวเอง
func GetAll(scope models.StaffScope, params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if scope.DataScope() == models.ScopeOwnCourt {
		if scope.CourtID == nil {
			return models.NewPaginatedResponse([]models.StaffProfile{}, 0, params), nil
		}
		filter["courtId"] = *scope.CourtID
	}
	if params.Search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": params.Search, "$options": "i"}},
			{"email": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	total, err := DB.StaffCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	cursor, err := DB.StaffCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.StaffProfile
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Password = ""
	}
	return models.NewPaginatedResponse(list, total, params), nil
}

// Deactivate ปิดบัญชีเจ้าหน้าที่ (super admin เท่านั้น)
func Deactivate(scope models.StaffScope, id string) error {
	if scope.Role != models.RoleSuperAdmin {
		return ErrForbidden
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNoProfile
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.StaffCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"isActive": false}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNoProfile
	}
	return nil
}

// Delete ลบบัญชีเจ้าหน้าที่ (super admin เท่านั้น)
func Delete(scope models.StaffScope, id string) error {
	if scope.Role != models.RoleSuperAdmin {
		return ErrForbidden
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNoProfile
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.StaffCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNoProfile
	}
	return nil
}

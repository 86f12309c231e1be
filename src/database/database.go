package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "SeminarCheckinDB"

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	EventCollection    *mongo.Collection
	AttendeeCollection *mongo.Collection
	CheckinCollection  *mongo.Collection // attendee_checkins: หนึ่งแถวต่อ (attendee, round)
	StaffCollection    *mongo.Collection
	CourtCollection    *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว และเตรียม unique index
// ที่ protocol ชั้นบนพึ่งพา (ticketToken, (attendeeId, round))
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		EventCollection = client.Database(DBName).Collection("events")
		AttendeeCollection = client.Database(DBName).Collection("attendees")
		CheckinCollection = client.Database(DBName).Collection("attendee_checkins")
		StaffCollection = client.Database(DBName).Collection("staff_profiles")
		CourtCollection = client.Database(DBName).Collection("courts")

		connectErr = EnsureIndexes(context.TODO())
		if connectErr != nil {
			log.Fatal("❌ Failed to create indexes:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// EnsureIndexes สร้าง index ที่จำเป็น
// unique (attendeeId, round) คือกลไกเดียวที่กันเช็คอินซ้ำรอบเดิมภายใต้ concurrency
func EnsureIndexes(ctx context.Context) error {
	_, err := AttendeeCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ticketToken", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = CheckinCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "attendeeId", Value: 1}, {Key: "round", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = StaffCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}

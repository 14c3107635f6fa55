package hotelRepo

import (
	"context"
	"fmt"
	"time"

	"roomify/database"
	"roomify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHotelRepo implements HotelRepository using MongoDB.
type MongoHotelRepo struct {
	coll *mongo.Collection
}

// NewMongoHotelRepo creates a new instance of HotelRepository using MongoDB.
func NewMongoHotelRepo() HotelRepository {
	coll := database.Collection("hotels")
	repo := &MongoHotelRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoHotelRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "location", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoHotelRepo) find(filter bson.M) ([]models.Hotel, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	return hotels, nil
}

// GetByID retrieves a hotel by its unique ID.
func (r *MongoHotelRepo) GetByID(id string) (*models.Hotel, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var hotel models.Hotel
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&hotel); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hotel with id %s: %w", id, err)
	}
	return &hotel, nil
}

// GetByIDs retrieves the hotels with the given IDs.
func (r *MongoHotelRepo) GetByIDs(ids []string) ([]models.Hotel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(bson.M{"id": bson.M{"$in": ids}})
}

// GetAll retrieves all hotels.
func (r *MongoHotelRepo) GetAll() ([]models.Hotel, error) {
	return r.find(bson.M{})
}

// Create inserts a new hotel document.
func (r *MongoHotelRepo) Create(hotel *models.Hotel) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	hotel.CreatedAt = now
	hotel.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, hotel); err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

// Update replaces an existing hotel document.
func (r *MongoHotelRepo) Update(hotel *models.Hotel) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	hotel.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": hotel.ID}, bson.M{"$set": hotel})
	if err != nil {
		return fmt.Errorf("failed to update hotel with id %s: %w", hotel.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("hotel with id %s not found", hotel.ID)
	}
	return nil
}

// Delete removes a hotel document by its ID.
func (r *MongoHotelRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete hotel with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("hotel with id %s not found", id)
	}
	return nil
}

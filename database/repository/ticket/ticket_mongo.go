package ticketRepo

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

// MongoTicketRepo implements TicketRepository using MongoDB.
type MongoTicketRepo struct {
	coll *mongo.Collection
}

// NewMongoTicketRepo creates a new instance of TicketRepository using MongoDB.
func NewMongoTicketRepo() TicketRepository {
	coll := database.Collection("tickets")
	repo := &MongoTicketRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTicketRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoTicketRepo) find(filter bson.M, opts ...*options.FindOptions) ([]models.SupportTicket, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	defer cursor.Close(ctx)

	var tickets []models.SupportTicket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("failed to decode tickets: %w", err)
	}
	return tickets, nil
}

// Create inserts a new ticket document.
func (r *MongoTicketRepo) Create(t *models.SupportTicket) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

// GetByID retrieves a ticket by its unique ID.
func (r *MongoTicketRepo) GetByID(id string) (*models.SupportTicket, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.SupportTicket
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch ticket with id %s: %w", id, err)
	}
	return &t, nil
}

// GetByUser retrieves the tickets opened by a user, newest first.
func (r *MongoTicketRepo) GetByUser(userID string) ([]models.SupportTicket, error) {
	return r.find(bson.M{"userId": userID}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// GetByStatus retrieves all tickets in the given state.
func (r *MongoTicketRepo) GetByStatus(status models.TicketStatus) ([]models.SupportTicket, error) {
	return r.find(bson.M{"status": status})
}

// GetAll retrieves all tickets.
func (r *MongoTicketRepo) GetAll() ([]models.SupportTicket, error) {
	return r.find(bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// Update replaces an existing ticket document.
func (r *MongoTicketRepo) Update(t *models.SupportTicket) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	t.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": t.ID}, bson.M{"$set": t})
	if err != nil {
		return fmt.Errorf("failed to update ticket with id %s: %w", t.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("ticket with id %s not found", t.ID)
	}
	return nil
}

// Delete removes a ticket document by its ID.
func (r *MongoTicketRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete ticket with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("ticket with id %s not found", id)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/barbeariabiu/agenda/internal/domain/booking"
	"github.com/barbeariabiu/agenda/internal/models"
)

const collectionName = "agendamentos"

type BookingMongoRepository struct {
	coll  *mongo.Collection
	cache *ListCache
}

// NewBookingMongoRepository cria o repositório sobre a coleção de
// agendamentos. cache pode ser nil (listagem sempre vai ao Mongo).
func NewBookingMongoRepository(db *mongo.Database, cache *ListCache) *BookingMongoRepository {
	return &BookingMongoRepository{
		coll:  db.Collection(collectionName),
		cache: cache,
	}
}

func (r *BookingMongoRepository) Insert(ctx context.Context, b *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid
	}

	r.cache.Invalidate(ctx)

	return nil
}

func (r *BookingMongoRepository) ListOrdered(ctx context.Context) ([]models.Booking, error) {
	if cached, ok := r.cache.Get(ctx); ok {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "data_completa", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}

	r.cache.Set(ctx, bookings)

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingMongoRepository)(nil)

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roomly/pkg/config"
	"roomly/pkg/model"

	catalogerrors "roomly/internal/catalog/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	FacilitiesCollection = "Facilities"
	RoomsCollection      = "Rooms"
)

// CatalogRepository serves the read-only facility and room reference
// data the booking flow selects from.
type CatalogRepository interface {
	FindFacilities(ctx context.Context) ([]*model.Facility, error)
	FindFacilityByID(ctx context.Context, id int) (*model.Facility, error)
	FindRoomsByFacility(ctx context.Context, facilityID int) ([]*model.Room, error)
	FindRoom(ctx context.Context, facilityID, roomID int) (*model.Room, error)
}

type mongoCatalogRepository struct {
	cfg        *config.Config
	facilities *mongo.Collection
	rooms      *mongo.Collection
}

func NewMongoCatalogRepository(cfg *config.Config) CatalogRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoCatalogRepository{
		cfg:        cfg,
		facilities: db.Collection(FacilitiesCollection),
		rooms:      db.Collection(RoomsCollection),
	}
}

// withTimeout wraps the context with the configured read timeout,
// keeping any tighter deadline the caller already set.
func (r *mongoCatalogRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := r.cfg.ReadTimeout

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	if remaining := time.Until(deadline); remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoCatalogRepository) FindFacilities(ctx context.Context) ([]*model.Facility, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.facilities.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	defer cursor.Close(ctx)

	var facilities []*model.Facility
	if err := cursor.All(ctx, &facilities); err != nil {
		return nil, fmt.Errorf("failed to decode facilities: %w", err)
	}

	return facilities, nil
}

func (r *mongoCatalogRepository) FindFacilityByID(ctx context.Context, id int) (*model.Facility, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var facility model.Facility
	err := r.facilities.FindOne(ctx, bson.M{"_id": id}).Decode(&facility)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("facility %d: %w", id, catalogerrors.ErrFacilityNotFound)
		}
		return nil, fmt.Errorf("failed to find facility %d: %w", id, err)
	}

	return &facility, nil
}

func (r *mongoCatalogRepository) FindRoomsByFacility(ctx context.Context, facilityID int) ([]*model.Room, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.FindFacilityByID(ctx, facilityID); err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.rooms.Find(ctx, bson.M{"facility_id": facilityID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms for facility %d: %w", facilityID, err)
	}
	defer cursor.Close(ctx)

	var rooms []*model.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}

	return rooms, nil
}

func (r *mongoCatalogRepository) FindRoom(ctx context.Context, facilityID, roomID int) (*model.Room, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var room model.Room
	err := r.rooms.FindOne(ctx, bson.M{"_id": roomID, "facility_id": facilityID}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("room %d in facility %d: %w", roomID, facilityID, catalogerrors.ErrRoomNotFound)
		}
		return nil, fmt.Errorf("failed to find room %d: %w", roomID, err)
	}

	return &room, nil
}

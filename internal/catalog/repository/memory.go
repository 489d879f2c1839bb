package repository

import (
	"context"
	"fmt"
	"sort"

	"roomly/pkg/model"

	catalogerrors "roomly/internal/catalog/errors"
	"roomly/internal/catalog/seed"
)

// memoryCatalogRepository serves the catalog from process memory. The
// catalog is small and changes only with a deploy, so environments
// without Mongo (tests, local wizard demos) run against this.
type memoryCatalogRepository struct {
	facilities map[int]*model.Facility
	rooms      map[int]*model.Room
}

// NewMemoryCatalogRepository builds an in-memory catalog from the
// given data. Slices are indexed at construction; the repository
// never mutates them afterwards.
func NewMemoryCatalogRepository(facilities []*model.Facility, rooms []*model.Room) CatalogRepository {
	r := &memoryCatalogRepository{
		facilities: make(map[int]*model.Facility, len(facilities)),
		rooms:      make(map[int]*model.Room, len(rooms)),
	}
	for _, f := range facilities {
		r.facilities[f.ID] = f
	}
	for _, room := range rooms {
		r.rooms[room.ID] = room
	}
	return r
}

// NewSeededCatalogRepository returns an in-memory catalog preloaded
// with the reference data.
func NewSeededCatalogRepository() CatalogRepository {
	return NewMemoryCatalogRepository(seed.Facilities(), seed.Rooms())
}

func (r *memoryCatalogRepository) FindFacilities(ctx context.Context) ([]*model.Facility, error) {
	facilities := make([]*model.Facility, 0, len(r.facilities))
	for _, f := range r.facilities {
		facilities = append(facilities, f)
	}
	sort.Slice(facilities, func(i, j int) bool { return facilities[i].ID < facilities[j].ID })
	return facilities, nil
}

func (r *memoryCatalogRepository) FindFacilityByID(ctx context.Context, id int) (*model.Facility, error) {
	facility, ok := r.facilities[id]
	if !ok {
		return nil, fmt.Errorf("facility %d: %w", id, catalogerrors.ErrFacilityNotFound)
	}
	return facility, nil
}

func (r *memoryCatalogRepository) FindRoomsByFacility(ctx context.Context, facilityID int) ([]*model.Room, error) {
	if _, err := r.FindFacilityByID(ctx, facilityID); err != nil {
		return nil, err
	}

	var rooms []*model.Room
	for _, room := range r.rooms {
		if room.FacilityID == facilityID {
			rooms = append(rooms, room)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

func (r *memoryCatalogRepository) FindRoom(ctx context.Context, facilityID, roomID int) (*model.Room, error) {
	room, ok := r.rooms[roomID]
	if !ok || room.FacilityID != facilityID {
		return nil, fmt.Errorf("room %d in facility %d: %w", roomID, facilityID, catalogerrors.ErrRoomNotFound)
	}
	return room, nil
}

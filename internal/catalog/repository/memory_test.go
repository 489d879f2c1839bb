package repository

import (
	"context"
	"errors"
	"testing"

	catalogerrors "roomly/internal/catalog/errors"
)

func TestSeededCatalog(t *testing.T) {
	repo := NewSeededCatalogRepository()
	ctx := context.Background()

	facilities, err := repo.FindFacilities(ctx)
	if err != nil {
		t.Fatalf("FindFacilities: %v", err)
	}
	if len(facilities) != 3 {
		t.Fatalf("expected 3 facilities, got %d", len(facilities))
	}
	if facilities[0].Name != "Ngọc Thụy" || facilities[0].City != "Hà Nội" {
		t.Errorf("unexpected first facility: %+v", facilities[0])
	}

	wantRooms := map[int]int{1: 3, 2: 6, 3: 9}
	total := 0
	for facilityID, count := range wantRooms {
		rooms, err := repo.FindRoomsByFacility(ctx, facilityID)
		if err != nil {
			t.Fatalf("FindRoomsByFacility(%d): %v", facilityID, err)
		}
		if len(rooms) != count {
			t.Errorf("facility %d has %d rooms, want %d", facilityID, len(rooms), count)
		}
		total += len(rooms)
	}
	if total != 18 {
		t.Errorf("catalog has %d rooms, want 18", total)
	}
}

func TestSeededCatalogTariffs(t *testing.T) {
	repo := NewSeededCatalogRepository()

	room, err := repo.FindRoom(context.Background(), 2, 4)
	if err != nil {
		t.Fatalf("FindRoom: %v", err)
	}
	if room.Name != "Jasmine" {
		t.Errorf("room name = %q, want Jasmine", room.Name)
	}

	tariff := room.Tariff
	if tariff.BasePrice != 150000 || tariff.BaseDurationHours != 2 {
		t.Errorf("unexpected base tariff: %+v", tariff)
	}
	if tariff.ExtraHourPrice != 50000 || tariff.ExtraHourWeekendPrice != 80000 {
		t.Errorf("unexpected extra hour rates: %+v", tariff)
	}
	if tariff.ExtraPersonPrice != 100000 || tariff.CapacityBeforeSurcharge != 2 {
		t.Errorf("unexpected guest surcharge: %+v", tariff)
	}
}

func TestMemoryCatalogNotFound(t *testing.T) {
	repo := NewSeededCatalogRepository()
	ctx := context.Background()

	if _, err := repo.FindFacilityByID(ctx, 99); !errors.Is(err, catalogerrors.ErrFacilityNotFound) {
		t.Errorf("FindFacilityByID(99) = %v, want ErrFacilityNotFound", err)
	}

	if _, err := repo.FindRoomsByFacility(ctx, 99); !errors.Is(err, catalogerrors.ErrFacilityNotFound) {
		t.Errorf("FindRoomsByFacility(99) = %v, want ErrFacilityNotFound", err)
	}

	if _, err := repo.FindRoom(ctx, 1, 99); !errors.Is(err, catalogerrors.ErrRoomNotFound) {
		t.Errorf("FindRoom(1, 99) = %v, want ErrRoomNotFound", err)
	}

	// Room 4 belongs to facility 2; asking for it under facility 1 misses.
	if _, err := repo.FindRoom(ctx, 1, 4); !errors.Is(err, catalogerrors.ErrRoomNotFound) {
		t.Errorf("FindRoom(1, 4) = %v, want ErrRoomNotFound", err)
	}
}

// Package seed holds the reference catalog: every branch and room the
// reservation wizard offers. The same data backs the in-memory
// repository and the Mongo migration job, so both surfaces agree.
package seed

import "roomly/pkg/model"

// standardTariff is the tariff every room currently charges. The base
// price covers a two hour stay for up to two guests.
var standardTariff = model.RoomTariff{
	BasePrice:               150000,
	BaseDurationHours:       2,
	ExtraHourPrice:          50000,
	ExtraHourWeekendPrice:   80000,
	ExtraPersonPrice:        100000,
	CapacityBeforeSurcharge: 2,
}

// Facilities returns the branch locations. IDs are stable; bookings
// and events reference them.
func Facilities() []*model.Facility {
	return []*model.Facility{
		{
			ID:       1,
			Name:     "Ngọc Thụy",
			City:     "Hà Nội",
			Timezone: "Asia/Ho_Chi_Minh",
		},
		{
			ID:       2,
			Name:     "Himlam",
			City:     "Bắc Ninh",
			Timezone: "Asia/Ho_Chi_Minh",
		},
		{
			ID:       3,
			Name:     "BigC",
			City:     "Bắc Giang",
			Timezone: "Asia/Ho_Chi_Minh",
		},
	}
}

// Rooms returns every rentable room across all facilities.
func Rooms() []*model.Room {
	named := func(id, facilityID int, name string) *model.Room {
		return &model.Room{
			ID:         id,
			FacilityID: facilityID,
			Name:       name,
			Tariff:     standardTariff,
		}
	}

	return []*model.Room{
		named(1, 1, "Aurora"),
		named(2, 1, "Daisy"),
		named(3, 1, "Chablis"),

		named(4, 2, "Jasmine"),
		named(5, 2, "Camellia"),
		named(6, 2, "Lily"),
		named(7, 2, "Rosy"),
		named(8, 2, "Hibiscus"),
		named(9, 2, "Blossom"),

		named(10, 3, "201"),
		named(11, 3, "202"),
		named(12, 3, "301"),
		named(13, 3, "302"),
		named(14, 3, "401"),
		named(15, 3, "402"),
		named(16, 3, "501"),
		named(17, 3, "502"),
		named(18, 3, "601"),
	}
}

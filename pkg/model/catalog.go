package model

// Facility is a branch location offering rooms for hourly rental.
type Facility struct {
	ID       int    `json:"id" bson:"_id" validate:"required,min=1"`
	Name     string `json:"name" bson:"name" validate:"required,min=2,max=100"`
	City     string `json:"city" bson:"city" validate:"required,min=2,max=100"`
	Address  string `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,max=200"`
	Timezone string `json:"timezone,omitempty" bson:"timezone,omitempty" validate:"omitempty,timezone"`
}

// RoomTariff describes how a room is priced. All amounts are whole
// Vietnamese dong; the base price covers BaseDurationHours of stay.
type RoomTariff struct {
	BasePrice               int64 `json:"base_price" bson:"base_price" validate:"required,min=0"`
	BaseDurationHours       int   `json:"base_duration_hours" bson:"base_duration_hours" validate:"required,min=1"`
	ExtraHourPrice          int64 `json:"extra_hour_price" bson:"extra_hour_price" validate:"required,min=0"`
	ExtraHourWeekendPrice   int64 `json:"extra_hour_weekend_price" bson:"extra_hour_weekend_price" validate:"required,min=0"`
	ExtraPersonPrice        int64 `json:"extra_person_price" bson:"extra_person_price" validate:"required,min=0"`
	CapacityBeforeSurcharge int   `json:"capacity_before_surcharge" bson:"capacity_before_surcharge" validate:"required,min=1"`
}

// Room is a rentable unit within a facility.
type Room struct {
	ID          int        `json:"id" bson:"_id" validate:"required,min=1"`
	FacilityID  int        `json:"facility_id" bson:"facility_id" validate:"required,min=1"`
	Name        string     `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Description string     `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=500"`
	Tariff      RoomTariff `json:"tariff" bson:"tariff" validate:"required"`
}

package requests

// AvailabilitySlot carries one proposed weekly interval. Field-level shape is
// validated here; cross-slot semantics (duplicates, overlaps) belong to the
// availability normalizer.
type AvailabilitySlot struct {
	DayOfWeek string `json:"day_of_week" validate:"required,day_of_week"`
	StartTime string `json:"start_time" validate:"required,time_of_day"`
	EndTime   string `json:"end_time" validate:"required,time_of_day"`
}

type SetAvailability struct {
	Availability []AvailabilitySlot `json:"availability" validate:"dive"`
}

package responses

const (
	AvailabilityStatusOK       = "ok"
	AvailabilityStatusRejected = "rejected"
	AvailabilityStatusNotFound = "not_found"
	AvailabilityStatusError    = "error"
)

type AvailabilitySlot struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Availability is the payload for both the set and get operations. Slots is
// always present (possibly empty) so clearing a schedule reads back as [].
type Availability struct {
	Status string             `json:"status"`
	Slots  []AvailabilitySlot `json:"slots"`
}

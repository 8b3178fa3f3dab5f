package models

import "advice-service/internal/pkg/dto/responses"

// DayOfWeek matches the day_of_week Postgres enum declared in the initial
// migration. Ordering follows enum declaration order, sunday first.
type DayOfWeek string

const (
	Sunday    DayOfWeek = "sunday"
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
)

var dayOfWeekOrder = map[DayOfWeek]int{
	Sunday:    0,
	Monday:    1,
	Tuesday:   2,
	Wednesday: 3,
	Thursday:  4,
	Friday:    5,
	Saturday:  6,
}

func (d DayOfWeek) Valid() bool {
	_, ok := dayOfWeekOrder[d]
	return ok
}

func (d DayOfWeek) Order() int {
	order, ok := dayOfWeekOrder[d]
	if !ok {
		return len(dayOfWeekOrder)
	}
	return order
}

// AvailabilitySlot is a weekly recurring interval proposal, not yet persisted.
// Times are wall-clock HH:MM:SS strings, no date and no timezone.
type AvailabilitySlot struct {
	DayOfWeek DayOfWeek `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

func (s AvailabilitySlot) ConvertIntoResponse() responses.AvailabilitySlot {
	return responses.AvailabilitySlot{
		DayOfWeek: string(s.DayOfWeek),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

// UserAvailability is one persisted row of a profile's weekly schedule.
type UserAvailability struct {
	ID            string
	UserProfileID string
	DayOfWeek     DayOfWeek
	StartTime     string
	EndTime       string
	TimeModel
}

func (a UserAvailability) ConvertIntoResponse() responses.AvailabilitySlot {
	return responses.AvailabilitySlot{
		DayOfWeek: string(a.DayOfWeek),
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
	}
}

func (a UserAvailability) Slot() AvailabilitySlot {
	return AvailabilitySlot{
		DayOfWeek: a.DayOfWeek,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
	}
}

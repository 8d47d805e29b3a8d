package dataset

import "time"

// ============================================================================
// TRIP — A single bikeshare ride
// ============================================================================

// Trip is one row of a city trip log. Gender and BirthYear are only present
// in some cities (Washington records neither).
type Trip struct {
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Duration     float64   `json:"duration"` // seconds
	StartStation string    `json:"startStation"`
	EndStation   string    `json:"endStation"`
	UserType     string    `json:"userType"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birthYear,omitempty"` // 0 = not recorded
}

// Month returns the calendar month the trip started in.
func (t Trip) Month() time.Month { return t.StartTime.Month() }

// Weekday returns the day of week the trip started on.
func (t Trip) Weekday() time.Weekday { return t.StartTime.Weekday() }

// StartHour returns the 24h start hour of the trip.
func (t Trip) StartHour() int { return t.StartTime.Hour() }

// Route returns the "start -> end" station combination.
func (t Trip) Route() string { return t.StartStation + " -> " + t.EndStation }

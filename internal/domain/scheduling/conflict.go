package scheduling

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"turismo_agenda/internal/domain/entities"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
	ErrMissingTour = errors.New("missing tour name")
)

// RetroactiveDateError rejects a line-item dated before the current calendar
// day. It is never overridable.
type RetroactiveDateError struct {
	TourName string `json:"tour_name"`
	Date     string `json:"date"`
	Today    string `json:"today"`
}

func (e *RetroactiveDateError) Error() string {
	return fmt.Sprintf("retroactive date %s for %q (today is %s)", e.Date, e.TourName, e.Today)
}

// WarningKind classifies an advisory conflict.
type WarningKind string

const (
	// WarningSameSlot: the guide already has a booking at the exact same time.
	WarningSameSlot WarningKind = "same_slot"
	// WarningGuideDaytime: the guide already has a daytime tour that date.
	WarningGuideDaytime WarningKind = "guide_daytime"
	// WarningTourDoubleSale: the same tour is already sold for that date.
	WarningTourDoubleSale WarningKind = "tour_double_sale"
	// WarningBudgetDayOverlap: two day tours of one client fall on the same date.
	WarningBudgetDayOverlap WarningKind = "budget_day_overlap"
)

// Warning is a soft conflict. The operator may still proceed.
type Warning struct {
	Kind        WarningKind          `json:"kind"`
	Message     string               `json:"message"`
	ItemIndex   int                  `json:"item_index"`
	TourName    string               `json:"tour_name"`
	Date        string               `json:"date"`
	Time        string               `json:"time,omitempty"`
	BookingID   string               `json:"conflicting_booking_id,omitempty"`
	OrderNumber entities.OrderNumber `json:"conflicting_order_number,omitempty"`
	BudgetID    string               `json:"conflicting_budget_id,omitempty"`
	Conflicting string               `json:"conflicting_tour_name,omitempty"`
}

// Candidate is a proposed (tour, date, time?, guide) combination.
type Candidate struct {
	GuideID  string `json:"guide_id"`
	TourName string `json:"tour_name"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
}

// Report is the outcome of a check. No warnings means ALLOW.
type Report struct {
	Candidate Candidate `json:"candidate"`
	Night     bool      `json:"night"`
	Warnings  []Warning `json:"warnings"`
}

func (r Report) Allowed() bool {
	return len(r.Warnings) == 0
}

// Checker is the pure conflict decision function shared by the booking and
// the budget flows.
type Checker struct {
	night *NightClassifier
}

func NewChecker(night *NightClassifier) *Checker {
	if night == nil {
		night = NewNightClassifier()
	}
	return &Checker{night: night}
}

func (c *Checker) Night() *NightClassifier {
	return c.night
}

// Today returns the civil date of now.
func Today(now time.Time) string {
	return now.Format(entities.DateLayout)
}

// ValidateDate rejects malformed dates and dates strictly before today.
func ValidateDate(tourName, date string, today time.Time) error {
	date = strings.TrimSpace(date)
	if _, err := entities.ParseDate(date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	// Civil dates in DateLayout order lexically.
	if t := Today(today); date < t {
		return &RetroactiveDateError{TourName: tourName, Date: date, Today: t}
	}
	return nil
}

// Check evaluates a candidate against the calendar.
//
//  1. A date before today is a hard error.
//  2. Per sibling of the same guide and date: same exact time warns
//     same_slot; otherwise two day tours warn guide_daytime. Night tours never
//     conflict with anything.
//  3. Any existing departure of the same tour on the same date warns
//     tour_double_sale, whatever the guide.
func (c *Checker) Check(cand Candidate, cal *Calendar, today time.Time) (Report, error) {
	cand.TourName = strings.TrimSpace(cand.TourName)
	cand.Date = strings.TrimSpace(cand.Date)
	cand.Time = strings.TrimSpace(cand.Time)
	cand.GuideID = strings.TrimSpace(cand.GuideID)

	rep := Report{Candidate: cand, Warnings: []Warning{}}
	if cand.TourName == "" {
		return rep, ErrMissingTour
	}
	if err := ValidateDate(cand.TourName, cand.Date, today); err != nil {
		return rep, err
	}
	if err := entities.ParseTime(cand.Time); err != nil {
		return rep, fmt.Errorf("%w: %q", ErrInvalidTime, cand.Time)
	}
	if cal == nil {
		cal = NewCalendar(c.night, nil)
	}

	rep.Night = c.night.IsNight(cand.TourName)

	if cand.GuideID != "" {
		for _, o := range cal.Occupancy(cand.GuideID, cand.Date) {
			switch {
			case cand.Time != "" && o.Time == cand.Time:
				rep.Warnings = append(rep.Warnings, Warning{
					Kind:        WarningSameSlot,
					Message:     fmt.Sprintf("guide already booked at %s on %s (%s)", o.Time, o.Date, o.TourName),
					TourName:    cand.TourName,
					Date:        cand.Date,
					Time:        cand.Time,
					BookingID:   o.BookingID,
					OrderNumber: o.OrderNumber,
					Conflicting: o.TourName,
				})
			case !rep.Night && !o.Night:
				rep.Warnings = append(rep.Warnings, Warning{
					Kind:        WarningGuideDaytime,
					Message:     fmt.Sprintf("guide already has a daytime commitment on %s (%s)", o.Date, o.TourName),
					TourName:    cand.TourName,
					Date:        cand.Date,
					Time:        cand.Time,
					BookingID:   o.BookingID,
					OrderNumber: o.OrderNumber,
					Conflicting: o.TourName,
				})
			}
		}
	}

	if deps := cal.Departures(cand.TourName, cand.Date); len(deps) > 0 {
		o := deps[0]
		rep.Warnings = append(rep.Warnings, Warning{
			Kind:        WarningTourDoubleSale,
			Message:     fmt.Sprintf("%q already has %d booking(s) on %s", cand.TourName, len(deps), cand.Date),
			TourName:    cand.TourName,
			Date:        cand.Date,
			Time:        cand.Time,
			BookingID:   o.BookingID,
			OrderNumber: o.OrderNumber,
			Conflicting: o.TourName,
		})
	}

	return rep, nil
}

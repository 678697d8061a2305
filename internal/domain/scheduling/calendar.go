package scheduling

import (
	"strings"

	"turismo_agenda/internal/domain/entities"
)

// Occupation is one slot taken on the calendar.
type Occupation struct {
	BookingID   string               `json:"booking_id,omitempty"`
	OrderNumber entities.OrderNumber `json:"order_number,omitempty"`
	GuideID     string               `json:"guide_id,omitempty"`
	TourName    string               `json:"tour_name"`
	Date        string               `json:"date"`
	Time        string               `json:"time,omitempty"`
	Night       bool                 `json:"night"`
	// Staged marks an item of the cart being committed rather than a persisted row.
	Staged bool `json:"staged,omitempty"`
}

type slotKey struct {
	owner string
	date  string
}

// Calendar is the derived occupancy view: every non-cancelled booking indexed
// by (guide, date) and by (tour, date). It is rebuilt from current bookings on
// each check and never stored.
type Calendar struct {
	night   *NightClassifier
	byGuide map[slotKey][]Occupation
	byTour  map[slotKey][]Occupation
}

func NewCalendar(night *NightClassifier, bookings []entities.Booking) *Calendar {
	if night == nil {
		night = NewNightClassifier()
	}
	c := &Calendar{
		night:   night,
		byGuide: make(map[slotKey][]Occupation),
		byTour:  make(map[slotKey][]Occupation),
	}
	for _, b := range bookings {
		if b.Cancelled() {
			continue
		}
		c.Add(Occupation{
			BookingID:   b.ID,
			OrderNumber: b.OrderNumber,
			GuideID:     b.GuideID,
			TourName:    b.TourName,
			Date:        strings.TrimSpace(b.Date),
			Time:        strings.TrimSpace(b.Time),
		})
	}
	return c
}

// Add places an occupation on the calendar. Night is recomputed from the tour name.
func (c *Calendar) Add(o Occupation) {
	o.Night = c.night.IsNight(o.TourName)
	if o.GuideID != "" {
		k := slotKey{owner: o.GuideID, date: o.Date}
		c.byGuide[k] = append(c.byGuide[k], o)
	}
	k := slotKey{owner: normalizeTour(o.TourName), date: o.Date}
	c.byTour[k] = append(c.byTour[k], o)
}

// Stage adds a cart line-item that is not persisted yet, so later items of the
// same cart are checked against it.
func (c *Calendar) Stage(guideID string, item entities.LineItem) {
	c.Add(Occupation{
		GuideID:  guideID,
		TourName: item.TourName,
		Date:     strings.TrimSpace(item.Date),
		Time:     strings.TrimSpace(item.Time),
		Staged:   true,
	})
}

// Occupancy lists what the guide is booked for on the date.
func (c *Calendar) Occupancy(guideID, date string) []Occupation {
	src := c.byGuide[slotKey{owner: guideID, date: strings.TrimSpace(date)}]
	out := make([]Occupation, len(src))
	copy(out, src)
	return out
}

// Departures lists every occupation of the tour on the date, whatever the guide.
func (c *Calendar) Departures(tourName, date string) []Occupation {
	src := c.byTour[slotKey{owner: normalizeTour(tourName), date: strings.TrimSpace(date)}]
	out := make([]Occupation, len(src))
	copy(out, src)
	return out
}

func normalizeTour(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

package scheduling

import (
	"testing"

	"turismo_agenda/internal/domain/entities"
)

func TestCalendar(t *testing.T) {
	cal := NewCalendar(nil, []entities.Booking{
		booking("b1", "g1", "City Tour", "2025-05-21", "09:00", entities.BookingStatusConfirmado),
		booking("b2", "g1", "Passarela by Night", " 2025-05-21 ", "20:00", entities.BookingStatusPendente),
		booking("b3", "g1", "Beach", "2025-05-21", "", entities.BookingStatusCancelado),
		booking("b4", "g2", "city  TOUR", "2025-05-21", "", entities.BookingStatusConfirmado),
		booking("b5", "", "City Tour", "2025-05-21", "", entities.BookingStatusConfirmado),
	})

	t.Run("occupancy skips cancelled rows", func(t *testing.T) {
		occ := cal.Occupancy("g1", "2025-05-21")
		if len(occ) != 2 {
			t.Fatalf("expected 2 occupations, got %+v", occ)
		}
		if occ[0].Night || !occ[1].Night {
			t.Fatalf("unexpected night flags %+v", occ)
		}
	})

	t.Run("departures ignore guide and name spacing", func(t *testing.T) {
		deps := cal.Departures("City Tour", "2025-05-21")
		if len(deps) != 3 {
			t.Fatalf("expected 3 departures, got %+v", deps)
		}
	})

	t.Run("staged items are visible", func(t *testing.T) {
		cal.Stage("g2", entities.LineItem{TourName: "Aquario", Date: "2025-05-22", Time: "10:00"})
		occ := cal.Occupancy("g2", "2025-05-22")
		if len(occ) != 1 || !occ[0].Staged || occ[0].BookingID != "" {
			t.Fatalf("unexpected staged occupation %+v", occ)
		}
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		occ := cal.Occupancy("g1", "2025-05-21")
		occ[0].TourName = "changed"
		if cal.Occupancy("g1", "2025-05-21")[0].TourName != "City Tour" {
			t.Fatalf("calendar was mutated through a returned slice")
		}
	})
}

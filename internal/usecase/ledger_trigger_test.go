package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"turismo_agenda/internal/domain/entities"
	mock_interfaces "turismo_agenda/internal/usecase/interfaces/mocks"
	"turismo_agenda/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestShouldEmit(t *testing.T) {
	hundred := decimal.RequireFromString("100")
	cases := []struct {
		name     string
		previous entities.BookingStatus
		current  entities.BookingStatus
		amount   decimal.Decimal
		want     bool
	}{
		{name: "new confirmed", previous: "", current: entities.BookingStatusConfirmado, amount: hundred, want: true},
		{name: "pending to confirmed", previous: entities.BookingStatusPendente, current: entities.BookingStatusConfirmado, amount: hundred, want: true},
		{name: "confirmed re-save", previous: entities.BookingStatusConfirmado, current: entities.BookingStatusConfirmado, amount: hundred, want: false},
		{name: "confirmed to cancelled", previous: entities.BookingStatusConfirmado, current: entities.BookingStatusCancelado, amount: hundred, want: false},
		{name: "zero amount", previous: entities.BookingStatusPendente, current: entities.BookingStatusConfirmado, amount: decimal.Zero, want: false},
		{name: "pending stays pending", previous: entities.BookingStatusPendente, current: entities.BookingStatusPendente, amount: hundred, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShouldEmit(tc.previous, tc.current, tc.amount); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestLedgerTrigger_OnStatusChange(t *testing.T) {
	ctx := context.Background()
	rows := []entities.Booking{
		{ID: "a", TourName: "City Tour", Price: decimal.RequireFromString("100.50")},
		{ID: "b", TourName: "  ", Price: decimal.RequireFromString("20")},
	}

	t.Run("writes one entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		trig := NewLedgerTrigger(repo, logger.NewNop(), nil).WithClock(func() time.Time { return fixedNow })

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.LedgerEntry{})).DoAndReturn(
			func(_ context.Context, e entities.LedgerEntry) (entities.LedgerEntry, error) {
				if e.ID == "" || e.Category != LedgerCategoryPasseios || e.Direction != entities.LedgerDirectionEntrada || e.Status != entities.LedgerStatusPago {
					t.Fatalf("unexpected entry %+v", e)
				}
				if e.Date != today || e.Description != "City Tour - Ana" || e.Originator != "Agendamento Agend.0003" {
					t.Fatalf("unexpected entry %+v", e)
				}
				if !e.Amount.Equal(decimal.RequireFromString("120.5")) {
					t.Fatalf("expected 120.50, got %s", e.Amount)
				}
				return e, nil
			},
		)

		entry, err := trig.OnStatusChange(ctx, StatusChange{
			Current:     entities.BookingStatusConfirmado,
			OrderNumber: "Agend.0003",
			ClientName:  "Ana",
			Bookings:    rows,
		})
		if err != nil || entry == nil {
			t.Fatalf("expected entry, got %+v (%v)", entry, err)
		}
	})

	t.Run("no entry when the rule does not fire", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		trig := NewLedgerTrigger(repo, logger.NewNop(), nil)

		entry, err := trig.OnStatusChange(ctx, StatusChange{
			Previous: entities.BookingStatusConfirmado,
			Current:  entities.BookingStatusConfirmado,
			Bookings: rows,
		})
		if err != nil || entry != nil {
			t.Fatalf("expected nothing, got %+v (%v)", entry, err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		trig := NewLedgerTrigger(repo, logger.NewNop(), nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LedgerEntry{}, errors.New("db"))

		_, err := trig.OnStatusChange(ctx, StatusChange{Current: entities.BookingStatusConfirmado, Bookings: rows})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestLedgerTrigger_ListEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid range", func(t *testing.T) {
		trig := NewLedgerTrigger(nil, logger.NewNop(), nil)
		if _, err := trig.ListEntries(ctx, "2026-03-10", "2026-03-01"); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
		if _, err := trig.ListEntries(ctx, "10/03/2026", ""); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		trig := NewLedgerTrigger(repo, logger.NewNop(), nil)

		repo.EXPECT().List(gomock.Any(), "2026-03-01", "").Return(nil, errors.New("db"))

		if _, err := trig.ListEntries(ctx, "2026-03-01", ""); !errors.Is(err, ErrPersistenceUnavailable) {
			t.Fatalf("expected ErrPersistenceUnavailable, got %v", err)
		}
	})
}

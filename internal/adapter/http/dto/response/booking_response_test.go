package response

import (
	"testing"
	"time"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/domain/scheduling"

	"github.com/shopspring/decimal"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	rows := []entities.Booking{
		{ID: "b-1", OrderNumber: "Agend.0001", TourName: "City Tour", Price: decimal.RequireFromString("100"), Pax: entities.Pax{Adult: 2}, CreatedAt: now},
		{ID: "b-2", OrderNumber: "Agend.0001", TourName: "Reef Tour", Price: decimal.RequireFromString("50.5"), GuidePayout: decimal.NewFromInt(120), CreatedAt: now},
	}
	entry := &entities.LedgerEntry{ID: "t-1", Amount: decimal.RequireFromString("150.5"), Direction: entities.LedgerDirectionEntrada}

	resp := FromOrder("Agend.0001", rows, nil, entry)
	if resp.OrderNumber != "Agend.0001" {
		t.Fatalf("unexpected order number %q", resp.OrderNumber)
	}
	if resp.Total != "150.50" {
		t.Fatalf("expected total 150.50, got %q", resp.Total)
	}
	if len(resp.Bookings) != 2 || resp.Bookings[0].Price != "100.00" || resp.Bookings[1].GuidePayout != "120.00" {
		t.Fatalf("unexpected bookings %+v", resp.Bookings)
	}
	if resp.Bookings[0].Pax.Total != 2 {
		t.Fatalf("expected pax total 2, got %d", resp.Bookings[0].Pax.Total)
	}
	if resp.LedgerEntry == nil || resp.LedgerEntry.Amount != "150.50" || resp.LedgerEntry.Direction != "ENTRADA" {
		t.Fatalf("unexpected ledger entry %+v", resp.LedgerEntry)
	}
}

func TestFromReport(t *testing.T) {
	t.Run("no warnings is allowed", func(t *testing.T) {
		resp := FromReport(scheduling.Report{Night: true})
		if !resp.Allowed || !resp.Night {
			t.Fatalf("expected allowed night report, got %+v", resp)
		}
		if resp.Warnings == nil {
			t.Fatalf("expected empty warnings slice, got nil")
		}
	})

	t.Run("warnings block", func(t *testing.T) {
		resp := FromReport(scheduling.Report{Warnings: []scheduling.Warning{{Kind: scheduling.WarningGuideDaytime}}})
		if resp.Allowed {
			t.Fatalf("expected not allowed")
		}
	})
}

func TestFromBudget(t *testing.T) {
	b := entities.Budget{
		ID:                  "bud-1",
		Number:              "Orc.0001",
		Items:               []entities.BudgetItem{{ID: "i-1", TourName: "City Tour", Price: decimal.NewFromInt(80)}},
		Status:              entities.BudgetStatusAprovado,
		Total:               decimal.NewFromInt(80),
		PromotedOrderNumber: "Orc.0001",
	}
	resp := FromBudget(b)
	if resp.Total != "80.00" || resp.Items[0].Price != "80.00" || resp.Status != "APROVADO" || resp.PromotedOrderNumber != "Orc.0001" {
		t.Fatalf("unexpected budget response %+v", resp)
	}
}

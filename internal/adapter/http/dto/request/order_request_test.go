package request

import (
	"testing"

	"turismo_agenda/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestOrderRequest_ToLineItemsAndShared(t *testing.T) {
	r := OrderRequest{
		Items: []LineItemRequest{
			{TourName: " City Tour ", Date: " 2025-06-01 ", Time: " 08:00", Pax: PaxRequest{Adult: 2, Child: 1}, Price: decimal.RequireFromString("150.00")},
		},
		ClientID:   " c-1 ",
		ClientName: " Ana ",
		GuideID:    " g-1",
		Status:     " confirmado ",
	}

	items := r.ToLineItems()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].TourName != "City Tour" || items[0].Date != "2025-06-01" || items[0].Time != "08:00" {
		t.Fatalf("expected trimmed item, got %+v", items[0])
	}
	if items[0].Pax.Total() != 3 {
		t.Fatalf("expected 3 pax, got %d", items[0].Pax.Total())
	}

	shared := r.ToShared()
	if shared.ClientID != "c-1" || shared.ClientName != "Ana" || shared.GuideID != "g-1" {
		t.Fatalf("unexpected shared fields %+v", shared)
	}
	if shared.Status != entities.BookingStatusConfirmado {
		t.Fatalf("expected CONFIRMADO, got %q", shared.Status)
	}
}

func TestResolveBookingStatus_EmptyStaysEmpty(t *testing.T) {
	if got := ResolveBookingStatus("  "); got != "" {
		t.Fatalf("expected empty status, got %q", got)
	}
}

func TestBookingQuery_ToFilter(t *testing.T) {
	q := BookingQuery{GuideID: " g-1 ", Date: "2025-06-01", OrderNumber: " Agend.0003 ", IncludeCancelled: true}
	f := q.ToFilter()
	if f.GuideID != "g-1" || f.OrderNumber != "Agend.0003" || !f.IncludeCancelled {
		t.Fatalf("unexpected filter %+v", f)
	}
}

func TestBudgetRequest_ToItems(t *testing.T) {
	r := BudgetRequest{Items: []BudgetItemRequest{{TourName: " Reef Tour", Date: "2025-06-02 ", Price: decimal.NewFromInt(90)}}}
	items := r.ToItems()
	if len(items) != 1 || items[0].TourName != "Reef Tour" || items[0].Date != "2025-06-02" {
		t.Fatalf("unexpected items %+v", items)
	}
	if !items[0].Price.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected price 90, got %s", items[0].Price)
	}
}

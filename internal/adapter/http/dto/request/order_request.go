package request

import (
	"strings"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/domain/scheduling"
	"turismo_agenda/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

type PaxRequest struct {
	Adult int `json:"adult" binding:"min=0"`
	Child int `json:"child" binding:"min=0"`
	Free  int `json:"free" binding:"min=0"`
}

func (p PaxRequest) ToEntity() entities.Pax {
	return entities.Pax{Adult: p.Adult, Child: p.Child, Free: p.Free}
}

type LineItemRequest struct {
	TourName string          `json:"tour_name" binding:"required"`
	Date     string          `json:"date" binding:"required"`
	Time     string          `json:"time"`
	Pax      PaxRequest      `json:"pax"`
	Price    decimal.Decimal `json:"price"`
	Note     string          `json:"note"`
}

// OrderRequest is the payload of the order modal: a cart of line-items plus
// the fields shared by every row of the order.
type OrderRequest struct {
	Items               []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	ClientID            string            `json:"client_id"`
	ClientName          string            `json:"client_name"`
	ClientContact       string            `json:"client_contact"`
	GuideID             string            `json:"guide_id"`
	Location            string            `json:"location"`
	PaymentMethod       string            `json:"payment_method"`
	Status              string            `json:"status"`
	AcknowledgeWarnings bool              `json:"acknowledge_warnings"`
}

func (r OrderRequest) ToLineItems() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.LineItem{
			TourName: strings.TrimSpace(it.TourName),
			Date:     strings.TrimSpace(it.Date),
			Time:     strings.TrimSpace(it.Time),
			Pax:      it.Pax.ToEntity(),
			Price:    it.Price,
			Note:     it.Note,
		})
	}
	return items
}

func (r OrderRequest) ToShared() entities.OrderShared {
	return entities.OrderShared{
		ClientID:      strings.TrimSpace(r.ClientID),
		ClientName:    strings.TrimSpace(r.ClientName),
		ClientContact: strings.TrimSpace(r.ClientContact),
		GuideID:       strings.TrimSpace(r.GuideID),
		Location:      r.Location,
		PaymentMethod: r.PaymentMethod,
		Status:        ResolveBookingStatus(r.Status),
	}
}

// ResolveBookingStatus upper-cases the label; empty stays empty so the use
// case applies its default.
func ResolveBookingStatus(s string) entities.BookingStatus {
	return entities.BookingStatus(strings.ToUpper(strings.TrimSpace(s)))
}

// CheckRequest asks for the conflict report of one candidate line-item.
type CheckRequest struct {
	GuideID  string `json:"guide_id"`
	TourName string `json:"tour_name" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time"`
}

func (r CheckRequest) ToCandidate() scheduling.Candidate {
	return scheduling.Candidate{
		GuideID:  strings.TrimSpace(r.GuideID),
		TourName: strings.TrimSpace(r.TourName),
		Date:     strings.TrimSpace(r.Date),
		Time:     strings.TrimSpace(r.Time),
	}
}

// BookingQuery binds the booking list filters from the query string.
type BookingQuery struct {
	GuideID          string `form:"guide_id"`
	Date             string `form:"date"`
	TourName         string `form:"tour_name"`
	ClientID         string `form:"client_id"`
	OrderNumber      string `form:"order_number"`
	IncludeCancelled bool   `form:"include_cancelled"`
}

func (q BookingQuery) ToFilter() interfaces.BookingFilter {
	return interfaces.BookingFilter{
		GuideID:          strings.TrimSpace(q.GuideID),
		Date:             strings.TrimSpace(q.Date),
		TourName:         strings.TrimSpace(q.TourName),
		ClientID:         strings.TrimSpace(q.ClientID),
		OrderNumber:      entities.OrderNumber(strings.TrimSpace(q.OrderNumber)),
		IncludeCancelled: q.IncludeCancelled,
	}
}

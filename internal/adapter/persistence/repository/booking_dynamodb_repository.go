package repository

import (
	"context"
	"sort"

	"turismo_agenda/internal/domain/entities"
	"turismo_agenda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsOrderNumberIndex = "order_number-index"
	bookingsDateIndex        = "date-index"
)

type bookingItem struct {
	ID            string `dynamodbav:"id"`
	OrderNumber   string `dynamodbav:"order_number,omitempty"`
	ClientID      string `dynamodbav:"client_id"`
	ClientName    string `dynamodbav:"client_name"`
	ClientContact string `dynamodbav:"client_contact,omitempty"`
	TourName      string `dynamodbav:"tour_name"`
	Date          string `dynamodbav:"date"`
	Time          string `dynamodbav:"time,omitempty"`
	PaxAdult      int    `dynamodbav:"pax_adult"`
	PaxChild      int    `dynamodbav:"pax_child"`
	PaxFree       int    `dynamodbav:"pax_free"`
	Price         string `dynamodbav:"price"`
	Status        string `dynamodbav:"status"`
	GuideID       string `dynamodbav:"guide_id,omitempty"`
	GuideName     string `dynamodbav:"guide_name,omitempty"`
	GuidePayout   string `dynamodbav:"guide_payout"`
	Location      string `dynamodbav:"location,omitempty"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	Note          string `dynamodbav:"note,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists booking rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_number-index (PK: order_number)
//   - GSI: date-index (PK: date)
//
// order_number is omitted for orders of one so the sparse index only holds
// grouped rows. Lists without a date fall back to a scan.
type BookingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb DynamoAPI) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) List(ctx context.Context, f interfaces.BookingFilter) ([]entities.Booking, error) {
	var (
		rows []entities.Booking
		err  error
	)
	switch {
	case !f.OrderNumber.IsZero():
		rows, err = r.query(ctx, bookingsOrderNumberIndex, "order_number", f.OrderNumber.String())
	case f.Date != "":
		rows, err = r.query(ctx, bookingsDateIndex, "date", f.Date)
	default:
		rows, err = r.scan(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]entities.Booking, 0, len(rows))
	for _, b := range rows {
		if f.Match(b) {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

func (r *BookingDynamoRepository) ListByOrderNumber(ctx context.Context, n entities.OrderNumber) ([]entities.Booking, error) {
	if n.IsZero() {
		return []entities.Booking{}, nil
	}
	rows, err := r.query(ctx, bookingsOrderNumberIndex, "order_number", n.String())
	if err != nil {
		return nil, err
	}
	sortBookings(rows)
	return rows, nil
}

func (r *BookingDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// Count scans with Select=COUNT, summing every page.
func (r *BookingDynamoRepository) Count(ctx context.Context) (int, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	total := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func (r *BookingDynamoRepository) query(ctx context.Context, index, attr, value string) ([]entities.Booking, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})

	rows := make([]entities.Booking, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeBookings(page.Items)
		if err != nil {
			return nil, err
		}
		rows = append(rows, decoded...)
	}
	return rows, nil
}

func (r *BookingDynamoRepository) scan(ctx context.Context) ([]entities.Booking, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	rows := make([]entities.Booking, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeBookings(page.Items)
		if err != nil {
			return nil, err
		}
		rows = append(rows, decoded...)
	}
	return rows, nil
}

func decodeBookings(raw []map[string]types.AttributeValue) ([]entities.Booking, error) {
	var items []bookingItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Booking, 0, len(items))
	for _, it := range items {
		out = append(out, fromBookingItem(it))
	}
	return out, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:            b.ID,
		OrderNumber:   b.OrderNumber.String(),
		ClientID:      b.ClientID,
		ClientName:    b.ClientName,
		ClientContact: b.ClientContact,
		TourName:      b.TourName,
		Date:          b.Date,
		Time:          b.Time,
		PaxAdult:      b.Pax.Adult,
		PaxChild:      b.Pax.Child,
		PaxFree:       b.Pax.Free,
		Price:         decimalToString(b.Price),
		Status:        string(b.Status),
		GuideID:       b.GuideID,
		GuideName:     b.GuideName,
		GuidePayout:   decimalToString(b.GuidePayout),
		Location:      b.Location,
		PaymentMethod: b.PaymentMethod,
		Note:          b.Note,
		CreatedAt:     formatTimestamp(b.CreatedAt),
		UpdatedAt:     formatTimestamp(b.UpdatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:            it.ID,
		OrderNumber:   entities.OrderNumber(it.OrderNumber),
		ClientID:      it.ClientID,
		ClientName:    it.ClientName,
		ClientContact: it.ClientContact,
		TourName:      it.TourName,
		Date:          it.Date,
		Time:          it.Time,
		Pax:           entities.Pax{Adult: it.PaxAdult, Child: it.PaxChild, Free: it.PaxFree},
		Price:         parseDecimal(it.Price),
		Status:        entities.BookingStatus(it.Status),
		GuideID:       it.GuideID,
		GuideName:     it.GuideName,
		GuidePayout:   parseDecimal(it.GuidePayout),
		Location:      it.Location,
		PaymentMethod: it.PaymentMethod,
		Note:          it.Note,
		CreatedAt:     parseTimestamp(it.CreatedAt),
		UpdatedAt:     parseTimestamp(it.UpdatedAt),
	}
}

func sortBookings(rows []entities.Booking) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

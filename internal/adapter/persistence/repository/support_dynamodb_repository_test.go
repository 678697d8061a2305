package repository

import (
	"context"
	"testing"
	"time"

	"turismo_agenda/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func TestCounterDynamoRepository_Next(t *testing.T) {
	ctx := context.Background()
	repo := NewCounterDynamoRepository(newFakeDynamo())

	for want := 1; want <= 3; want++ {
		got, err := repo.Next(ctx, "orders")
		if err != nil || got != want {
			t.Fatalf("expected %d, got %d (%v)", want, got, err)
		}
	}
	if got, _ := repo.Next(ctx, "budgets"); got != 1 {
		t.Fatalf("counters must be independent, got %d", got)
	}
}

func TestTransactionDynamoRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionDynamoRepository(newFakeDynamo())
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for i, date := range []string{"2026-03-20", "2026-03-05", "2026-02-28", "2026-03-05"} {
		_, err := repo.Create(ctx, entities.LedgerEntry{
			ID:        string(rune('a' + i)),
			Date:      date,
			Amount:    decimal.RequireFromString("10"),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.List(ctx, "2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %+v", got)
	}
	if got[0].ID != "b" || got[1].ID != "d" || got[2].ID != "a" {
		t.Fatalf("unexpected order %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[0].Amount.StringFixed(2) != "10.00" {
		t.Fatalf("amount lost: %s", got[0].Amount)
	}

	all, err := repo.List(ctx, "", "")
	if err != nil || len(all) != 4 {
		t.Fatalf("expected every entry, got %d (%v)", len(all), err)
	}
}

func TestReferenceDynamoRepositories(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	fake.items["g1"] = map[string]types.AttributeValue{
		"id":         &types.AttributeValueMemberS{Value: "g1"},
		"name":       &types.AttributeValueMemberS{Value: "Carla"},
		"role":       &types.AttributeValueMemberS{Value: "guia"},
		"daily_rate": &types.AttributeValueMemberS{Value: "250.00"},
		"active":     &types.AttributeValueMemberBOOL{Value: true},
	}
	fake.items["c1"] = map[string]types.AttributeValue{
		"id":    &types.AttributeValueMemberS{Value: "c1"},
		"name":  &types.AttributeValueMemberS{Value: "Ana"},
		"phone": &types.AttributeValueMemberS{Value: "+55 11 99999-0000"},
	}

	guide, err := NewGuideDynamoRepository(fake).GetByID(ctx, "g1")
	if err != nil || guide.Name != "Carla" || !guide.Active || guide.DailyRate.StringFixed(2) != "250.00" {
		t.Fatalf("unexpected guide %+v (%v)", guide, err)
	}

	client, err := NewClientDynamoRepository(fake).GetByID(ctx, "c1")
	if err != nil || client.Name != "Ana" || client.Phone == "" {
		t.Fatalf("unexpected client %+v (%v)", client, err)
	}

	missing, err := NewClientDynamoRepository(fake).GetByID(ctx, "c9")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero client, got %+v (%v)", missing, err)
	}
}

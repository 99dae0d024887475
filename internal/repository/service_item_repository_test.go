package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
)

func seedServiceItem(t *testing.T, db *gorm.DB, proposalID uuid.UUID, startDate *time.Time) *domain.ServiceItem {
	t.Helper()
	item := &domain.ServiceItem{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		ProposalID:  proposalID,
		Type:        domain.ServiceTypeFlight,
		Description: "GRU - LIS, ida e volta",
		Value:       3200,
		StartDate:   startDate,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to seed service item: %v", err)
	}
	return item
}

func TestServiceItemRepository_ProjectCalendarDates(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewServiceItemRepository(db)
	ctx := context.Background()

	proposalID := uuid.New()
	otherProposalID := uuid.New()
	departure := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)

	dated := seedServiceItem(t, db, proposalID, &departure)
	undated := seedServiceItem(t, db, proposalID, nil)
	foreign := seedServiceItem(t, db, otherProposalID, &departure)

	if err := repo.ProjectCalendarDates(ctx, proposalID); err != nil {
		t.Fatalf("failed to project calendar dates: %v", err)
	}

	reload := func(id uuid.UUID) *domain.ServiceItem {
		var item domain.ServiceItem
		if err := db.First(&item, "id = ?", id).Error; err != nil {
			t.Fatalf("failed to reload service item: %v", err)
		}
		return &item
	}

	if got := reload(dated.ID); got.CalendarDate == nil || got.CalendarDate.Unix() != departure.Unix() {
		t.Errorf("expected calendar date %v, got %v", departure, got.CalendarDate)
	}
	if got := reload(undated.ID); got.CalendarDate != nil {
		t.Errorf("expected a line without start date to stay unprojected, got %v", got.CalendarDate)
	}
	if got := reload(foreign.ID); got.CalendarDate != nil {
		t.Errorf("expected another proposal's line to be untouched, got %v", got.CalendarDate)
	}
}

func TestServiceItemRepository_ClearCalendarDates(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewServiceItemRepository(db)
	ctx := context.Background()

	proposalID := uuid.New()
	otherProposalID := uuid.New()
	departure := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)

	cleared := seedServiceItem(t, db, proposalID, &departure)
	foreign := seedServiceItem(t, db, otherProposalID, &departure)
	if err := repo.ProjectCalendarDates(ctx, proposalID); err != nil {
		t.Fatalf("failed to project calendar dates: %v", err)
	}
	if err := repo.ProjectCalendarDates(ctx, otherProposalID); err != nil {
		t.Fatalf("failed to project calendar dates: %v", err)
	}

	if err := repo.ClearCalendarDates(ctx, proposalID); err != nil {
		t.Fatalf("failed to clear calendar dates: %v", err)
	}

	var clearedItem domain.ServiceItem
	if err := db.First(&clearedItem, "id = ?", cleared.ID).Error; err != nil {
		t.Fatalf("failed to reload service item: %v", err)
	}
	if clearedItem.CalendarDate != nil {
		t.Errorf("expected calendar date cleared, got %v", clearedItem.CalendarDate)
	}

	var foreignItem domain.ServiceItem
	if err := db.First(&foreignItem, "id = ?", foreign.ID).Error; err != nil {
		t.Fatalf("failed to reload service item: %v", err)
	}
	if foreignItem.CalendarDate == nil {
		t.Error("expected another proposal's projection to survive")
	}
}

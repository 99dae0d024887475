package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
)

func seedStage(t *testing.T, db *gorm.DB, agencyID uuid.UUID, name string, sortOrder int, isClosed bool) *domain.Stage {
	t.Helper()
	stage := &domain.Stage{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		AgencyID:  agencyID,
		Name:      name,
		IsClosed:  isClosed,
		SortOrder: sortOrder,
	}
	if err := db.Create(stage).Error; err != nil {
		t.Fatalf("failed to seed stage: %v", err)
	}
	return stage
}

func TestStageRepository_Reorder(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewStageRepository(db)
	ctx := context.Background()

	agencyID := uuid.New()
	first := seedStage(t, db, agencyID, "Em negociação", 0, false)
	second := seedStage(t, db, agencyID, "Aguardando pagamento", 1, false)
	third := seedStage(t, db, agencyID, "Fechado", 2, true)
	foreign := seedStage(t, db, uuid.New(), "Outro funil", 7, false)

	err := repo.Reorder(ctx, agencyID, []uuid.UUID{third.ID, first.ID, second.ID, foreign.ID})
	if err != nil {
		t.Fatalf("failed to reorder stages: %v", err)
	}

	stages, err := repo.FindByAgencyID(ctx, agencyID)
	if err != nil {
		t.Fatalf("failed to find stages: %v", err)
	}
	if len(stages) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(stages))
	}
	wantOrder := []uuid.UUID{third.ID, first.ID, second.ID}
	for i, stage := range stages {
		if stage.ID != wantOrder[i] {
			t.Errorf("expected stage %s at position %d, got %s", wantOrder[i], i, stage.ID)
		}
	}

	// a stage of another agency never moves, even when its ID is passed in
	var untouched domain.Stage
	if err := db.First(&untouched, "id = ?", foreign.ID).Error; err != nil {
		t.Fatalf("failed to reload stage: %v", err)
	}
	if untouched.SortOrder != 7 {
		t.Errorf("expected the foreign stage to keep sort order 7, got %d", untouched.SortOrder)
	}
}

func TestStageRepository_FindClosedByAgencyID(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewStageRepository(db)
	ctx := context.Background()

	agencyID := uuid.New()
	seedStage(t, db, agencyID, "Em negociação", 0, false)
	won := seedStage(t, db, agencyID, "Fechado", 2, true)
	alsoWon := seedStage(t, db, agencyID, "Pago", 3, true)
	seedStage(t, db, uuid.New(), "Fechado", 0, true)

	stages, err := repo.FindClosedByAgencyID(ctx, agencyID)
	if err != nil {
		t.Fatalf("failed to find closed stages: %v", err)
	}
	if len(stages) != 2 {
		t.Fatalf("expected 2 closed stages, got %d", len(stages))
	}
	if stages[0].ID != won.ID || stages[1].ID != alsoWon.ID {
		t.Errorf("expected closed stages in pipeline order, got %s then %s", stages[0].ID, stages[1].ID)
	}
}

func TestStageRepository_FindByAgencyID_PipelineOrder(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewStageRepository(db)
	ctx := context.Background()

	agencyID := uuid.New()
	last := seedStage(t, db, agencyID, "Fechado", 5, true)
	head := seedStage(t, db, agencyID, "Novo contato", 0, false)

	stages, err := repo.FindByAgencyID(ctx, agencyID)
	if err != nil {
		t.Fatalf("failed to find stages: %v", err)
	}
	if len(stages) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(stages))
	}
	if stages[0].ID != head.ID || stages[1].ID != last.ID {
		t.Errorf("expected stages sorted by sort order, got %s then %s", stages[0].ID, stages[1].ID)
	}
}

package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travel-crm-api/internal/domain"
	"travel-crm-api/internal/dto"
	"travel-crm-api/internal/repository"
)

// MockAgencyRepository is a mock implementation of AgencyRepository
type MockAgencyRepository struct {
	CreateFunc   func(ctx context.Context, agency *domain.Agency) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Agency, error)
	UpdateFunc   func(ctx context.Context, agency *domain.Agency) error
}

func (m *MockAgencyRepository) Create(ctx context.Context, agency *domain.Agency) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, agency)
	}
	return nil
}

func (m *MockAgencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAgencyRepository) Update(ctx context.Context, agency *domain.Agency) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, agency)
	}
	return nil
}

// MockStageRepository is a mock implementation of StageRepository
type MockStageRepository struct {
	CreateFunc              func(ctx context.Context, stage *domain.Stage) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Stage, error)
	FindByAgencyIDFunc      func(ctx context.Context, agencyID uuid.UUID) ([]*domain.Stage, error)
	FindClosedByAgencyIDFunc func(ctx context.Context, agencyID uuid.UUID) ([]*domain.Stage, error)
	UpdateFunc              func(ctx context.Context, stage *domain.Stage) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	ReorderFunc             func(ctx context.Context, agencyID uuid.UUID, stageIDs []uuid.UUID) error
}

func (m *MockStageRepository) Create(ctx context.Context, stage *domain.Stage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, stage)
	}
	return nil
}

func (m *MockStageRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Stage, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStageRepository) FindByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.Stage, error) {
	if m.FindByAgencyIDFunc != nil {
		return m.FindByAgencyIDFunc(ctx, agencyID)
	}
	return nil, nil
}

func (m *MockStageRepository) FindClosedByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.Stage, error) {
	if m.FindClosedByAgencyIDFunc != nil {
		return m.FindClosedByAgencyIDFunc(ctx, agencyID)
	}
	return nil, nil
}

func (m *MockStageRepository) Update(ctx context.Context, stage *domain.Stage) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, stage)
	}
	return nil
}

func (m *MockStageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockStageRepository) Reorder(ctx context.Context, agencyID uuid.UUID, stageIDs []uuid.UUID) error {
	if m.ReorderFunc != nil {
		return m.ReorderFunc(ctx, agencyID, stageIDs)
	}
	return nil
}

// MockProposalRepository is a mock implementation of ProposalRepository
type MockProposalRepository struct {
	CreateFunc           func(ctx context.Context, proposal *domain.Proposal) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	FindByAgencyIDFunc   func(ctx context.Context, agencyID uuid.UUID) ([]*domain.Proposal, error)
	FindByStageIDFunc    func(ctx context.Context, stageID uuid.UUID) ([]*domain.Proposal, error)
	UpdateFunc           func(ctx context.Context, proposal *domain.Proposal) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	SetStageFunc         func(ctx context.Context, tx *gorm.DB, id, stageID uuid.UUID) error
	NextNumberFunc       func(ctx context.Context, agencyID uuid.UUID) (int64, error)
	AggregateByStageFunc func(ctx context.Context, agencyID uuid.UUID) ([]*repository.StageAggregate, error)
	CountFunc            func(ctx context.Context) (int64, error)
}

func (m *MockProposalRepository) Create(ctx context.Context, proposal *domain.Proposal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, proposal)
	}
	return nil
}

func (m *MockProposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProposalRepository) FindByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.Proposal, error) {
	if m.FindByAgencyIDFunc != nil {
		return m.FindByAgencyIDFunc(ctx, agencyID)
	}
	return nil, nil
}

func (m *MockProposalRepository) FindByStageID(ctx context.Context, stageID uuid.UUID) ([]*domain.Proposal, error) {
	if m.FindByStageIDFunc != nil {
		return m.FindByStageIDFunc(ctx, stageID)
	}
	return nil, nil
}

func (m *MockProposalRepository) Update(ctx context.Context, proposal *domain.Proposal) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, proposal)
	}
	return nil
}

func (m *MockProposalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProposalRepository) SetStage(ctx context.Context, tx *gorm.DB, id, stageID uuid.UUID) error {
	if m.SetStageFunc != nil {
		return m.SetStageFunc(ctx, tx, id, stageID)
	}
	return nil
}

func (m *MockProposalRepository) NextNumber(ctx context.Context, agencyID uuid.UUID) (int64, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx, agencyID)
	}
	return 1, nil
}

func (m *MockProposalRepository) AggregateByStage(ctx context.Context, agencyID uuid.UUID) ([]*repository.StageAggregate, error) {
	if m.AggregateByStageFunc != nil {
		return m.AggregateByStageFunc(ctx, agencyID)
	}
	return nil, nil
}

func (m *MockProposalRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockServiceItemRepository is a mock implementation of ServiceItemRepository
type MockServiceItemRepository struct {
	CreateFunc               func(ctx context.Context, item *domain.ServiceItem) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.ServiceItem, error)
	FindByProposalIDFunc     func(ctx context.Context, proposalID uuid.UUID) ([]*domain.ServiceItem, error)
	UpdateFunc               func(ctx context.Context, item *domain.ServiceItem) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
	ProjectCalendarDatesFunc func(ctx context.Context, proposalID uuid.UUID) error
	ClearCalendarDatesFunc   func(ctx context.Context, proposalID uuid.UUID) error
}

func (m *MockServiceItemRepository) Create(ctx context.Context, item *domain.ServiceItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockServiceItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ServiceItem, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockServiceItemRepository) FindByProposalID(ctx context.Context, proposalID uuid.UUID) ([]*domain.ServiceItem, error) {
	if m.FindByProposalIDFunc != nil {
		return m.FindByProposalIDFunc(ctx, proposalID)
	}
	return nil, nil
}

func (m *MockServiceItemRepository) Update(ctx context.Context, item *domain.ServiceItem) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *MockServiceItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockServiceItemRepository) ProjectCalendarDates(ctx context.Context, proposalID uuid.UUID) error {
	if m.ProjectCalendarDatesFunc != nil {
		return m.ProjectCalendarDatesFunc(ctx, proposalID)
	}
	return nil
}

func (m *MockServiceItemRepository) ClearCalendarDates(ctx context.Context, proposalID uuid.UUID) error {
	if m.ClearCalendarDatesFunc != nil {
		return m.ClearCalendarDatesFunc(ctx, proposalID)
	}
	return nil
}

// MockCollaboratorRepository is a mock implementation of CollaboratorRepository
type MockCollaboratorRepository struct {
	CreateFunc             func(ctx context.Context, collaborator *domain.Collaborator) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Collaborator, error)
	FindByAgencyIDFunc     func(ctx context.Context, agencyID uuid.UUID) ([]*domain.Collaborator, error)
	FindByAgencyAndUserFunc func(ctx context.Context, agencyID, userID uuid.UUID) (*domain.Collaborator, error)
	UpdateFunc             func(ctx context.Context, collaborator *domain.Collaborator) error
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCollaboratorRepository) Create(ctx context.Context, collaborator *domain.Collaborator) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, collaborator)
	}
	return nil
}

func (m *MockCollaboratorRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Collaborator, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCollaboratorRepository) FindByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.Collaborator, error) {
	if m.FindByAgencyIDFunc != nil {
		return m.FindByAgencyIDFunc(ctx, agencyID)
	}
	return nil, nil
}

func (m *MockCollaboratorRepository) FindByAgencyAndUser(ctx context.Context, agencyID, userID uuid.UUID) (*domain.Collaborator, error) {
	if m.FindByAgencyAndUserFunc != nil {
		return m.FindByAgencyAndUserFunc(ctx, agencyID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCollaboratorRepository) Update(ctx context.Context, collaborator *domain.Collaborator) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, collaborator)
	}
	return nil
}

func (m *MockCollaboratorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	CreateFunc                      func(ctx context.Context, transaction *domain.FinancialTransaction) error
	FindByIDFunc                    func(ctx context.Context, id uuid.UUID) (*domain.FinancialTransaction, error)
	FindByProposalIDFunc            func(ctx context.Context, proposalID uuid.UUID, txType domain.TransactionType) ([]*domain.FinancialTransaction, error)
	FindByAgencyIDFunc              func(ctx context.Context, agencyID uuid.UUID) ([]*domain.FinancialTransaction, error)
	CancelFunc                      func(ctx context.Context, id uuid.UUID) error
	CancelByProposalIDFunc          func(ctx context.Context, proposalID uuid.UUID, txType domain.TransactionType) (int64, error)
	HasActiveByProposalIDFunc       func(ctx context.Context, proposalID uuid.UUID) (bool, error)
	CountPendingFunc                func(ctx context.Context) (int64, error)
	FindPendingForOpenProposalsFunc func(ctx context.Context) ([]*domain.FinancialTransaction, error)
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *domain.FinancialTransaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, transaction)
	}
	return nil
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FinancialTransaction, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTransactionRepository) FindByProposalID(ctx context.Context, proposalID uuid.UUID, txType domain.TransactionType) ([]*domain.FinancialTransaction, error) {
	if m.FindByProposalIDFunc != nil {
		return m.FindByProposalIDFunc(ctx, proposalID, txType)
	}
	return nil, nil
}

func (m *MockTransactionRepository) FindByAgencyID(ctx context.Context, agencyID uuid.UUID) ([]*domain.FinancialTransaction, error) {
	if m.FindByAgencyIDFunc != nil {
		return m.FindByAgencyIDFunc(ctx, agencyID)
	}
	return nil, nil
}

func (m *MockTransactionRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, id)
	}
	return nil
}

func (m *MockTransactionRepository) CancelByProposalID(ctx context.Context, proposalID uuid.UUID, txType domain.TransactionType) (int64, error) {
	if m.CancelByProposalIDFunc != nil {
		return m.CancelByProposalIDFunc(ctx, proposalID, txType)
	}
	return 0, nil
}

func (m *MockTransactionRepository) HasActiveByProposalID(ctx context.Context, proposalID uuid.UUID) (bool, error) {
	if m.HasActiveByProposalIDFunc != nil {
		return m.HasActiveByProposalIDFunc(ctx, proposalID)
	}
	return false, nil
}

func (m *MockTransactionRepository) CountPending(ctx context.Context) (int64, error) {
	if m.CountPendingFunc != nil {
		return m.CountPendingFunc(ctx)
	}
	return 0, nil
}

func (m *MockTransactionRepository) FindPendingForOpenProposals(ctx context.Context) ([]*domain.FinancialTransaction, error) {
	if m.FindPendingForOpenProposalsFunc != nil {
		return m.FindPendingForOpenProposalsFunc(ctx)
	}
	return nil, nil
}

// MockCommissionRepository is a mock implementation of CommissionRepository
type MockCommissionRepository struct {
	CreateFunc                      func(ctx context.Context, record *domain.CommissionRecord) error
	FindByProposalIDFunc            func(ctx context.Context, proposalID uuid.UUID) ([]*domain.CommissionRecord, error)
	FindByCollaboratorAndPeriodFunc func(ctx context.Context, collaboratorID uuid.UUID, month, year int) ([]*domain.CommissionRecord, error)
	ExistsByProposalIDFunc          func(ctx context.Context, proposalID uuid.UUID) (bool, error)
	DeleteByProposalIDFunc          func(ctx context.Context, proposalID uuid.UUID) (int64, error)
	FindForOpenProposalsFunc        func(ctx context.Context) ([]*domain.CommissionRecord, error)
}

func (m *MockCommissionRepository) Create(ctx context.Context, record *domain.CommissionRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *MockCommissionRepository) FindByProposalID(ctx context.Context, proposalID uuid.UUID) ([]*domain.CommissionRecord, error) {
	if m.FindByProposalIDFunc != nil {
		return m.FindByProposalIDFunc(ctx, proposalID)
	}
	return nil, nil
}

func (m *MockCommissionRepository) FindByCollaboratorAndPeriod(ctx context.Context, collaboratorID uuid.UUID, month, year int) ([]*domain.CommissionRecord, error) {
	if m.FindByCollaboratorAndPeriodFunc != nil {
		return m.FindByCollaboratorAndPeriodFunc(ctx, collaboratorID, month, year)
	}
	return nil, nil
}

func (m *MockCommissionRepository) ExistsByProposalID(ctx context.Context, proposalID uuid.UUID) (bool, error) {
	if m.ExistsByProposalIDFunc != nil {
		return m.ExistsByProposalIDFunc(ctx, proposalID)
	}
	return false, nil
}

func (m *MockCommissionRepository) DeleteByProposalID(ctx context.Context, proposalID uuid.UUID) (int64, error) {
	if m.DeleteByProposalIDFunc != nil {
		return m.DeleteByProposalIDFunc(ctx, proposalID)
	}
	return 0, nil
}

func (m *MockCommissionRepository) FindForOpenProposals(ctx context.Context) ([]*domain.CommissionRecord, error) {
	if m.FindForOpenProposalsFunc != nil {
		return m.FindForOpenProposalsFunc(ctx)
	}
	return nil, nil
}

// MockHistoryRepository is a mock implementation of HistoryRepository
type MockHistoryRepository struct {
	AppendFunc           func(ctx context.Context, tx *gorm.DB, entry *domain.ProposalHistory) error
	FindByProposalIDFunc func(ctx context.Context, proposalID uuid.UUID) ([]*domain.ProposalHistory, error)
}

func (m *MockHistoryRepository) Append(ctx context.Context, tx *gorm.DB, entry *domain.ProposalHistory) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, tx, entry)
	}
	return nil
}

func (m *MockHistoryRepository) FindByProposalID(ctx context.Context, proposalID uuid.UUID) ([]*domain.ProposalHistory, error) {
	if m.FindByProposalIDFunc != nil {
		return m.FindByProposalIDFunc(ctx, proposalID)
	}
	return nil, nil
}

// MockServiceItemService is a mock implementation of ServiceItemService
type MockServiceItemService struct {
	CreateItemFunc         func(ctx context.Context, req *dto.CreateServiceItemRequest) (*dto.ServiceItemResponse, error)
	GetItemsByProposalFunc func(ctx context.Context, proposalID uuid.UUID) ([]*dto.ServiceItemResponse, error)
	UpdateItemFunc         func(ctx context.Context, itemID uuid.UUID, req *dto.UpdateServiceItemRequest) (*dto.ServiceItemResponse, error)
	DeleteItemFunc         func(ctx context.Context, itemID uuid.UUID) error
	TotalsFunc             func(ctx context.Context, proposalID uuid.UUID) (*dto.ProposalTotals, error)
}

func (m *MockServiceItemService) CreateItem(ctx context.Context, req *dto.CreateServiceItemRequest) (*dto.ServiceItemResponse, error) {
	if m.CreateItemFunc != nil {
		return m.CreateItemFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockServiceItemService) GetItemsByProposal(ctx context.Context, proposalID uuid.UUID) ([]*dto.ServiceItemResponse, error) {
	if m.GetItemsByProposalFunc != nil {
		return m.GetItemsByProposalFunc(ctx, proposalID)
	}
	return nil, nil
}

func (m *MockServiceItemService) UpdateItem(ctx context.Context, itemID uuid.UUID, req *dto.UpdateServiceItemRequest) (*dto.ServiceItemResponse, error) {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, itemID, req)
	}
	return nil, nil
}

func (m *MockServiceItemService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, itemID)
	}
	return nil
}

func (m *MockServiceItemService) Totals(ctx context.Context, proposalID uuid.UUID) (*dto.ProposalTotals, error) {
	if m.TotalsFunc != nil {
		return m.TotalsFunc(ctx, proposalID)
	}
	return &dto.ProposalTotals{}, nil
}

// MockSummaryInvalidator is a mock implementation of SummaryInvalidator
type MockSummaryInvalidator struct {
	InvalidateSummaryFunc func(ctx context.Context, agencyID uuid.UUID) error
}

func (m *MockSummaryInvalidator) InvalidateSummary(ctx context.Context, agencyID uuid.UUID) error {
	if m.InvalidateSummaryFunc != nil {
		return m.InvalidateSummaryFunc(ctx, agencyID)
	}
	return nil
}

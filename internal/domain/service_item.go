package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ServiceType classifies a priced line item attached to a proposal
type ServiceType string

const (
	ServiceTypeFlight    ServiceType = "flight"
	ServiceTypeHotel     ServiceType = "hotel"
	ServiceTypeTransfer  ServiceType = "transfer"
	ServiceTypeTour      ServiceType = "tour"
	ServiceTypeCruise    ServiceType = "cruise"
	ServiceTypeInsurance ServiceType = "insurance"
	ServiceTypeOther     ServiceType = "other"
)

// CommissionType selects how a line's commission contribution is computed
type CommissionType string

const (
	// CommissionTypePercentage contributes value * commission_value / 100
	CommissionTypePercentage CommissionType = "percentage"
	// CommissionTypeFixed contributes commission_value as-is
	CommissionTypeFixed CommissionType = "fixed"
)

// ServiceItem represents a priced line item (flight, hotel, ...) belonging
// to a proposal. Each line contributes to the proposal's value and
// commission totals.
type ServiceItem struct {
	BaseModel
	ProposalID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_service_items_proposal_id" json:"proposal_id"`
	Type            ServiceType    `gorm:"type:varchar(50);not null" json:"type"`
	Description     string         `gorm:"type:varchar(255)" json:"description"`
	Value           float64        `gorm:"not null;default:0" json:"value"`
	CommissionType  CommissionType `gorm:"type:varchar(50);not null;default:'percentage'" json:"commission_type"`
	CommissionValue float64        `gorm:"not null;default:0" json:"commission_value"`
	Details         datatypes.JSON `gorm:"type:jsonb" json:"details"`
	StartDate       *time.Time     `gorm:"type:timestamp" json:"start_date"`
	EndDate         *time.Time     `gorm:"type:timestamp" json:"end_date"`
	// CalendarDate is the projection of StartDate used by the agency
	// calendar. Set when the proposal closes, cleared when it reopens.
	CalendarDate *time.Time `gorm:"type:timestamp;index:idx_service_items_calendar_date" json:"calendar_date"`
}

// TableName specifies the table name for ServiceItem
func (ServiceItem) TableName() string {
	return "service_items"
}

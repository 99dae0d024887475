package domain

import "github.com/google/uuid"

// Stage represents a named step in an agency's sales pipeline. A stage
// flagged IsClosed marks proposals in it as won; IsLost marks them as lost.
type Stage struct {
	BaseModel
	AgencyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_stages_agency_id" json:"agency_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Color     string    `gorm:"type:varchar(50)" json:"color"`
	IsClosed  bool      `gorm:"default:false;index:idx_stages_is_closed" json:"is_closed"`
	IsLost    bool      `gorm:"default:false" json:"is_lost"`
	SortOrder int       `gorm:"not null;default:0;index:idx_stages_sort_order" json:"sort_order"`
}

// TableName specifies the table name for Stage
func (Stage) TableName() string {
	return "stages"
}

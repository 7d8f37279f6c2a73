package journal

import "time"

// TableName is the journal table.
const TableName = "hud_sync_events"

// Event is one recorded transition.
type Event struct {
	ID        string    `gorm:"primaryKey;size:26" json:"id"`
	Kind      string    `gorm:"size:32;index" json:"kind"`
	Epoch     string    `gorm:"size:64" json:"epoch,omitempty"`
	ConnID    string    `gorm:"column:conn_id;size:64" json:"conn_id,omitempty"`
	Detail    string    `gorm:"size:512" json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the GORM table name.
func (Event) TableName() string {
	return TableName
}

// Columns lists the columns a migrated table must carry.
var Columns = []string{"id", "kind", "epoch", "conn_id", "detail", "created_at"}

package models

// RepairRequest logs maintenance work against a bus. RepairDuration is
// free-form duration text (e.g. "48h"), matching the source's interval column.
type RepairRequest struct {
	RequestID      int      `gorm:"column:request_id;primaryKey;autoIncrement" json:"request_id"`
	GosNum         *string  `gorm:"column:gos_num;index" json:"gos_num,omitempty"`
	RepairCost     *float64 `gorm:"type:numeric(10,2)" json:"repair_cost,omitempty"`
	RepairDuration *string  `json:"repair_duration,omitempty"`
}

package models

// Route represents a numbered service line. Clock-time columns (interval,
// first/last advance) are kept as HH:MM:SS text so values round-trip exactly.
type Route struct {
	RouteNumber int      `gorm:"primaryKey;autoIncrement:false" json:"route_number" binding:"required"`
	StartStop   *string  `json:"start_stop,omitempty"`
	EndStop     *string  `json:"end_stop,omitempty"`
	StopsCount  *int     `json:"stops_count,omitempty"`
	Interval    *string  `json:"interval,omitempty"`
	TicketPrice *float64 `gorm:"type:numeric(10,2)" json:"ticket_price,omitempty"`
	FirstAdv    *string  `json:"first_adv,omitempty"`
	LastAdv     *string  `json:"last_adv,omitempty"`
	StopsList   *string  `json:"stops_list,omitempty"`
}

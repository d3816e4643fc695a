package entities

import "time"

// UISession is the per-user UI state the web client used to keep in browser
// local storage (active screen, retailer's selected customer).
type UISession struct {
	UserID             uint   `gorm:"primaryKey" json:"user_id"`
	ActiveScreen       string `json:"active_screen"`
	SelectedCustomerID *uint  `json:"selected_customer_id,omitempty"`
	UpdatedAt          time.Time
}

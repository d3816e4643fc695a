package entities

import "time"

type User struct {
	UserID       uint   `gorm:"primaryKey" json:"user_id"`
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	HasPassword  bool   `json:"has_password"`
	Role         string `json:"role"`
	AccountType  string `json:"account_type"` // farmer|retailer|admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CustomerRelationship joins a retailer to a farmer whose paddocks and
// assessments the retailer may view without owning them.
type CustomerRelationship struct {
	RelationshipID    uint      `gorm:"primaryKey" json:"relationship_id"`
	RetailerID        uint      `gorm:"index" json:"retailer_id"`
	CustomerID        uint      `gorm:"index" json:"customer_id"`
	RelationshipStart time.Time `json:"relationship_start"`
	Status            string    `json:"status"` // active|inactive
	CreatedAt         time.Time
}

// VerificationCode is a single-use email login code: 10 minute expiry,
// five attempts, invalidated on success or terminal failure.
type VerificationCode struct {
	CodeID    uint      `gorm:"primaryKey" json:"code_id"`
	Email     string    `gorm:"index" json:"email"`
	Code      string    `json:"-"`
	Attempts  int       `json:"attempts"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time
}

const (
	AccountTypeFarmer   = "farmer"
	AccountTypeRetailer = "retailer"
	AccountTypeAdmin    = "admin"
)

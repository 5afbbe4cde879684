package models

// PaymentAccount maps a user to their objects at the payment provider. Brands
// get a customer + default payment method, creators an express account for
// payouts.
type PaymentAccount struct {
	BaseModel
	UserID           string `gorm:"not null;uniqueIndex"`
	CustomerID       string `gorm:"index"` // provider customer (brands)
	PaymentMethodID  string
	ConnectAccountID string `gorm:"index"` // provider express account (creators)
	OnboardingDone   bool   `gorm:"default:false"`

	User User `gorm:"foreignKey:UserID"`
}

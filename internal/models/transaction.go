package models

import (
	"gorm.io/datatypes"
)

// Transaction records one payment attempt. It starts pending and leaves
// that state exactly once, through the gateway callback. RawResponse keeps
// the verbatim callback payload for audit.
type Transaction struct {
	BaseModel
	SubscriberID uint              `gorm:"not null;index" json:"subscriber_id"`
	Amount       float64           `gorm:"type:decimal(10,2)" json:"amount"`
	Status       TransactionStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PlanID       uint              `gorm:"not null;index" json:"plan_id"`
	RawResponse  datatypes.JSON    `json:"raw_response,omitempty"`

	// Relations
	Subscriber User `gorm:"foreignKey:SubscriberID" json:"-"`
	Plan       Plan `gorm:"foreignKey:PlanID" json:"-"`
}

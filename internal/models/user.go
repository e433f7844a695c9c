package models

type User struct {
	BaseModel
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	FullName string `gorm:"type:varchar(255);not null" json:"full_name"`

	// Relations
	Tasks        []Task        `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:SubscriberID" json:"-"`
}

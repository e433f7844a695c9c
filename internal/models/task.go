package models

type Task struct {
	BaseModel
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description *string    `json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

package models

// Plan is static reference data seeded at startup; nothing mutates plan
// rows at runtime.
type Plan struct {
	BaseModel
	Name        string     `gorm:"not null;index" json:"name"`
	Status      PlanStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	Description string     `json:"description"`
}

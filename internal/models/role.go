package models

type Role struct {
	BaseModel
	Name RoleName `gorm:"type:varchar(32);uniqueIndex;not null" json:"name"`
}

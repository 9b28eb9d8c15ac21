package models

// Company - арендатор (tenant). Уникальность имени намеренно не требуется.
type Company struct {
	BaseModel
	Name           string `gorm:"size:255;not null" json:"name"`
	Speciality     string `gorm:"size:255" json:"speciality,omitempty"`
	GSTNo          string `gorm:"size:50;column:gst_no" json:"gst_no,omitempty"`
	RegistrationNo string `gorm:"size:50" json:"registration_no,omitempty"`
}

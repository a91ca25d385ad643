package models

type Category struct {
	ID          uint    `json:"id" gorm:"primarykey"`
	Name        string  `json:"name" gorm:"not null"`
	Description *string `json:"description" gorm:"type:text"`
}

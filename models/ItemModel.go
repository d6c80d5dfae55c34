package models

type Item struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
}

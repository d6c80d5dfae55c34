package models

// User is a registered account. Users are identified by email alone.
type User struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	Items []Item `gorm:"foreignKey:OwnerID" json:"-"`
}

package models

// Product is a second-hand listing published on the market. Price stores the
// numeric value; the raw string a seller types is parsed at the API boundary.
type Product struct {
	ID          int     `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string  `gorm:"not null"                  json:"name"`
	Description string  `gorm:"not null"                  json:"description"`
	Category    string  `gorm:"not null;index"            json:"category"`
	Price       float64 `gorm:"not null"                  json:"price"`
	Image       string  `json:"image"`
}

// RepairService is rendered on the repair page. The wire format carries no id.
type RepairService struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"-"`
	Name        string `gorm:"not null"                 json:"name"`
	Description string `gorm:"not null"                 json:"description"`
	Contact     string `gorm:"not null"                 json:"contact"`
}

type User struct {
	ID                uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email             string `gorm:"unique;not null"          json:"email"`
	PasswordHash      string `gorm:"not null"                 json:"-"`
	IsVerified        bool   `gorm:"default:false"            json:"is_verified"`
	VerificationToken string `gorm:"index"                    json:"-"`
}

package model

// User represents the database model for users
type User struct {
	Username string `gorm:"primaryKey;size:80"`
	Password string `gorm:"not null;size:120"`
	Role     string `gorm:"not null;size:20"`
	Name     string `gorm:"size:80"`
	Address  string `gorm:"size:80"`
	PhoneNo  int64  `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

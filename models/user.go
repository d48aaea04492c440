package models

type User struct {
	Id          int64  `gorm:"primaryKey" json:"id"`
	Username    string `gorm:"type:varchar(150);uniqueIndex" json:"username"`
	Email       string `gorm:"type:varchar(255)" json:"email"`
	Password    string `gorm:"type:varchar(255)" json:"-"`
	IsStaff     bool   `gorm:"type:boolean" json:"is_staff"`
	IsSuperuser bool   `gorm:"type:boolean" json:"is_superuser"`
	CreatedAt   string `gorm:"type:timestamp" json:"created_at"`
}

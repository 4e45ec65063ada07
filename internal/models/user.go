package models

import "gorm.io/gorm"

// User represents a registered account that can own blogs.
type User struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username     string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Name         string `json:"name" gorm:"type:varchar(100)"`
	PasswordHash string `json:"-" gorm:"type:varchar(255)"` // No json tag for security
	Blogs        []Blog `json:"blogs,omitempty" gorm:"foreignKey:UserID"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Owner is the partial view of a blog's owning user returned with blog payloads.
type Owner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

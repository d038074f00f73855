package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null"`
	Name         string `gorm:"not null"`
	Phone        string `gorm:"index"`
	Role         string `gorm:"default:'user'"`
	ProfileType  string `gorm:"default:'comum'"`
	Status       string `gorm:"default:'active'"`
	KYCStatus    string `gorm:"default:'pending'"`
	LastLoginAt  time.Time
	LastLoginIP  string
	TokenVersion int `gorm:"default:1"`
}

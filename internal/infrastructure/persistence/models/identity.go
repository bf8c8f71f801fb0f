package models

import (
	"github.com/jakupie/backend/internal/domain/identity"
)

// UserModel is the persistence model for users
type UserModel struct {
	BaseModel
	Username     string `gorm:"size:50;not null;uniqueIndex"`
	Email        string `gorm:"size:200;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:100;not null"`
	FullName     string `gorm:"size:200"`
	Avatar       string `gorm:"size:500"`
}

// TableName returns the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts UserModel to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		Avatar:       m.Avatar,
	}
}

// UserModelFromDomain converts a domain User to UserModel
func UserModelFromDomain(user *identity.User) *UserModel {
	model := &UserModel{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FullName:     user.FullName,
		Avatar:       user.Avatar,
	}
	model.FromDomainBaseEntity(user.BaseEntity)
	return model
}

package persistence

import (
	"errors"

	"github.com/davidmrt/promptforge/internal/domain"
	"gorm.io/gorm"
)

type UserRepo struct {
	DB *gorm.DB
}

func (r UserRepo) Insert(user *domain.User) error {
	return r.DB.Create(user).Error
}

func (r UserRepo) FindById(id string) (*domain.User, error) {
	var user domain.User
	err := r.DB.First(&user, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r UserRepo) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.DB.First(&user, "email = ?", email).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &user, nil
}

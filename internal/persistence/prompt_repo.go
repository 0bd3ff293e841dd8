package persistence

import (
	"errors"

	"github.com/davidmrt/promptforge/internal/domain"
	"gorm.io/gorm"
)

type PromptRepo struct {
	DB *gorm.DB
}

func (r PromptRepo) Insert(prompt *domain.SavedPrompt) error {
	return r.DB.Create(prompt).Error
}

func (r PromptRepo) FindById(id string) (*domain.SavedPrompt, error) {
	var prompt domain.SavedPrompt
	err := r.DB.First(&prompt, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &prompt, nil
}

func (r PromptRepo) FindByUserId(userId string) ([]domain.SavedPrompt, error) {
	var prompts []domain.SavedPrompt
	err := r.DB.Where("user_id = ?", userId).Order("created_at desc").Find(&prompts).Error

	if err != nil {
		return nil, err
	}

	return prompts, nil
}

func (r PromptRepo) Update(prompt *domain.SavedPrompt) error {
	return r.DB.Save(prompt).Error
}

func (r PromptRepo) Delete(id string) error {
	return r.DB.Delete(&domain.SavedPrompt{}, "id = ?", id).Error
}

package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/curioyard/studio-api/internal/domain"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Create(ctx context.Context, contract *domain.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *ContractRepository) GetByID(ctx context.Context, id uuid.UUID, userID string) (*domain.Contract, error) {
	var contract domain.Contract
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&contract).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *ContractRepository) Update(ctx context.Context, contract *domain.Contract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

func (r *ContractRepository) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Contract{}).Error
}

// List returns the owner's contracts, newest first, optionally narrowed
// by type, status and a case-insensitive search over number, client name
// and project title.
func (r *ContractRepository) List(ctx context.Context, userID string, filter domain.ContractListFilter) ([]domain.Contract, error) {
	var contracts []domain.Contract

	query := r.db.WithContext(ctx).
		Model(&domain.Contract{}).
		Where("user_id = ?", userID)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(contract_number) LIKE ? OR LOWER(client_name) LIKE ? OR LOWER(project_title) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	err := query.Order("created_at DESC").Find(&contracts).Error
	return contracts, err
}

func (r *ContractRepository) Count(ctx context.Context, userID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Contract{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return int(count), err
}

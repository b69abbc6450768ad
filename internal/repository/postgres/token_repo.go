package postgres

import (
	"context"

	"github.com/iris-cmd22/A13/internal/domain"
	"gorm.io/gorm"
)

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *tokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *domain.AuthenticatedUser) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) GetByUserID(ctx context.Context, userID int) ([]*domain.AuthenticatedUser, error) {
	var tokens []*domain.AuthenticatedUser
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *tokenRepository) DeleteByUserID(ctx context.Context, userID int) error {
	return r.db.WithContext(ctx).Delete(&domain.AuthenticatedUser{}, "user_id = ?", userID).Error
}

package postgres

import (
	"github.com/iris-cmd22/A13/internal/domain"
	"github.com/iris-cmd22/A13/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.UserProfile{},
		&domain.AuthenticatedUser{},
		&domain.Notification{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:         NewUserRepository(db),
		Profile:      NewProfileRepository(db),
		Token:        NewTokenRepository(db),
		Notification: NewNotificationRepository(db),
	}
}

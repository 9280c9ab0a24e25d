package database

import (
	"fmt"

	"github.com/jawa-agence/core/internal/config"
	"github.com/jawa-agence/core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a MySQL connection and optionally runs auto-migration.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.ResolveDSN(),
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if autoMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}
	return db, nil
}

// Migrate runs GORM auto-migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.ServiceModel{},
		&models.ProjectModel{},
		&models.PricingPlanModel{},
		&models.ProcessStepModel{},
		&models.FAQModel{},
		&models.TestimonialModel{},
		&models.TeamMemberModel{},
		&models.TrustedCompanyModel{},
		&models.BlogCategoryModel{},
		&models.BlogPostModel{},
		&models.BlogCommentModel{},
		&models.SubscriberModel{},
		&models.ContactInquiryModel{},
		&models.CompanyInfoModel{},
		&models.AboutSectionModel{},
	)
}

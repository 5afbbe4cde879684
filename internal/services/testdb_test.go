package services

import (
	"fmt"
	"testing"

	"brandlink_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB открывает in-memory SQLite и накатывает схему - транзакционные
// пути сервисов гоняются против настоящего gorm.DB, включая уникальные
// индексы. Соединение живет до конца теста и закрывается через Cleanup.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Campaign{},
		&models.Brief{},
		&models.CreatorInvitation{},
		&models.Submission{},
		&models.Review{},
		&models.Notification{},
		&models.PlatformRule{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func seedUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Email:        fmt.Sprintf("%s-%s@example.com", role, uuid.NewString()),
		PasswordHash: "hash",
		Name:         string(role),
		Role:         role,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// countNotifications считает строки outbox по получателю и типу.
func countNotifications(t *testing.T, db *gorm.DB, userID, notificationType string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", userID, notificationType).
		Count(&n).Error)
	return n
}

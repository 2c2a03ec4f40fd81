package sweeper

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasknest-dev/tasknest/db"
	"github.com/tasknest-dev/tasknest/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&models.User{}, &models.Todo{}))

	db.DB = gormDB

	t.Cleanup(func() {
		sqlDB, err := gormDB.DB()
		if err == nil {
			sqlDB.Close()
		}
		db.DB = nil
	})
}

func TestSweep(t *testing.T) {
	setupDB(t)

	user := models.User{Username: "sweep", Email: "sweep@example.com", PasswordHash: "x"}
	require.NoError(t, db.DB.Create(&user).Error)

	yesterday := time.Now().AddDate(0, 0, -1)
	now := time.Now()

	stale := models.Todo{
		UserID: user.ID, Text: "stale daily", Tag: "Personal",
		Priority: "Low", Recurrence: "Daily",
		Completed: true, CompletedDate: &yesterday,
	}
	fresh := models.Todo{
		UserID: user.ID, Text: "fresh daily", Tag: "Personal",
		Priority: "Low", Recurrence: "Daily",
		Completed: true, CompletedDate: &now,
	}
	oneOff := models.Todo{
		UserID: user.ID, Text: "one-off", Tag: "Personal",
		Priority: "Low", Recurrence: "None",
		Completed: true, CompletedDate: &yesterday,
	}
	require.NoError(t, db.DB.Create(&stale).Error)
	require.NoError(t, db.DB.Create(&fresh).Error)
	require.NoError(t, db.DB.Create(&oneOff).Error)

	s := NewSweeper()
	s.Sweep(time.Now())

	var got models.Todo

	require.NoError(t, db.DB.First(&got, stale.ID).Error)
	assert.False(t, got.Completed, "stale recurring todo resets")
	assert.Nil(t, got.CompletedDate)

	require.NoError(t, db.DB.First(&got, fresh.ID).Error)
	assert.True(t, got.Completed, "same-day completion stays")

	require.NoError(t, db.DB.First(&got, oneOff.ID).Error)
	assert.True(t, got.Completed, "non-recurring todos never reset")
}

func TestNewSweeperInterval(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("SWEEP_INTERVAL", "")
		assert.Equal(t, defaultInterval, NewSweeper().interval)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("SWEEP_INTERVAL", "30")
		assert.Equal(t, 30*time.Second, NewSweeper().interval)
	})

	t.Run("garbage falls back to default", func(t *testing.T) {
		t.Setenv("SWEEP_INTERVAL", "soon")
		assert.Equal(t, defaultInterval, NewSweeper().interval)
	})
}

package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dining-status-backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:prefs_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Record{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func TestLoadMissingRecordReturnsDefaults(t *testing.T) {
	store := NewGormStore(newTestDB(t))

	p, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, model.DefaultPreferences(), p)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewGormStore(newTestDB(t))
	ctx := context.Background()

	cases := []model.NotificationPreferences{
		{Enabled: true, SelectedHalls: []model.HallID{model.HallScott}, NotifyOnLevel: model.LevelLow},
		{Enabled: true, SelectedHalls: []model.HallID{model.HallScott, model.HallKennedy}, NotifyOnLevel: model.LevelModerate},
		{Enabled: false, SelectedHalls: []model.HallID{}, NotifyOnLevel: model.LevelModerate},
	}

	for _, want := range cases {
		require.NoError(t, store.Save(ctx, want))
		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSaveReplacesWholeRecord(t *testing.T) {
	db := newTestDB(t)
	store := NewGormStore(db)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, model.NotificationPreferences{
		Enabled:       true,
		SelectedHalls: []model.HallID{model.HallScott, model.HallMorrill},
		NotifyOnLevel: model.LevelLow,
	}))
	require.NoError(t, store.Save(ctx, model.NotificationPreferences{
		Enabled:       false,
		SelectedHalls: []model.HallID{},
		NotifyOnLevel: model.LevelModerate,
	}))

	// Still a single row under the fixed key.
	var count int64
	db.Model(&Record{}).Count(&count)
	assert.Equal(t, int64(1), count)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, got.Enabled)
	assert.Empty(t, got.SelectedHalls)
}

func TestLoadCorruptRecordFallsBackToDefaults(t *testing.T) {
	db := newTestDB(t)
	store := NewGormStore(db)

	require.NoError(t, db.Create(&Record{Key: StorageKey, Value: "{not json"}).Error)

	p, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, model.DefaultPreferences(), p)
}

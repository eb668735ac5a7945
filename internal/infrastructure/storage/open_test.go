package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/memory"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/storage"
	"github.com/jhoicas/FoodOrder-api/pkg/config"
	"github.com/jhoicas/FoodOrder-api/pkg/logger"
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverMemory},
		Session: config.SessionConfig{CheckPeriod: memory.DefaultCheckPeriod},
	}
	s, err := storage.Open(context.Background(), cfg, logger.Nop().Component("storage"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, ok := s.(*memory.Store)
	assert.True(t, ok)
	assert.Same(t, s.SessionStore(), s.SessionStore())

	restaurants, err := s.GetRestaurants(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, restaurants, "el store en memoria arranca con el catálogo semilla")
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "mongo"}}
	_, err := storage.Open(context.Background(), cfg, logger.Nop().Component("storage"), nil)
	assert.Error(t, err)
}

package models_test

import (
	"testing"
	"time"

	"onboard-api/internal/adapters/persistence/models"

	"github.com/stretchr/testify/require"
)

func TestUserSessionIsExpired(t *testing.T) {
	live := &models.UserSession{SessionExpiryDate: time.Now().Add(time.Hour)}
	require.False(t, live.IsExpired())

	stale := &models.UserSession{SessionExpiryDate: time.Now().Add(-time.Minute)}
	require.True(t, stale.IsExpired())
}

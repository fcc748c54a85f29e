package datetime_test

import (
	"testing"
	"time"

	"onboard-api/internal/pkg/datetime"

	"github.com/stretchr/testify/require"
)

func TestRendering(t *testing.T) {
	ts := time.Date(2024, 3, 7, 9, 5, 42, 0, time.UTC)

	require.Equal(t, "2024-03-07", datetime.Date(ts))
	require.Equal(t, "09-05-42", datetime.Clock(ts))
	require.Equal(t, "2024-03-07 09:05:42", datetime.DateTime(ts))
}

package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	level, err := Configure("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	level, err = Configure("barulho")
	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, level)
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))

	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
}

func TestWithFieldsFiltersInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	SetupTestLogger()

	base := L.(*logger)
	filtered := L.WithFields(Fields{"user_agent": "curl"}).(*logger)
	assert.Same(t, base, filtered)

	kept := L.WithFields(Fields{"snapshot_id": "abc123", "user_agent": "curl"}).(*logger)
	assert.Equal(t, "abc123", kept.entry.Data["snapshot_id"])
	assert.NotContains(t, kept.entry.Data, "user_agent")
}

func TestWithFieldsKeepsEverythingInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()

	kept := L.WithField("user_agent", "curl").(*logger)
	assert.Equal(t, "curl", kept.entry.Data["user_agent"])
}

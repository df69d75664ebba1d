package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_IncludesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	SetupTestLogger(&buf)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("consulta executada")

	assert.Contains(t, buf.String(), "consulta executada")
	assert.Contains(t, buf.String(), id)
}

func TestWithFields_DevelopmentFiltersNoise(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var buf bytes.Buffer
	SetupTestLogger(&buf)

	L.WithFields(Fields{"rep_id": "2", "user_agent": "curl"}).Info("vendedor consultado")

	assert.Contains(t, buf.String(), "rep_id=2")
	assert.NotContains(t, buf.String(), "user_agent")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	SetupTestLogger(&buf)

	L.WithFields(Fields{"rep_id": "2", "user_agent": "curl"}).Info("vendedor consultado")

	assert.Contains(t, buf.String(), "user_agent=curl")
}

func TestConfigure_InvalidLevelFallsBackToInfo(t *testing.T) {
	defer logrus.SetLevel(logrus.DebugLevel)

	assert.Equal(t, logrus.InfoLevel, Configure("verbose"))
	assert.Equal(t, logrus.WarnLevel, Configure("warn"))
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestDatabaseMetricsCollector(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:db_metrics?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	m := NewMetrics()
	dc := NewDatabaseMetricsCollector(m, zap.NewNop(), db)

	t.Run("health check records a successful ping", func(t *testing.T) {
		require.NoError(t, dc.HealthCheck())

		got := testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("ping", "health_check", "success"))
		assert.Equal(t, 1.0, got)
	})

	t.Run("collect publishes pool gauges", func(t *testing.T) {
		dc.collect()

		idle := testutil.ToFloat64(m.DBConnectionsIdle)
		inUse := testutil.ToFloat64(m.DBConnectionsInUse)
		assert.GreaterOrEqual(t, idle+inUse, 1.0)
	})

	t.Run("failed queries are labelled by status", func(t *testing.T) {
		err := dc.WithMetrics("select", "items", func() error {
			return gorm.ErrRecordNotFound
		})

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		got := testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("select", "items", "not_found"))
		assert.Equal(t, 1.0, got)
	})
}

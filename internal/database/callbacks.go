package database

import (
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder receives per-query timings and connection pool stats.
// The metrics package implements it; the indirection keeps this package
// free of a prometheus dependency.
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

const queryStartKey = "crm:query_start_time"

// RegisterMetricsCallbacks hooks timing callbacks into every gorm
// operation so pipeline reads and ledger writes alike land in the query
// histograms.
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	start := func(db *gorm.DB) {
		db.InstanceSet(queryStartKey, time.Now())
	}
	finish := func(operation string) func(*gorm.DB) {
		return func(db *gorm.DB) {
			startTime, ok := db.InstanceGet(queryStartKey)
			if !ok {
				return
			}
			table := db.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery(operation, table, time.Since(startTime.(time.Time)), db.Error)
		}
	}

	db.Callback().Query().Before("gorm:query").Register("metrics:query_before", start)
	db.Callback().Query().After("gorm:query").Register("metrics:query_after", finish("select"))
	db.Callback().Create().Before("gorm:create").Register("metrics:create_before", start)
	db.Callback().Create().After("gorm:create").Register("metrics:create_after", finish("insert"))
	db.Callback().Update().Before("gorm:update").Register("metrics:update_before", start)
	db.Callback().Update().After("gorm:update").Register("metrics:update_after", finish("update"))
	db.Callback().Delete().Before("gorm:delete").Register("metrics:delete_before", start)
	db.Callback().Delete().After("gorm:delete").Register("metrics:delete_after", finish("delete"))
}

const dbStatsInterval = 15 * time.Second

// StartDBStatsCollector publishes connection pool stats on a fixed
// interval until the returned channel is closed.
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(dbStatsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}

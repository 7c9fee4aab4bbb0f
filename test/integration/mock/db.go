// Package mock provides shared in-memory stand-ins for the integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection with the API schema.
type Db struct {
	DbConn *gorm.DB
	tables map[string]any
}

// NewDb opens (once) an in-memory database and migrates the given models.
// The map keys are the table names, used to clear data between scenarios.
func NewDb(tables map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(tables)
	})
	return db
}

func open(tables map[string]any) *Db {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		panic(err)
	}

	models := make([]any, 0, len(tables))
	for _, model := range tables {
		models = append(models, model)
	}
	if err := conn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate schema. err: %s", err.Error()))
	}

	return &Db{DbConn: conn, tables: tables}
}

// ClearDB removes every row from every migrated table.
func (d *Db) ClearDB() error {
	if err := d.DbConn.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		return err
	}
	for table := range d.tables {
		if err := d.DbConn.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return d.DbConn.Exec("PRAGMA foreign_keys = ON").Error
}

// Count returns the number of rows in a table.
func (d *Db) Count(table string) (int64, error) {
	if _, ok := d.tables[table]; !ok {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var count int64
	err := d.DbConn.Table(table).Count(&count).Error
	return count, err
}

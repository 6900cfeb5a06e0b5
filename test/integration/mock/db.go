//go:build integration

package mock

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ecotrack/backend/internal/integration/persistence"
	"github.com/ecotrack/backend/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db is a shared in-memory database. The catalog is seeded once; tables
// holding user data are emptied between scenarios.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared database on first use. models maps table names to
// the models that ClearDB empties.
func NewDb(models map[string]any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(model.All()...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}
	if err := persistence.NewCatalogSeeder(dbConn).Seed(context.Background()); err != nil {
		panic(fmt.Sprintf("failed to seed catalog. err: %s", err.Error()))
	}

	return &Db{DbConn: dbConn, models: models}
}

// ClearDB deletes every row from the scenario tables. Children go first so
// foreign keys never block the delete.
func (d *Db) ClearDB() error {
	for _, table := range []string{"habits", "footprints", "refresh_tokens", "users"} {
		m, ok := d.models[table]
		if !ok {
			continue
		}
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Count returns the number of rows in a registered table.
func (d *Db) Count(table string) (int64, error) {
	m, ok := d.GetModel(table)
	if !ok {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var count int64
	if err := d.DbConn.Model(m).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}

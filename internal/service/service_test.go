package service

import (
	"fmt"
	"strings"
	"testing"

	"biocatalog_backend/pkg/database"
	"biocatalog_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

// newTestDB abre una base sqlite en memoria propia del test, con el esquema
// migrado y los catálogos sembrados (roles y tipos de ejercicio).
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("abriendo sqlite en memoria: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrando esquema: %v", err)
	}

	return db
}

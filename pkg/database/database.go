package database

import (
	"fmt"
	"log"

	"biocatalog_backend/internal/config"
	"biocatalog_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate crea el esquema y siembra los catálogos fijos (roles y tipos de
// ejercicio). Idempotente.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Rol{},
		&model.Usuario{},
		&model.Categoria{},
		&model.TipoEjercicio{},
		&model.Concepto{},
		&model.Ejercicio{},
		&model.OpcionEjercicio{},
		&model.CeldaPunnett{},
		&model.PreguntaEvaluacion{},
		&model.OpcionPregunta{},
	)
	if err != nil {
		return err
	}

	var rolCount int64
	db.Model(&model.Rol{}).Count(&rolCount)
	if rolCount == 0 {
		defaultRoles := []model.Rol{
			{NombreRol: "admin"},
			{NombreRol: "docente"},
			{NombreRol: "estudiante"},
		}
		for _, r := range defaultRoles {
			db.Create(&r)
		}
	}

	var tipoCount int64
	db.Model(&model.TipoEjercicio{}).Count(&tipoCount)
	if tipoCount == 0 {
		defaultTipos := []model.TipoEjercicio{
			{NombreTipo: "Selección Múltiple"},
			{NombreTipo: "Punnett"},
			{NombreTipo: "Interactivo"},
		}
		for _, t := range defaultTipos {
			db.Create(&t)
		}
	}

	return nil
}

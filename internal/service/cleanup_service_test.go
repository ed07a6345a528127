package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"biocatalog_backend/internal/config"
	"biocatalog_backend/internal/model"
	"biocatalog_backend/internal/repository"
)

func TestSweepOrphanImages(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	storage := &StorageService{Provider: &LocalStorageProvider{
		Config: &config.StorageConfig{Type: "local", LocalPath: dir},
	}}
	cleanup := NewCleanupService(
		repository.NewConceptoRepository(db),
		repository.NewEjercicioRepository(db),
		repository.NewEvaluacionRepository(db),
		storage,
	)

	for _, name := range []string{"referenciada.png", "huerfana-1.png", "huerfana-2.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0644); err != nil {
			t.Fatalf("escribiendo archivo: %v", err)
		}
	}

	concepto := model.Concepto{Titulo: "con imagen", Imagen: "referenciada.png", CategoriaID: 1, Estado: true}
	if err := db.Create(&concepto).Error; err != nil {
		t.Fatalf("creando concepto: %v", err)
	}

	removed, err := cleanup.SweepOrphanImages(context.Background())
	if err != nil {
		t.Fatalf("SweepOrphanImages: %v", err)
	}
	if len(removed) != 2 {
		t.Fatalf("eliminadas = %v, se esperaban las dos huérfanas", removed)
	}

	if _, err := os.Stat(filepath.Join(dir, "referenciada.png")); err != nil {
		t.Error("la imagen referenciada no debía borrarse")
	}
	for _, name := range []string{"huerfana-1.png", "huerfana-2.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("%s debía borrarse", name)
		}
	}
}

func TestSweepSinDirectorio(t *testing.T) {
	db := newTestDB(t)

	storage := &StorageService{Provider: &LocalStorageProvider{
		Config: &config.StorageConfig{Type: "local", LocalPath: filepath.Join(t.TempDir(), "no-existe")},
	}}
	cleanup := NewCleanupService(
		repository.NewConceptoRepository(db),
		repository.NewEjercicioRepository(db),
		repository.NewEvaluacionRepository(db),
		storage,
	)

	removed, err := cleanup.SweepOrphanImages(context.Background())
	if err != nil {
		t.Fatalf("SweepOrphanImages: %v", err)
	}
	if len(removed) != 0 {
		t.Fatalf("eliminadas = %v", removed)
	}
}

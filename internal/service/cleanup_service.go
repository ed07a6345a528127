package service

import (
	"context"

	"biocatalog_backend/internal/repository"
	"biocatalog_backend/pkg/logger"

	"go.uber.org/zap"
)

// CleanupService elimina del almacenamiento las imágenes que ya no están
// referenciadas por ningún concepto, ejercicio o pregunta de evaluación.
type CleanupService struct {
	ConceptoRepo   *repository.ConceptoRepository
	EjercicioRepo  *repository.EjercicioRepository
	EvaluacionRepo *repository.EvaluacionRepository
	Storage        *StorageService
}

func NewCleanupService(
	conceptoRepo *repository.ConceptoRepository,
	ejercicioRepo *repository.EjercicioRepository,
	evaluacionRepo *repository.EvaluacionRepository,
	storage *StorageService,
) *CleanupService {
	return &CleanupService{
		ConceptoRepo:   conceptoRepo,
		EjercicioRepo:  ejercicioRepo,
		EvaluacionRepo: evaluacionRepo,
		Storage:        storage,
	}
}

// SweepOrphanImages recorre los archivos almacenados y borra los que no
// aparecen en ninguna de las tres tablas con columna imagen. Devuelve los
// nombres eliminados. Un fallo al borrar un archivo concreto se registra y
// no interrumpe el barrido.
func (s *CleanupService) SweepOrphanImages(ctx context.Context) ([]string, error) {
	referenced := make(map[string]struct{})

	for _, fetch := range []func() ([]string, error){
		s.ConceptoRepo.ImageFilenames,
		s.EjercicioRepo.ImageFilenames,
		s.EvaluacionRepo.ImageFilenames,
	} {
		names, err := fetch()
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if name != "" {
				referenced[name] = struct{}{}
			}
		}
	}

	stored, err := s.Storage.List(ctx)
	if err != nil {
		return nil, err
	}

	removed := make([]string, 0)
	for _, name := range stored {
		if _, ok := referenced[name]; ok {
			continue
		}
		if err := s.Storage.Delete(ctx, name); err != nil {
			logger.Log.Warn("no se pudo eliminar imagen huérfana",
				zap.String("archivo", name),
				zap.Error(err))
			continue
		}
		removed = append(removed, name)
	}

	logger.Log.Info("barrido de imágenes completado",
		zap.Int("referenciadas", len(referenced)),
		zap.Int("eliminadas", len(removed)))

	return removed, nil
}

package catalog

import (
	"context"
	"os"

	"tag-validator/internal/domain"

	"go.uber.org/zap"
)

// FileCatalogProvider reads the taxonomy document from a local file, for
// offline runs against a saved copy.
type FileCatalogProvider struct {
	path   string
	logger *zap.Logger
}

func NewFileCatalogProvider(path string, logger *zap.Logger) *FileCatalogProvider {
	return &FileCatalogProvider{path: path, logger: logger}
}

func (p *FileCatalogProvider) Load(_ context.Context) (domain.ReferenceCatalog, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, domain.NewCatalogUnavailableError(err)
	}
	catalog, err := Parse(data, p.logger)
	if err != nil {
		return nil, domain.NewCatalogUnavailableError(err)
	}
	return catalog, nil
}

package bootstrap

import (
	"cinebook/internal/infra/catalog"
	"cinebook/internal/pkg/config"

	"go.uber.org/fx"
)

// CatalogModule loads the reference catalog once at startup. The store
// is immutable afterwards, so it is shared as-is across all components.
var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalogStore,
	),
)

func NewCatalogStore(cfg config.Config) (*catalog.Store, error) {
	return catalog.NewStore(cfg.Catalog)
}

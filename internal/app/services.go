// Package app provides service initialization.
package app

import (
	"time"

	"github.com/acaipro/storefront-service/config"
	"github.com/acaipro/storefront-service/internal/repository"
	"github.com/acaipro/storefront-service/internal/service"
)

const sessionStoreShards = 16

// ServiceComponents holds in-memory service components that do not
// depend on the database.
type ServiceComponents struct {
	CatalogRepo repository.CatalogRepositoryInterface
	Sessions    *service.ShardedSessionStore
	Catalog     service.CatalogService
	Cart        service.CartService
}

// InitializeServices initializes the catalog and cart session services.
func InitializeServices(cfg config.SessionConfig) *ServiceComponents {
	size := cfg.Size
	if size <= 0 {
		size = 10000
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	catalogRepo := repository.NewCatalogRepository()
	sessions := service.NewShardedSessionStore(size, ttl, sessionStoreShards)

	return &ServiceComponents{
		CatalogRepo: catalogRepo,
		Sessions:    sessions,
		Catalog:     service.NewCatalogService(catalogRepo),
		Cart:        service.NewCartService(catalogRepo, sessions),
	}
}

package share_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"itinera/internal/services"
	mem "itinera/pkg/memcache"
)

const defaultShareTTL = 7 * 24 * time.Hour

var Module = fx.Provide(provideShareStore, provideShareService)

func provideShareStore() mem.ShareLinkStore {
	return mem.NewShareLinks()
}

func provideShareService(store mem.ShareLinkStore) services.ShareServiceInterface {
	ttl := defaultShareTTL
	if hours, err := strconv.Atoi(os.Getenv("SHARE_TTL_HOURS")); err == nil && hours > 0 {
		ttl = time.Duration(hours) * time.Hour
	}
	return services.NewShareService(store, ttl)
}

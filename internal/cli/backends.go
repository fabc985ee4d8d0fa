package cli

import (
	"context"

	"github.com/matzehuels/tinct/pkg/archive"
	"github.com/matzehuels/tinct/pkg/cache"
)

// newCache builds the result cache selected by config, honoring --no-cache.
// Backend failures degrade to the null cache with a warning rather than
// failing the command; caching is an optimization, not a requirement.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	switch c.Config.Cache.Backend {
	case cacheBackendNone:
		return cache.NewNullCache()
	case cacheBackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: c.Config.Cache.RedisAddr})
		if err != nil {
			c.Logger.Warn("redis cache unavailable", "err", err)
			return cache.NewNullCache()
		}
		return rc
	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warn("file cache unavailable", "err", err)
			return cache.NewNullCache()
		}
		return fc
	}
}

// newArchive builds the run archive selected by config. Unlike the cache,
// an unreachable archive backend is an error; silently dropping run
// history would be surprising.
func (c *CLI) newArchive(ctx context.Context) (archive.Store, error) {
	switch c.Config.Archive.Backend {
	case archiveBackendMemory:
		return archive.NewMemoryStore(), nil
	case archiveBackendMongo:
		return archive.NewMongoStore(ctx, archive.MongoConfig{URI: c.Config.Archive.MongoURI})
	default:
		return archive.NewFileStore("")
	}
}

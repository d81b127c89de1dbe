package config

// CacheConfig controls the shared cache store and its TTL policy.
type CacheConfig struct {
	RedisURL  string   `validate:"omitempty,url"` // empty selects the in-process store
	IndexKey  string   `validate:"required"`
	IndexTTL  Duration `validate:"gt=0"`
	PlayerTTL Duration `validate:"gt=0"`
}

func loadCache() CacheConfig {
	return CacheConfig{
		RedisURL:  envOrDefault(envRedisURL, ""),
		IndexKey:  envOrDefault(envIndexKey, defaultIndexKey),
		IndexTTL:  durationEnvOrDefault(envIndexTTL, defaultIndexTTL),
		PlayerTTL: durationEnvOrDefault(envPlayerTTL, defaultPlayerTTL),
	}
}

package config

// ViewsConfig controls the lifetime of mounted team views.
type ViewsConfig struct {
	RenderWait    Duration // how long a page request waits for the fetch to settle
	TTL           Duration // abandoned views older than this are destroyed
	SweepInterval Duration
}

// CORSConfig controls cross-origin access to the JSON API.
type CORSConfig struct {
	AllowedOrigins []string
}

func loadViews() ViewsConfig {
	return ViewsConfig{
		RenderWait:    durationEnvOrDefault(envRenderWait, defaultRenderWait),
		TTL:           durationEnvOrDefault(envViewTTL, defaultViewTTL),
		SweepInterval: durationEnvOrDefault(envSweepInterval, defaultSweepPeriod),
	}
}

func loadCORS() CORSConfig {
	return CORSConfig{AllowedOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins)}
}

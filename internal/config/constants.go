package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envIPLBaseURL      = "IPL_API_BASE_URL"
	envIPLTimeout      = "IPL_API_TIMEOUT"
	envIPLMinInterval  = "IPL_API_MIN_INTERVAL"
	envRenderWait      = "RENDER_WAIT"
	envViewTTL         = "VIEW_TTL"
	envSweepInterval   = "SWEEP_INTERVAL"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envFixtureDelay    = "FIXTURE_DELAY"
	envDotEnvFile      = "DOTENV_FILE"
	defaultDotEnvFile  = ".env"
	defaultServiceName = "ipl-dashboard"

	defaultPort        = "4000"
	defaultProvider    = "ccbp"
	defaultIPLBaseURL  = "https://apis.ccbp.in/ipl/"
	defaultIPLTimeout  = 10 * Duration(time.Second)
	defaultRenderWait  = 2 * Duration(time.Second)
	defaultViewTTL     = Duration(time.Minute)
	defaultSweepPeriod = 15 * Duration(time.Second)
	defaultCORSOrigins = "*"
	defaultMetricsPort = "9090"
)

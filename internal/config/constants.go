package config

const (
	envPort       = "PORT"
	envDataSource = "DATA_SOURCE"

	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "8000"
	defaultDataSource  = "balldontlie"
	defaultMetricsPort = "9090"
)

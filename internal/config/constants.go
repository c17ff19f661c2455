package config

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "8000"
	defaultProvider    = "courtlistener"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
)

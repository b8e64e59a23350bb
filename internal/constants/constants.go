package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixRouteSearch CachePrefix = "RS_"
	CachePrefixAirports    CachePrefix = "AP_"
)

// Environment variable names read at startup. The search core never reads
// these directly; values are resolved once in cmd/server and passed down.
const (
	EnvAppEnv            = "APP_ENV"
	EnvPort              = "PORT"
	EnvMinConnectionMins = "SEARCH_MIN_CONNECTION_MINUTES"
	EnvMaxConnectionMins = "SEARCH_MAX_CONNECTION_MINUTES"
	EnvSearchCacheTTL    = "SEARCH_CACHE_TTL_SECONDS"
)

const (
	DefaultSearchCacheTTLSeconds = 120
	DefaultResultLimit           = 10
)

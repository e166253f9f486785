package constant

import (
	"time"
)

const (
	RequestParamID = "id"
)

const (
	QueryParamAt             = "at"
	QueryParamLocale         = "locale"
	QueryParamUse24Hour      = "use_24_hour"
	QueryParamShowOffset     = "show_offset"
	QueryParamShowTimeInline = "show_time_inline"
	QueryParamName           = "name"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelSettingsScopeName   = "settings"
)

const (
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRequestID   = "X-Request-ID"
	RequestHeaderUserAgent   = "User-Agent"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	StoreDriverMemory = "memory"
	StoreDriverFile   = "file"
	StoreDriverRedis  = "redis"
)

const (
	Empty = ""
)

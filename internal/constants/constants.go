package constants

import "time"

const (
	RiotCacheTTL     = 1 * time.Hour
	RiotCacheSize    = 1024
	RiotMinInterval  = 1200 * time.Millisecond
	RoleSampleSize   = 15
	SoloQueueType    = "RANKED_SOLO_5x5"
	HandleSeparator  = "#"
	DefaultPlatform  = "jp1"
	DefaultRegion    = "asia"
	RiotAPIKeyHeader = "X-Riot-Token"
)

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 2 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

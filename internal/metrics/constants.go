package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNamePurchases      = "shop_purchases_total"
	MetricNameCoinsCredited  = "wallet_coins_credited_total"
	MetricNameCoinsDebited   = "wallet_coins_debited_total"
	MetricNameChestsIssued   = "chests_issued_total"
	MetricNameChestsOpened   = "chests_opened_total"
	MetricNameLootDrops      = "loot_drops_total"
	MetricNameLevelUps       = "progression_level_ups_total"
	MetricNameRewardUnlocks  = "reward_unlocks_total"
	MetricNameCatalogLookups = "catalog_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of engine events delivered to the bus"
)

// Business metric help text
const (
	HelpTextPurchases      = "Total number of shop purchases by item rarity"
	HelpTextCoinsCredited  = "Total coins credited by reason"
	HelpTextCoinsDebited   = "Total coins debited by reason"
	HelpTextChestsIssued   = "Total number of chests issued by tier"
	HelpTextChestsOpened   = "Total number of chests opened by tier"
	HelpTextLootDrops      = "Total number of loot drops by resolved rarity"
	HelpTextLevelUps       = "Total number of levels gained"
	HelpTextRewardUnlocks  = "Total number of trophy and achievement unlocks by type"
	HelpTextCatalogLookups = "Catalog cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelRarity = "rarity"
	LabelReason = "reason"
	LabelTier   = "tier"
	LabelResult = "result"
)

// Cache lookup results
const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"
)

// UnmatchedRoute labels requests chi could not route, keeping label cardinality bounded
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)

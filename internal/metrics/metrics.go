package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchases,
			Help: HelpTextPurchases,
		},
		[]string{LabelRarity},
	)

	CoinsCredited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsCredited,
			Help: HelpTextCoinsCredited,
		},
		[]string{LabelReason},
	)

	CoinsDebited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsDebited,
			Help: HelpTextCoinsDebited,
		},
		[]string{LabelReason},
	)

	ChestsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChestsIssued,
			Help: HelpTextChestsIssued,
		},
		[]string{LabelTier},
	)

	ChestsOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChestsOpened,
			Help: HelpTextChestsOpened,
		},
		[]string{LabelTier},
	)

	LootDrops = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootDrops,
			Help: HelpTextLootDrops,
		},
		[]string{LabelRarity},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	RewardUnlocks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardUnlocks,
			Help: HelpTextRewardUnlocks,
		},
		[]string{LabelType},
	)

	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogLookups,
			Help: HelpTextCatalogLookups,
		},
		[]string{LabelResult},
	)
)

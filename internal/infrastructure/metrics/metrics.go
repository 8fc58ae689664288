package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	contentCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mononotes_content_cache_hits_total",
		Help: "Number of post list/detail reads served from the in-process cache.",
	})
	contentCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mononotes_content_cache_misses_total",
		Help: "Number of post list/detail reads that required a source fetch.",
	})
	mirrorFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mononotes_mirror_fallbacks_total",
		Help: "Number of reads served from the local mirror because the remote failed or is unconfigured.",
	})
	viewsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mononotes_views_accepted_total",
		Help: "Number of view increments that passed the throttle.",
	})
	viewsThrottled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mononotes_views_throttled_total",
		Help: "Number of view increments deduplicated by the throttle token.",
	})
	publishes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mononotes_publishes_total",
		Help: "Number of publish/delete operations by outcome.",
	}, []string{"operation", "outcome"})
)

func IncCacheHit()  { contentCacheHits.Inc() }
func IncCacheMiss() { contentCacheMisses.Inc() }

func IncMirrorFallback() { mirrorFallbacks.Inc() }

func IncViewAccepted()  { viewsAccepted.Inc() }
func IncViewThrottled() { viewsThrottled.Inc() }

func IncPublish(operation, outcome string) {
	publishes.WithLabelValues(operation, outcome).Inc()
}

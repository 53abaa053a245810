package metrics

import (
	"foodgram/internal/domainerr"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodgram_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Recipe Metrics
	RecipeWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_recipe_writes_total",
			Help: "Recipe compose, recompose and delete operations by outcome",
		},
		[]string{"operation", "result"}, // operation: compose, recompose, delete
	)

	MarkWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_mark_writes_total",
			Help: "Favorite and shopping cart mark operations by outcome",
		},
		[]string{"kind", "operation", "result"},
	)

	SubscriptionWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_subscription_writes_total",
			Help: "Follow and unfollow operations by outcome",
		},
		[]string{"operation", "result"},
	)

	ShoppingListItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "foodgram_shopping_list_items",
			Help:    "Number of distinct ingredients in built shopping lists",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
	)

	ImageUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_image_uploads_total",
			Help: "Recipe image uploads by storage backend and outcome",
		},
		[]string{"backend", "result"},
	)
)

// Result maps an operation error onto a low-cardinality label value.
func Result(err error) string {
	if err == nil {
		return "ok"
	}
	if kind := domainerr.KindOf(err); kind != "" {
		return string(kind)
	}
	return "error"
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordRecipeWrite(operation string, err error) {
	RecipeWrites.WithLabelValues(operation, Result(err)).Inc()
}

func RecordMarkWrite(kind, operation string, err error) {
	MarkWrites.WithLabelValues(kind, operation, Result(err)).Inc()
}

func RecordSubscriptionWrite(operation string, err error) {
	SubscriptionWrites.WithLabelValues(operation, Result(err)).Inc()
}

func RecordShoppingList(items int) {
	ShoppingListItems.Observe(float64(items))
}

func RecordImageUpload(backend string, err error) {
	ImageUploads.WithLabelValues(backend, Result(err)).Inc()
}

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// AssignmentRuns counts assignment runs by outcome ("ok" or the error kind)
	AssignmentRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "carpool_assignment_runs_total", Help: "Ride assignment runs by outcome."},
		[]string{"outcome"},
	)
	// PassengersAssigned counts people placed with a driver
	PassengersAssigned = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "carpool_passengers_assigned_total", Help: "People assigned to a driver."},
	)
	// PeopleUnassigned counts present people left without a ride
	PeopleUnassigned = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "carpool_people_unassigned_total", Help: "Present people left without a ride."},
	)
	// DistanceTravelled records the summed per-run distance from the origin
	DistanceTravelled = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "carpool_run_distance", Help: "Total distance charged per assignment run.", Buckets: prometheus.ExponentialBuckets(1, 2, 12)},
	)
)

// RegisterDefault registers collectors to the service registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(AssignmentRuns)
		Registry.MustRegister(PassengersAssigned)
		Registry.MustRegister(PeopleUnassigned)
		Registry.MustRegister(DistanceTravelled)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once

package ports

import "time"

type MetricsProvider interface {
	IncrementHTTPRequests(method, route, status string)
	RecordHTTPRequestDuration(method, route, status string, duration time.Duration)

	IncrementGRPCRequests(method, status string)
	RecordGRPCRequestDuration(method, status string, duration time.Duration)

	IncrementStorageOperations(operation string, success bool)
	RecordStorageOperationDuration(operation string, duration time.Duration)
	IncrementStorageLoadFallbacks(reason string)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementPostOperations(operation string, success bool)
	IncrementEventPublishes(eventType string, success bool)

	SetServiceHealth(healthy bool)
}

// Package tracing stores the orders that a kitchen has processed.
package tracing

// OrderRecord is everything recorded about one order.
type OrderRecord struct {
	ID          string  `json:"id"`
	Station     string  `json:"station"`
	Bread       string  `json:"bread"`
	Patty       string  `json:"patty"`
	Cheese      bool    `json:"cheese"`
	Lettuce     bool    `json:"lettuce"`
	Description string  `json:"description"`
	StartTime   float64 `json:"start_time"`
	EndTime     float64 `json:"end_time"`
}

// TracerBackend is a backend that can store order records.
type TracerBackend interface {
	// Write writes a record to the storage.
	Write(r OrderRecord)

	// Flush flushes the records to the storage, in case if the backend
	// buffers the records.
	Flush()
}

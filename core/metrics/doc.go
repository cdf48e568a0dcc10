// Package metrics defines the sinks that observe predictions. A sink records
// every served prediction and, when it implements the optional recorder
// interfaces, validation failures and request latencies. Sinks are built from
// configuration through NewMetricsSink; several configured sinks are combined
// in a MultiSink.
package metrics

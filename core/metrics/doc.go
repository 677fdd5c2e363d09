// Package metrics defines the ReportSink interface used to export finished
// efficiency reports. Implementations live in infra/metrics (Prometheus,
// InfluxDB) and infra/mqtt, and register themselves by type name so the
// configuration can list any combination of them. Several configured sinks
// are wrapped in a MultiSink automatically.
package metrics

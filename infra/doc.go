// Package infra contains technical adapters such as the zerolog logger,
// the MQTT publisher and the Prometheus and InfluxDB report sinks. These
// packages depend only on the interfaces defined in the core packages.
package infra

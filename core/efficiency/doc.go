// Package efficiency implements the first-order linear temperature-coefficient
// model for PV cells. Efficiency falls linearly with cell temperature above
// the reference point and is clamped at zero.
package efficiency

// Package report pairs stations with their cell temperatures, runs the
// efficiency model on each and ranks the results by efficiency, highest
// first. The Report it returns exposes the sorted rows as well as the
// parallel per-field vectors expected by array-oriented callers.
package report

// Package transitsched holds the schedule-side data model this module
// routes onto a network.Graph: Stop, Route, Service, and Schedule, plus the
// Element sum type that lets C4 accept any of the three without runtime
// type switches.
package transitsched

// Package timer implements a deadline-based countdown.
//
// A [Countdown] never counts ticks. Starting records an absolute end instant
// and every [Countdown.Tick] recomputes the remaining time from the injected
// clock, so refresh jitter cannot accumulate into drift.
//
// # States
//
//	Idle    --Start-->  Running
//	Running --Pause-->  Paused
//	Paused  --Start-->  Running
//	any     --Reset-->  Idle
//	Running --expiry--> Idle (alerting)
package timer

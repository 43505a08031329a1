// Package app holds the application state shared by every handler: the clock
// set, the countdown, the display mode and the refresh scheduler.
//
// An [App] is built once at startup and handed to the view. Handlers follow a
// fixed order: mutate state, persist, then ask the [Renderer] to draw. The
// mode switch guarantees exactly one of the clock and timer views is active
// and that each view's refresh repeat is installed through [sched.Scheduler].
package app

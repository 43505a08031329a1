// Package zone resolves wall-clock time of day for the supported time zones.
//
// The package is built around a fixed catalog and a resolver:
//
//   - [Catalog]: the ordered list of zones the application offers
//   - [Resolver]: converts an instant into a [TimeOfDay] for one zone
//   - [Digital] and [HandAngles]: presentation helpers for clock faces
//
// # Fallback
//
// [Resolver.Resolve] reports unsupported or unloadable zones as errors.
// [Resolver.ResolveOrLocal] is the policy used by the refresh loop: any error
// collapses into the host's local time so rendering never stops.
package zone

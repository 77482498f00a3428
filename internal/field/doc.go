// Package field animates the node-and-edge background of the portfolio.
//
// An [Animator] owns a fixed-size set of [Node] values, moves them every
// frame, pushes them away from the pointer and draws them together with the
// transient connections between nearby nodes:
//
//   - [Surface]: raster the animator draws on
//   - [PointerSource]: stream of pointer coordinates
//   - [Clock]: per-refresh callback scheduler
//
// # Example
//
//	clock := field.NewManualClock()
//	a, _ := field.New(surface, clock, field.DefaultParams(), nil)
//	a.Init(1600, 900)
//	a.Start()
//	clock.Tick() // one update + render
//
// # Thread Safety
//
// Animator instances are NOT thread-safe. All calls, including the pointer
// handler registered by [Animator.Attach], must come from the goroutine that
// drives the clock.
package field

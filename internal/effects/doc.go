// Package effects holds the small page animations that share the field's
// frame loop: the typewriter headline, the falling-character overlay, scroll
// reveal and smooth scrolling. Every effect is stepped explicitly and owns
// no goroutines.
package effects

// Package options provides the functional-options pattern used to
// configure a Clipper's numerical tolerances without widening its
// constructor's signature every time a new knob is needed.
//
// A caller only reaches for this package when overriding a default;
// the defaults themselves are the base value polyclip.New passes to
// Apply.
package options

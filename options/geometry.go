package options

// ClipperOptionsFunc is a functional option for configuring a Clipper.
// Functions accepting ClipperOptionsFunc let callers override numerical
// tolerances without widening the constructor's signature.
type ClipperOptionsFunc func(*ClipperOptions)

// ClipperOptions holds the tolerances a Clipper uses while sweeping.
// The zero value is not usable directly; Apply runs the caller's options
// over the base value it is given, so the base carries the defaults for
// any field a caller did not override.
type ClipperOptions struct {
	// Epsilon bounds how far the parallel-discriminant test in the
	// intersection kernel may drift from zero before two segments are
	// still considered non-parallel.
	Epsilon float64

	// SnapTolerance bounds how close a computed intersection point must
	// be, per coordinate, to an existing segment endpoint before it is
	// replaced by that endpoint exactly.
	SnapTolerance float64
}

// Apply folds a set of functional options onto a base ClipperOptions,
// applying each in order so later options win ties with earlier ones.
func Apply(base ClipperOptions, opts ...ClipperOptionsFunc) ClipperOptions {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

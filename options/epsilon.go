package options

// WithEpsilon overrides the intersection kernel's parallel-discriminant
// tolerance. A negative value is clamped to zero (exact comparison).
func WithEpsilon(epsilon float64) ClipperOptionsFunc {
	return func(o *ClipperOptions) {
		if epsilon < 0 {
			epsilon = 0
		}
		o.Epsilon = epsilon
	}
}

// WithSnapTolerance overrides the endpoint-snapping distance used after
// computing a segment intersection. A negative value is clamped to zero.
func WithSnapTolerance(delta float64) ClipperOptionsFunc {
	return func(o *ClipperOptions) {
		if delta < 0 {
			delta = 0
		}
		o.SnapTolerance = delta
	}
}

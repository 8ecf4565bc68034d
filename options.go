package xsdf

// Option configures a distance field computation.
type Option func(*options)

type options struct {
	insidePositive bool
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithInsidePositive flips the sign convention so that distances are
// positive inside of the shape and negative outside of it.
func WithInsidePositive() Option {
	return func(o *options) {
		o.insidePositive = true
	}
}

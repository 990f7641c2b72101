package pixbuf

// Option configures how a Pixbuf is loaded.
//
// Example:
//
//	// Drop the original file bytes once decoded
//	pb, err := pixbuf.Load("photo.jpg", pixbuf.WithMIMEData(false))
type Option func(*options)

type options struct {
	keepMIME bool
}

func defaultOptions() options {
	return options{keepMIME: true}
}

// WithMIMEData controls whether the compressed source bytes of PNG and
// JPEG images are kept alongside the pixels. Exporters can embed them
// verbatim instead of re-encoding. Enabled by default.
func WithMIMEData(keep bool) Option {
	return func(o *options) {
		o.keepMIME = keep
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

package bedazzle

import "log/slog"

type options struct {
	Interceptors []Interceptor
	Logger       *slog.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) interceptor() Interceptor {
	interceptors := make([]Interceptor, 0, len(o.Interceptors)+1)
	if o.Logger != nil {
		interceptors = append(interceptors, LogInterceptor(o.Logger))
	}
	interceptors = append(interceptors, o.Interceptors...)
	return ChainInterceptors(interceptors...)
}

type Option func(*options)

// Interceptors appends interceptors wrapping every decorator invocation.
func Interceptors(interceptors ...Interceptor) Option {
	return func(o *options) {
		o.Interceptors = append(o.Interceptors, interceptors...)
	}
}

// Logger logs every decorator invocation to logger.
func Logger(logger *slog.Logger) Option {
	return func(o *options) {
		o.Logger = logger
	}
}

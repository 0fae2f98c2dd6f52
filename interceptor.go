package bedazzle

import (
	"log/slog"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Invoker invokes a decorator.
type Invoker func(state State, recompose Recompose) (State, error)

// Info describes the decorator being invoked.
type Info struct {
	// Index is the position of the decorator in its pipeline.
	Index int
	// Name is the name given with Named, or "decorator#<Index>".
	Name string
	// Generation counts the recompose calls that led to this composition, 0 for the first one.
	Generation int
}

// Interceptor wraps a decorator invocation. It must call invoker to run the decorator.
type Interceptor func(state State, recompose Recompose, info Info, invoker Invoker) (State, error)

// ChainInterceptors creates a single interceptor out of many. The first one is the outermost.
func ChainInterceptors(interceptors ...Interceptor) Interceptor {
	var interceptor Interceptor
	if len(interceptors) == 0 {
		interceptor = nil
	} else if len(interceptors) == 1 {
		interceptor = interceptors[0]
	} else {
		interceptor = func(state State, recompose Recompose, info Info, invoker Invoker) (State, error) {
			return interceptors[0](state, recompose, info, getInvoker(interceptors, 0, info, invoker))
		}
	}
	return interceptor
}

func getInvoker(interceptors []Interceptor, curr int, info Info, finalInvoker Invoker) Invoker {
	if curr == len(interceptors)-1 {
		return finalInvoker
	}
	return func(state State, recompose Recompose) (State, error) {
		return interceptors[curr+1](state, recompose, info, getInvoker(interceptors, curr+1, info, finalInvoker))
	}
}

// LogInterceptor logs each decorator invocation at debug level, and failures at error level.
// A nil logger logs to slog.Default().
func LogInterceptor(logger *slog.Logger) Interceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(state State, recompose Recompose, info Info, invoker Invoker) (State, error) {
		partial, err := invoker(state, recompose)
		if err != nil {
			logger.Error("decorator failed",
				slog.String("decorator", info.Name),
				slog.Int("index", info.Index),
				slog.Int("generation", info.Generation),
				slog.Any("error", err),
			)
			return nil, err
		}
		keys := maps.Keys(partial)
		slices.Sort(keys)
		logger.Debug("decorator applied",
			slog.String("decorator", info.Name),
			slog.Int("index", info.Index),
			slog.Int("generation", info.Generation),
			slog.Any("keys", keys),
		)
		return partial, nil
	}
}

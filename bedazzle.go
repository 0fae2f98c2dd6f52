package bedazzle

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Recompose restarts the decoration pipeline from base, re-applying every decorator
// of the pipeline in the original order.
type Recompose func(base State) (State, error)

// Decorator contributes a partial state to a composed object.
type Decorator interface {
	// Decorate receives the state accumulated so far and returns the entries to merge on top of it.
	Decorate(state State, recompose Recompose) (State, error)
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc func(state State, recompose Recompose) (State, error)

// Decorate calls f(state, recompose).
func (f DecoratorFunc) Decorate(state State, recompose Recompose) (State, error) {
	return f(state, recompose)
}

// Static returns a Decorator that always contributes partial, ignoring its arguments.
func Static(partial State) Decorator {
	partial = Clone(partial)
	return DecoratorFunc(func(State, Recompose) (State, error) {
		return Clone(partial), nil
	})
}

type named struct {
	Decorator
	name string
}

func (d named) Name() string {
	return d.name
}

// Named attaches a name to d, reported to interceptors.
func Named(name string, d Decorator) Decorator {
	if isNil(d) {
		return nil
	}
	return named{Decorator: d, name: name}
}

// isNil reports whether d is nil or wraps a nil function.
func isNil(d Decorator) bool {
	switch d := d.(type) {
	case nil:
		return true
	case DecoratorFunc:
		return d == nil
	case named:
		return isNil(d.Decorator)
	case conditional:
		return isNil(d.Decorator)
	}
	return false
}

func nameOf(index int, d Decorator) string {
	if n, ok := d.(interface{ Name() string }); ok && n.Name() != "" {
		return n.Name()
	}
	return fmt.Sprintf("decorator#%d", index)
}

// Pipeline is an ordered, immutable list of decorators.
type Pipeline struct {
	decorators  []Decorator
	interceptor Interceptor
}

// NewPipeline returns a Pipeline applying decorators in order.
func NewPipeline(decorators ...Decorator) *Pipeline {
	return &Pipeline{decorators: slices.Clone(decorators)}
}

// Decorators returns a copy of the decorators of the pipeline.
func (p *Pipeline) Decorators() []Decorator {
	return slices.Clone(p.decorators)
}

// Compose folds the decorators over base and returns the composed object.
// The first decorator error aborts the fold and is returned unchanged.
func (p *Pipeline) Compose(base State) (State, error) {
	for i, decorator := range p.decorators {
		if isNil(decorator) {
			return nil, fmt.Errorf("%w at index %d", ErrDecoratorNil, i)
		}
	}
	return p.compose(base, 0)
}

func (p *Pipeline) compose(base State, generation int) (State, error) {
	recompose := func(newBase State) (State, error) {
		return p.compose(newBase, generation+1)
	}
	acc := Clone(base)
	for i, decorator := range p.decorators {
		partial, err := p.invoke(acc, recompose, Info{Index: i, Name: nameOf(i, decorator), Generation: generation}, decorator)
		if err != nil {
			return nil, err
		}
		acc = Merge(acc, partial)
	}
	return acc, nil
}

func (p *Pipeline) invoke(state State, recompose Recompose, info Info, decorator Decorator) (State, error) {
	if p.interceptor == nil {
		return decorator.Decorate(state, recompose)
	}
	return p.interceptor(state, recompose, info, decorator.Decorate)
}

// Compose decorates base with decorators, in order.
func Compose(base State, decorators ...Decorator) (State, error) {
	return NewPipeline(decorators...).Compose(base)
}

// Composer builds pipelines sharing the same options.
type Composer struct {
	options *options
}

// NewComposer returns a Composer configured with opts.
func NewComposer(opts ...Option) *Composer {
	return &Composer{options: newOptions(opts...)}
}

// Pipeline returns a Pipeline applying decorators with the composer options.
func (c *Composer) Pipeline(decorators ...Decorator) *Pipeline {
	p := NewPipeline(decorators...)
	p.interceptor = c.options.interceptor()
	return p
}

// Compose decorates base with decorators, in order.
func (c *Composer) Compose(base State, decorators ...Decorator) (State, error) {
	return c.Pipeline(decorators...).Compose(base)
}

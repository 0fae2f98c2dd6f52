/*
Package bedazzle progressively decorates an object with new properties and methods.

A composed object is a State, an open key/value mapping. It is built by folding
an ordered list of decorators over a base state. Every decorator receives the
state accumulated so far and returns a partial state which is merged on top of
it, later decorators winning on key collision:

	rect, err := bedazzle.Compose(
		bedazzle.State{"width": 10.0, "height": 5.0},
		withArea,
		withPerimeter,
	)

Decorators never mutate what they are given. To produce an updated version of
the object, a decorator calls the Recompose callback it receives, which restarts
the pipeline from a new base state with the very same decorators:

	withAddItem := bedazzle.DecoratorFunc(func(cart bedazzle.State, recompose bedazzle.Recompose) (bedazzle.State, error) {
		return bedazzle.State{
			"addItem": func(price float64) (bedazzle.State, error) {
				subtotal, _ := bedazzle.Get[float64](cart, "subtotal")
				return recompose(bedazzle.Merge(cart, bedazzle.State{"subtotal": subtotal + price}))
			},
		}, nil
	})

Methods are stored as function values. Get and Lookup retrieve them typed.

A decorator error aborts the composition and is returned to the caller as is.
Compose holds no state between calls.
*/
package bedazzle

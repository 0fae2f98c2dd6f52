package bedazzle_test

import (
	"fmt"

	"github.com/go-leo/bedazzle"
)

func ExampleCompose() {
	withArea := bedazzle.DecoratorFunc(func(state bedazzle.State, _ bedazzle.Recompose) (bedazzle.State, error) {
		width, height := state["width"].(float64), state["height"].(float64)
		return bedazzle.State{"getArea": func() float64 { return width * height }}, nil
	})
	withPerimeter := bedazzle.DecoratorFunc(func(state bedazzle.State, _ bedazzle.Recompose) (bedazzle.State, error) {
		width, height := state["width"].(float64), state["height"].(float64)
		return bedazzle.State{"getPerimeter": func() float64 { return 2 * (width + height) }}, nil
	})

	rect, err := bedazzle.Compose(bedazzle.State{"width": 10.0, "height": 5.0}, withArea, withPerimeter)
	if err != nil {
		panic(err)
	}
	getArea, _ := bedazzle.Get[func() float64](rect, "getArea")
	getPerimeter, _ := bedazzle.Get[func() float64](rect, "getPerimeter")
	fmt.Println(getArea(), getPerimeter())
	// Output: 50 30
}

func ExampleRecompose() {
	withCounter := bedazzle.DecoratorFunc(func(state bedazzle.State, recompose bedazzle.Recompose) (bedazzle.State, error) {
		count := state["count"].(int)
		return bedazzle.State{
			"increment": func() (bedazzle.State, error) {
				return recompose(bedazzle.Merge(state, bedazzle.State{"count": count + 1}))
			},
		}, nil
	})

	counter, _ := bedazzle.Compose(bedazzle.State{"count": 0}, withCounter)
	for i := 0; i < 3; i++ {
		increment, _ := bedazzle.Get[func() (bedazzle.State, error)](counter, "increment")
		counter, _ = increment()
	}
	fmt.Println(counter["count"])
	// Output: 3
}

func ExampleMarshal() {
	obj, _ := bedazzle.Compose(
		bedazzle.State{"name": "Base Car"},
		bedazzle.Static(bedazzle.State{"name": "Race Car", "summary": func() {}}),
	)
	data, _ := bedazzle.Marshal(obj)
	fmt.Println(string(data))
	// Output: {"name":"Race Car"}
}

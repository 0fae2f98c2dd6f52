package bedazzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	dst := State{"a": 1, "b": 2}
	src := State{"b": 3, "c": 4}
	merged := Merge(dst, src)
	assert.Equal(t, State{"a": 1, "b": 3, "c": 4}, merged)
	assert.Equal(t, State{"a": 1, "b": 2}, dst)
	assert.Equal(t, State{"b": 3, "c": 4}, src)

	assert.Equal(t, State{}, Merge(nil, nil))
}

func TestLookup(t *testing.T) {
	s := State{"name": "car", "speed": 300.0}

	name, err := Lookup[string](s, "name")
	assert.NoError(t, err)
	assert.Equal(t, "car", name)

	_, err = Lookup[string](s, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Contains(t, err.Error(), `"missing"`)

	_, err = Lookup[int](s, "speed")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "float64")

	speed, ok := Get[float64](s, "speed")
	assert.True(t, ok)
	assert.Equal(t, 300.0, speed)
	_, ok = Get[float64](s, "name")
	assert.False(t, ok)
}

func TestDataAndMethods(t *testing.T) {
	s := State{"width": 1, "nothing": nil, "area": func() int { return 1 }, "log": func() {}}
	assert.Equal(t, State{"width": 1, "nothing": nil}, Data(s))
	assert.Equal(t, []string{"area", "log"}, Methods(s))
	assert.Empty(t, Methods(Data(s)))
}

func TestEqual(t *testing.T) {
	a := State{"items": []int{1, 2}, "total": func() int { return 3 }}
	b := State{"items": []int{1, 2}, "total": func() int { return 4 }}
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, State{"items": []int{1, 2}, "total": 3}))
	assert.False(t, Equal(a, State{"items": []int{2, 1}, "total": func() int { return 3 }}))
	assert.False(t, Equal(a, State{"items": []int{1, 2}}))
	assert.False(t, Equal(a, State{"items": []int{1, 2}, "count": func() int { return 3 }}))
	assert.True(t, Equal(nil, State{}))
}

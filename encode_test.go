package bedazzle

import (
	"testing"

	"github.com/go-leo/gox/errorx"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	rect, err := Compose(State{"width": 5, "height": 10}, withArea, withPerimeter)
	require.NoError(t, err)

	ja := jsonassert.New(t)
	ja.Assertf(string(errorx.Ignore(Marshal(rect))), `{"height": 10, "width": 5}`)

	indented := string(errorx.Ignore(MarshalIndent(rect, "  ")))
	ja.Assertf(indented, `{"height": 10, "width": 5}`)
	assert.Contains(t, indented, "\n  \"height\": 10")

	_, err = MarshalIndent(rect, "\t")
	assert.Error(t, err)
}

func TestMarshalError(t *testing.T) {
	_, err := Marshal(State{"ch": make(chan int)})
	assert.Error(t, err)
	_, err = ToStruct(State{"ch": make(chan int)})
	assert.Error(t, err)
}

func TestToStruct(t *testing.T) {
	cart, err := Compose(State{"items": []string{"shirt"}, "subtotal": 30.5}, Static(State{"total": func() float64 { return 0 }}))
	require.NoError(t, err)

	st, err := ToStruct(cart)
	require.NoError(t, err)
	assert.Len(t, st.GetFields(), 2)
	assert.Equal(t, 30.5, st.GetFields()["subtotal"].GetNumberValue())
	assert.Equal(t, "shirt", st.GetFields()["items"].GetListValue().GetValues()[0].GetStringValue())
}

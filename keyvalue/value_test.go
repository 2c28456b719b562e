package keyvalue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type status string

type level uint8

func TestFromAny_Scalars(t *testing.T) {
	v, ok := FromAny("tech")
	require.True(t, ok)
	assert.Equal(t, KindString, v.Kind())
	s, _ := v.AsString()
	assert.Equal(t, "tech", s)

	v, ok = FromAny(true)
	require.True(t, ok)
	assert.Equal(t, Bool(true), v)

	v, ok = FromAny(2.5)
	require.True(t, ok)
	assert.Equal(t, KindFloat, v.Kind())
}

func TestFromAny_NumericNormalization(t *testing.T) {
	a, ok := FromAny(3)
	require.True(t, ok)
	b, ok := FromAny(int8(3))
	require.True(t, ok)
	c, ok := FromAny(3.0)
	require.True(t, ok)
	d, ok := FromAny(uint64(3))
	require.True(t, ok)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, a, d)
	assert.Equal(t, KindInt, c.Kind())

	negZero, ok := FromAny(math.Copysign(0, -1))
	require.True(t, ok)
	assert.Equal(t, Int(0), negZero)
}

func TestFromAny_NamedTypes(t *testing.T) {
	v, ok := FromAny(status("open"))
	require.True(t, ok)
	assert.Equal(t, String("open"), v)

	v, ok = FromAny(level(4))
	require.True(t, ok)
	assert.Equal(t, Int(4), v)

	name := "ptr"
	v, ok = FromAny(&name)
	require.True(t, ok)
	assert.Equal(t, String("ptr"), v)
}

func TestFromAny_NotKeys(t *testing.T) {
	var nilPtr *string
	for _, x := range []any{nil, nilPtr, math.NaN(), []int{1}, map[string]int{}, struct{}{}} {
		_, ok := FromAny(x)
		assert.False(t, ok, "%T", x)
	}
}

func TestValue_UsableAsMapKey(t *testing.T) {
	m := map[Value]int{}
	m[String("constructor")]++
	m[String("__proto__")]++
	m[String("constructor")]++

	assert.Equal(t, 2, m[String("constructor")])
	assert.Equal(t, 1, m[String("__proto__")])
	assert.Len(t, m, 2)
	assert.NotEqual(t, String("1"), Int(1))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "0.5", Float(0.5).String())
	assert.Equal(t, "x", String("x").String())
	assert.Equal(t, "false", Bool(false).String())
	assert.Equal(t, "<invalid>", Value{}.String())
	assert.Equal(t, "int", KindInt.String())
}

func TestValue_Interface(t *testing.T) {
	assert.Equal(t, int64(7), Int(7).Interface())
	assert.Equal(t, 1.5, Float(1.5).Interface())
	assert.Equal(t, "s", String("s").Interface())
	assert.Equal(t, true, Bool(true).Interface())
	assert.Nil(t, Value{}.Interface())
}

func TestFloat64(t *testing.T) {
	f, ok := Float64(10)
	require.True(t, ok)
	assert.Equal(t, 10.0, f)

	f, ok = Float64(float32(0.25))
	require.True(t, ok)
	assert.Equal(t, 0.25, f)

	f, ok = Float64(level(3))
	require.True(t, ok)
	assert.Equal(t, 3.0, f)

	_, ok = Float64("10")
	assert.False(t, ok)
	_, ok = Float64(nil)
	assert.False(t, ok)
}

func TestTruthy(t *testing.T) {
	falseVal := false
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(false))
	assert.False(t, Truthy(&falseVal))
	assert.True(t, Truthy(true))
	assert.True(t, Truthy(0))
	assert.True(t, Truthy(""))
	assert.True(t, Truthy(struct{}{}))
}

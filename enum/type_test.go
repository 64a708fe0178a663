package enum_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enum-mapper/enum"
	"enum-mapper/store"
	"enum-mapper/warehouse"
)

type color uint8

func (c color) String() string {
	switch c {
	case 1:
		return "Red"
	case 2:
		return "Green"
	default:
		return "color(?)"
	}
}

func TestOf(t *testing.T) {
	typ, err := enum.Of(map[string]warehouse.StatusForDto{
		"Complete":   warehouse.StatusForDtoComplete,
		"InProgress": warehouse.StatusForDtoInProgress,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.TypeID{PkgPath: "enum-mapper/warehouse", Name: "StatusForDto"}, typ.ID())
	assert.Equal(t, reflect.TypeFor[warehouse.StatusForDto](), typ.ReflectType())
	assert.Equal(t, 2, typ.Len())

	// Members are ordered by value regardless of map iteration order.
	assert.Equal(t, []enum.Member{
		{Name: "InProgress", Value: 1},
		{Name: "Complete", Value: 2},
	}, typ.Members())
}

func TestOfStringer(t *testing.T) {
	typ, err := enum.OfStringer(store.StatusInProgress, store.StatusComplete)
	require.NoError(t, err)

	v, ok := typ.ByName("InProgress")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.Int())

	typ, err = enum.OfStringer[color](1, 2)
	require.NoError(t, err)
	v, ok = typ.ByValue(2)
	require.True(t, ok)
	assert.Equal(t, "Green", v.Name())
}

func TestNewRejectsInvalidMembers(t *testing.T) {
	id := enum.TypeID{PkgPath: "test", Name: "Kind"}

	tests := []struct {
		name    string
		members []enum.Member
		wantErr error
	}{
		{"empty name", []enum.Member{{Name: "", Value: 1}}, enum.ErrEmptyName},
		{"duplicate name", []enum.Member{{Name: "A", Value: 1}, {Name: "A", Value: 2}}, enum.ErrDuplicateName},
		{"duplicate value", []enum.Member{{Name: "A", Value: 1}, {Name: "B", Value: 1}}, enum.ErrDuplicateValue},
		{"valid", []enum.Member{{Name: "A", Value: 1}, {Name: "B", Value: 2}}, nil},
		{"no members", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enum.New(id, tt.members...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReflectRejectsNonInteger(t *testing.T) {
	_, err := enum.Reflect(reflect.TypeFor[string]())
	assert.ErrorIs(t, err, enum.ErrNotInteger)

	_, err = enum.Reflect(nil)
	assert.ErrorIs(t, err, enum.ErrNotInteger)
}

func TestTypeSame(t *testing.T) {
	a, err := enum.OfStringer(store.StatusInProgress, store.StatusComplete)
	require.NoError(t, err)
	b, err := enum.OfStringer(store.StatusInProgress)
	require.NoError(t, err)
	other, err := enum.Of(map[string]warehouse.StatusForDto{"InProgress": 1})
	require.NoError(t, err)

	static, err := enum.New(enum.TypeID{PkgPath: "enum-mapper/store", Name: "Status"})
	require.NoError(t, err)

	assert.True(t, a.Same(a))
	assert.True(t, a.Same(b), "same runtime type")
	assert.True(t, a.Same(static), "same identity")
	assert.False(t, a.Same(other))
	assert.False(t, a.Same(nil))
}

func TestValueOf(t *testing.T) {
	typ, err := enum.OfStringer(store.StatusInProgress, store.StatusComplete)
	require.NoError(t, err)

	v, err := typ.ValueOf(reflect.ValueOf(store.StatusComplete))
	require.NoError(t, err)
	assert.Equal(t, "Complete", v.Name())
	assert.True(t, v.IsDeclared())
	assert.Equal(t, "Status.Complete", v.String())

	v, err = typ.ValueOf(reflect.ValueOf(store.Status(42)))
	require.NoError(t, err)
	assert.False(t, v.IsDeclared())
	assert.Equal(t, "Status(42)", v.String())

	_, err = typ.ValueOf(reflect.ValueOf(warehouse.StatusForDtoComplete))
	assert.ErrorIs(t, err, enum.ErrTypeMismatch)

	static, err := enum.New(typ.ID(), typ.Members()...)
	require.NoError(t, err)
	_, err = static.ValueOf(reflect.ValueOf(store.StatusComplete))
	assert.ErrorIs(t, err, enum.ErrNoReflectType)
}

func TestValueRoundTrip(t *testing.T) {
	typ, err := enum.OfStringer[color](1, 2)
	require.NoError(t, err)

	v, ok := typ.ByName("Red")
	require.True(t, ok)

	c, err := enum.As[color](v)
	require.NoError(t, err)
	assert.Equal(t, color(1), c)

	boxed, err := v.Interface()
	require.NoError(t, err)
	assert.Equal(t, color(1), boxed)

	_, err = enum.As[store.Status](v)
	assert.ErrorIs(t, err, enum.ErrTypeMismatch)
}

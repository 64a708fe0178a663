package convert_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"enum-mapper/convert"
	"enum-mapper/store"
	"enum-mapper/warehouse"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestResolve_ConcurrentReaders(t *testing.T) {
	r := testRegistry(t)
	target := mustLookup(t, r, reflect.TypeFor[warehouse.StatusForDto]())
	generic, err := convert.NewEnumValueResolver[store.Status, warehouse.StatusForDto](r)
	require.NoError(t, err)

	var g errgroup.Group
	for i := range 64 {
		g.Go(func() error {
			status := store.StatusInProgress
			if i%2 == 1 {
				status = store.StatusComplete
			}

			src, err := r.ValueOf(status)
			if err != nil {
				return err
			}
			out, _, err := convert.Resolve(src, target)
			if err != nil {
				return err
			}
			viaGeneric, err := generic.Convert(status)
			if err != nil {
				return err
			}

			assert.Equal(t, src.Name(), out.Name())
			assert.Equal(t, warehouse.StatusForDto(status), viaGeneric)
			return nil
		})
	}

	require.NoError(t, g.Wait())
}

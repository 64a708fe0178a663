package mapper_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"enum-mapper/convert"
	"enum-mapper/enum"
	"enum-mapper/mapper"
	"enum-mapper/store"
	"enum-mapper/warehouse"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type reviewDto struct {
	ID     int64
	Status warehouse.ReviewStatus
}

type kind int

type kindDto struct {
	Status kind
}

type legacyOrder struct {
	OrderId int64
	Note    string
}

type legacyOrderDto struct {
	OrderID int64
	Note    []byte
}

func testRegistry(t *testing.T) *enum.Registry {
	t.Helper()

	r := enum.NewRegistry()
	require.NoError(t, store.RegisterEnums(r))
	require.NoError(t, warehouse.RegisterEnums(r))

	return r
}

func testMapper(t *testing.T, opts ...mapper.Option) *mapper.Mapper {
	t.Helper()

	return mapper.New(append([]mapper.Option{mapper.WithRegistry(testRegistry(t))}, opts...)...)
}

func order(status store.Status) store.Order {
	return store.Order{ID: 42, CustomerID: 7, Status: status, TotalCents: 1250, Note: "gift"}
}

func TestMap_SharedEnum(t *testing.T) {
	m := testMapper(t)
	mapper.CreateMap[store.Order, warehouse.OrderDto](m)

	for _, status := range []store.Status{store.StatusInProgress, store.StatusComplete, store.Status(42)} {
		dto, err := mapper.Map[warehouse.OrderDto](m, order(status))
		require.NoError(t, err)
		assert.Equal(t, warehouse.OrderDto{ID: 42, Status: status}, dto)
	}
}

func TestMap_NameMatch(t *testing.T) {
	m := testMapper(t)
	mapper.CreateMap[store.Order, warehouse.OrderDtoWithOwnStatus](m)

	dto, err := mapper.Map[warehouse.OrderDtoWithOwnStatus](m, order(store.StatusInProgress))
	require.NoError(t, err)
	assert.Equal(t, warehouse.StatusForDtoInProgress, dto.Status)

	dto, err = mapper.Map[warehouse.OrderDtoWithOwnStatus](m, order(store.StatusComplete))
	require.NoError(t, err)
	assert.Equal(t, warehouse.StatusForDtoComplete, dto.Status)
}

func TestMap_ValueMatch(t *testing.T) {
	m := testMapper(t)
	mapper.CreateMap[store.Order, warehouse.OrderSummary](m).
		ForMember("Total", mapper.FromMember("TotalCents"))

	got, err := mapper.Map[warehouse.OrderSummary](m, order(store.StatusComplete))
	require.NoError(t, err)

	want := warehouse.OrderSummary{ID: 42, Status: warehouse.LegacyStatusDone, Total: 1250}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestMap_CustomResolverWins(t *testing.T) {
	calls := 0
	inverse := convert.Func(func(o store.Order) (warehouse.StatusForDto, error) {
		calls++
		if o.Status == store.StatusComplete {
			return warehouse.StatusForDtoInProgress, nil
		}
		return warehouse.StatusForDtoComplete, nil
	})

	m := testMapper(t)
	mapper.CreateMap[store.Order, warehouse.OrderDtoWithOwnStatus](m).
		ForMember("Status", mapper.ResolveUsing(inverse))

	dto, err := mapper.Map[warehouse.OrderDtoWithOwnStatus](m, order(store.StatusComplete))
	require.NoError(t, err)

	// The name chain would have produced Complete.
	assert.Equal(t, warehouse.StatusForDtoInProgress, dto.Status)
	assert.Equal(t, int64(42), dto.ID)
	assert.Equal(t, 1, calls)
}

func TestMap_EnumValueResolver(t *testing.T) {
	reg := testRegistry(t)
	m := mapper.New(mapper.WithRegistry(reg))

	byName, err := convert.NewEnumValueResolver[store.Status, warehouse.StatusForDto](reg)
	require.NoError(t, err)
	mapper.CreateMap[store.Order, warehouse.OrderDtoWithOwnStatus](m).
		ForMember("Status", mapper.ResolveUsing(byName), mapper.FromMember("Status"))

	dto, err := mapper.Map[warehouse.OrderDtoWithOwnStatus](m, order(store.StatusComplete))
	require.NoError(t, err)
	assert.Equal(t, warehouse.StatusForDtoComplete, dto.Status)
}

func TestMap_EnumValueResolverNeverMatchesByValue(t *testing.T) {
	reg := testRegistry(t)
	m := mapper.New(mapper.WithRegistry(reg))

	byName, err := convert.NewEnumValueResolver[store.Status, warehouse.LegacyStatus](reg)
	require.NoError(t, err)
	mapper.CreateMap[store.Order, warehouse.OrderSummary](m).
		ForMember("Status", mapper.ResolveUsing(byName), mapper.FromMember("Status"))

	_, err = mapper.Map[warehouse.OrderSummary](m, order(store.StatusComplete))
	require.ErrorIs(t, err, convert.ErrNoMatchingName)

	var memberErr *mapper.MemberError
	require.ErrorAs(t, err, &memberErr)
	assert.Equal(t, "Status", memberErr.Member)
	assert.Equal(t, "store.Order -> warehouse.OrderSummary", memberErr.Pair)
}

func TestMap_ConversionFailure(t *testing.T) {
	m := testMapper(t)
	mapper.CreateMap[store.Order, reviewDto](m)

	dto, err := mapper.Map[reviewDto](m, order(store.StatusInProgress))
	require.NoError(t, err)
	assert.Equal(t, warehouse.ReviewStatusInProgress, dto.Status)

	_, err = mapper.Map[reviewDto](m, order(store.StatusComplete))
	require.ErrorIs(t, err, convert.ErrConversionFailed)

	var convErr *convert.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "Complete", convErr.Value.Name())
	assert.Equal(t, "ReviewStatus", convErr.Target.ID().Name)
}

func TestMap_SkipMember(t *testing.T) {
	var buf bytes.Buffer
	m := testMapper(t,
		mapper.WithFailurePolicy(mapper.SkipMember),
		mapper.WithLogger(zerolog.New(&buf)),
	)
	mapper.CreateMap[store.Order, reviewDto](m)

	dto := reviewDto{ID: 1, Status: warehouse.ReviewStatusClosed}
	require.NoError(t, mapper.MapTo(m, order(store.StatusComplete), &dto))

	assert.Equal(t, reviewDto{ID: 42}, dto)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"member":"Status"`)
	assert.Contains(t, buf.String(), "member skipped")
}

func TestMap_NormalizedMemberName(t *testing.T) {
	m := testMapper(t)
	mapper.CreateMap[legacyOrder, legacyOrderDto](m).
		ForMember("Note", mapper.Ignore())

	dto := legacyOrderDto{Note: []byte("keep")}
	require.NoError(t, mapper.MapTo(m, &legacyOrder{OrderId: 3, Note: "drop"}, &dto))

	assert.Equal(t, int64(3), dto.OrderID)
	assert.Equal(t, []byte("keep"), dto.Note)
}

func TestMap_Errors(t *testing.T) {
	m := testMapper(t)

	_, err := mapper.Map[warehouse.OrderDto](m, order(store.StatusComplete))
	assert.ErrorIs(t, err, mapper.ErrMapNotFound)

	mapper.CreateMap[store.Order, warehouse.OrderDto](m)

	_, err = mapper.Map[warehouse.OrderDto](m, nil)
	assert.ErrorIs(t, err, mapper.ErrNilSource)

	_, err = mapper.Map[warehouse.OrderDto](m, (*store.Order)(nil))
	assert.ErrorIs(t, err, mapper.ErrNilSource)

	assert.ErrorIs(t, mapper.MapTo[warehouse.OrderDto](m, order(1), nil), mapper.ErrNilDestination)

	m.Reset()
	_, err = mapper.Map[warehouse.OrderDto](m, order(store.StatusComplete))
	assert.ErrorIs(t, err, mapper.ErrMapNotFound)
}

func TestMap_ResolverErrors(t *testing.T) {
	tests := []struct {
		name     string
		resolver convert.ValueResolver
		wantErr  error
	}{
		{
			name: "wrong model",
			resolver: convert.Func(func(o warehouse.OrderDto) (warehouse.StatusForDto, error) {
				return warehouse.StatusForDtoComplete, nil
			}),
			wantErr: convert.ErrUnexpectedModel,
		},
		{
			name: "wrong result type",
			resolver: convert.Func(func(o store.Order) (store.Status, error) {
				return o.Status, nil
			}),
			wantErr: mapper.ErrResolvedType,
		},
		{
			name: "resolver failure",
			resolver: convert.Func(func(store.Order) (warehouse.StatusForDto, error) {
				return 0, errors.New("boom")
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMapper(t)
			mapper.CreateMap[store.Order, warehouse.OrderDtoWithOwnStatus](m).
				ForMember("Status", mapper.ResolveUsing(tt.resolver))

			_, err := mapper.Map[warehouse.OrderDtoWithOwnStatus](m, order(store.StatusComplete))
			require.Error(t, err)

			var memberErr *mapper.MemberError
			require.ErrorAs(t, err, &memberErr)
			assert.Equal(t, "Status", memberErr.Member)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestMap_UnregisteredEnum(t *testing.T) {
	m := testMapper(t)
	mapper.CreateMap[store.Order, kindDto](m)

	_, err := mapper.Map[kindDto](m, order(store.StatusComplete))
	assert.ErrorIs(t, err, enum.ErrNotRegistered)
}

func TestMap_UnknownFromMember(t *testing.T) {
	m := testMapper(t)
	mapper.CreateMap[store.Order, warehouse.OrderSummary](m).
		ForMember("Total", mapper.FromMember("Amount"))

	_, err := mapper.Map[warehouse.OrderSummary](m, order(store.StatusComplete))
	assert.ErrorIs(t, err, mapper.ErrUnknownMember)
}

func TestCreateMap_NonStruct(t *testing.T) {
	m := testMapper(t)
	assert.Panics(t, func() { mapper.CreateMap[store.Status, warehouse.StatusForDto](m) })
	assert.Same(t, mapper.CreateMap[store.Order, warehouse.OrderDto](m), mapper.CreateMap[store.Order, warehouse.OrderDto](m))
}

func TestMap_Concurrent(t *testing.T) {
	m := testMapper(t, mapper.WithResolver(convert.NewResolver(convert.WithLogger(zerolog.Nop()))))
	mapper.CreateMap[store.Order, warehouse.OrderDtoWithOwnStatus](m)

	var g errgroup.Group
	for i := range 64 {
		g.Go(func() error {
			status := store.StatusInProgress + store.Status(i%2)
			dto, err := mapper.Map[warehouse.OrderDtoWithOwnStatus](m, order(status))
			if err != nil {
				return err
			}
			if int(dto.Status) != int(status) {
				return errors.New("status mismatch")
			}
			return nil
		})
		if i%16 == 0 {
			g.Go(func() error {
				mapper.CreateMap[store.Order, warehouse.OrderDto](m)
				return nil
			})
		}
	}

	require.NoError(t, g.Wait())
}

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeRows struct{}

func (fakeRows) Close()                                       {}
func (fakeRows) Err() error                                   { return nil }
func (fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (fakeRows) Next() bool                                   { return false }
func (fakeRows) Scan(dest ...any) error                       { return nil }
func (fakeRows) Values() ([]any, error)                       { return nil, nil }
func (fakeRows) RawValues() [][]byte                          { return nil }
func (fakeRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDBPanicsWhenUnset(t *testing.T) {
	db := &FakeDB{}
	ctx := context.Background()
	require.PanicsWithValue(t, "unexpected Exec", func() { db.Exec(ctx, "") })
	require.PanicsWithValue(t, "unexpected Query", func() { db.Query(ctx, "") })
	require.PanicsWithValue(t, "unexpected QueryRow", func() { db.QueryRow(ctx, "") })
	require.PanicsWithValue(t, "unexpected Ping", func() { db.Ping(ctx) })
	require.NotPanics(t, db.Close)
}

func TestFakeDBDelegates(t *testing.T) {
	ctx := context.Background()
	var gotSQL []string
	var gotArgs []any
	closed := false

	db := &FakeDB{
		ExecFn: func(_ context.Context, s string, args ...any) (pgconn.CommandTag, error) {
			gotSQL = append(gotSQL, s)
			gotArgs = append(gotArgs, args...)
			return pgconn.NewCommandTag("DELETE 1"), errors.New("e")
		},
		QueryFn: func(_ context.Context, s string, _ ...any) (pgx.Rows, error) {
			gotSQL = append(gotSQL, s)
			return fakeRows{}, nil
		},
		QueryRowFn: func(_ context.Context, s string, _ ...any) pgx.Row {
			gotSQL = append(gotSQL, s)
			return fakeRows{}
		},
		PingFn:  func(context.Context) error { return nil },
		CloseFn: func() { closed = true },
	}

	tag, err := db.Exec(ctx, "exec", 7, "x")
	require.Error(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())

	_, err = db.Query(ctx, "query")
	require.NoError(t, err)
	require.NotNil(t, db.QueryRow(ctx, "row"))
	require.NoError(t, db.Ping(ctx))
	db.Close()

	require.Equal(t, []string{"exec", "query", "row"}, gotSQL)
	require.Equal(t, []any{7, "x"}, gotArgs)
	require.True(t, closed)
}

package listclient

import (
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/SystemBuilders/ChainList/internal/dlist"
	"github.com/SystemBuilders/ChainList/internal/listservice"
	"github.com/SystemBuilders/ChainList/internal/routing"
	"github.com/gorilla/mux"
	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *SimpleClient {
	t.Helper()
	log := zerolog.New(os.Stdout).With().Logger().Level(zerolog.Disabled)
	ls := listservice.NewSimpleListService(log)
	ts := httptest.NewServer(routing.SetupRouting(ls, mux.NewRouter()))
	t.Cleanup(ts.Close)

	// httptest URLs look like http://127.0.0.1:port.
	sep := strings.LastIndex(ts.URL, ":")
	scfg := listservice.NewSimpleConfig(ts.URL[:sep], ts.URL[sep+1:])
	return NewSimpleClient(scfg)
}

func TestSimpleClient(t *testing.T) {
	sc := newTestClient(t)

	id, err := sc.Create()
	require.NoError(t, err)

	for _, v := range []string{"1", "2", "3", "4", "5", "6"} {
		require.NoError(t, sc.PushTail(id, v))
	}

	t.Run("pop at, push at", func(t *testing.T) {
		got, err := sc.PopAt(id, 2)
		require.NoError(t, err)
		assert.Equal(t, "3", got)

		require.NoError(t, sc.PushAt(id, 2, "56"))

		values, err := sc.Values(id)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "56", "4", "5", "6"}, values)
	})

	t.Run("out of range", func(t *testing.T) {
		err := sc.PushAt(id, 7, "x")
		assert.ErrorIs(t, err, dlist.ErrIndexOutOfRange)

		_, err = sc.PopAt(id, 6)
		assert.ErrorIs(t, err, dlist.ErrIndexOutOfRange)

		size, err := sc.Size(id)
		require.NoError(t, err)
		assert.Equal(t, 6, size)
	})

	t.Run("ends", func(t *testing.T) {
		require.NoError(t, sc.PushHead(id, "0"))

		got, err := sc.ElementAt(id, 0)
		require.NoError(t, err)
		assert.Equal(t, "0", got)

		v, ok, err := sc.PopHead(id)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "0", v)

		v, ok, err = sc.PopTail(id)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "6", v)
	})

	t.Run("clear, pops are absent", func(t *testing.T) {
		require.NoError(t, sc.Clear(id))

		_, ok, err := sc.PopHead(id)
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = sc.PopTail(id)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, sc.Delete(id))

		_, err := sc.Size(id)
		assert.Equal(t, listservice.ErrListDoesntExist, err)
	})
}

func TestSimpleClientUnknownList(t *testing.T) {
	sc := newTestClient(t)

	err := sc.PushTail(ulid.ULID{}, "x")
	assert.Equal(t, listservice.ErrListDoesntExist, err)
}

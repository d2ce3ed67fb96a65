package store_test

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/digitring/ring"
	"github.com/calebcase/digitring/store"
)

func mustRing(t *testing.T, v int64, base int) *ring.Ring {
	t.Helper()

	r, err := ring.NewFromValue(big.NewInt(v), base)
	require.NoError(t, err)

	return r
}

func TestStream(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		buf := &bytes.Buffer{}

		err := store.NewEncoder(buf).Encode(mustRing(t, 13, 16))
		require.NoError(t, err)
		require.Equal(t, "13", buf.String())
	})

	t.Run("encode zero", func(t *testing.T) {
		buf := &bytes.Buffer{}

		err := store.NewEncoder(buf).Encode(ring.New())
		require.NoError(t, err)
		require.Equal(t, "0", buf.String())
	})

	t.Run("decode", func(t *testing.T) {
		r, err := store.NewDecoder(bytes.NewBufferString("13")).Decode()
		require.NoError(t, err)
		require.Equal(t, "13", r.DecimalString())
		require.Equal(t, ring.DefaultBase, r.Base())
		require.Equal(t, "1101", r.BaseString())
	})

	t.Run("decode invalid", func(t *testing.T) {
		_, err := store.NewDecoder(bytes.NewBufferString("-13")).Decode()
		require.Error(t, err)
		require.True(t, store.Error.Has(err))
	})

	t.Run("roundtrip", func(t *testing.T) {
		buf := &bytes.Buffer{}
		orig := mustRing(t, 4220, 16)

		require.NoError(t, store.NewEncoder(buf).Encode(orig))

		r, err := store.NewDecoder(buf).Decode()
		require.NoError(t, err)
		require.True(t, orig.Equal(r))
	})
}

func TestFile(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "number")
		orig := mustRing(t, 982451, 8)

		require.NoError(t, store.Save(path, orig))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "982451", string(data))

		r, err := store.Load(path)
		require.NoError(t, err)
		require.True(t, orig.Equal(r))
		require.Equal(t, ring.DefaultBase, r.Base())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := store.Load(filepath.Join(t.TempDir(), "absent"))
		require.Error(t, err)
		require.True(t, store.Error.Has(err))
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := store.Load(path)
		require.Error(t, err)
	})
}

package localstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSetGetDelete(t *testing.T) {
	st := NewFile(t.TempDir())

	_, ok, err := st.Get("cart")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, st.Set("cart", []byte(`[{"id":1}]`)))

	got, ok, err := st.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":1}]`, string(got))

	require.NoError(t, st.Delete("cart"))
	_, ok, err = st.Get("cart")
	require.NoError(t, err)
	require.False(t, ok)

	// deleting twice is fine
	require.NoError(t, st.Delete("cart"))
}

func TestFileSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, NewFile(dir).Set("token", []byte("abc")))

	got, ok, err := NewFile(dir).Get("token")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc", string(got))
}

func TestFileOverwrite(t *testing.T) {
	st := NewFile(t.TempDir())

	require.NoError(t, st.Set("k", []byte("one")))
	require.NoError(t, st.Set("k", []byte("two")))

	got, _, err := st.Get("k")
	require.NoError(t, err)
	require.Equal(t, "two", string(got))
}

func TestSanitizeKey(t *testing.T) {
	require.Equal(t, "a-b_c", sanitizeKey("a-b_c"))
	require.Equal(t, "___etc_passwd", sanitizeKey("../etc/passwd"))
	require.Equal(t, "_", sanitizeKey(""))
}

func TestMemoryIsolation(t *testing.T) {
	st := NewMemory()
	val := []byte("orig")
	require.NoError(t, st.Set("k", val))

	val[0] = 'X'
	got, _, err := st.Get("k")
	require.NoError(t, err)
	require.Equal(t, "orig", string(got))
}

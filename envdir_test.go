package s6ctl

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvStoreRoundTrip(t *testing.T) {
	store := &EnvStore{Dir: t.TempDir(), Runner: &ExecRunner{}}

	require.NoError(t, store.Add("FOO", "bar"))

	value, err := store.Get("FOO")
	require.NoError(t, err)
	require.Equal(t, "bar", value)

	// Values are stored with exactly one trailing newline.
	data, err := os.ReadFile(filepath.Join(store.Dir, "FOO"))
	require.NoError(t, err)
	require.Equal(t, "bar\n", string(data))

	names, err := store.List()
	require.NoError(t, err)
	require.Equal(t, []string{"FOO"}, names)

	require.NoError(t, store.Del("FOO"))

	names, err = store.List()
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestEnvStoreOverwrite(t *testing.T) {
	store := &EnvStore{Dir: t.TempDir(), Runner: &ExecRunner{}}

	require.NoError(t, store.Add("FOO", "one"))
	require.NoError(t, store.Add("FOO", "two"))

	value, err := store.Get("FOO")
	require.NoError(t, err)
	require.Equal(t, "two", value)
}

func TestEnvStoreRequiresDirectory(t *testing.T) {
	store := &EnvStore{Dir: filepath.Join(t.TempDir(), "missing"), Runner: &ExecRunner{}}

	require.ErrorIs(t, store.Add("FOO", "bar"), ErrNoDir)
	require.ErrorIs(t, store.Del("FOO"), ErrNoDir)
	_, err := store.List()
	require.ErrorIs(t, err, ErrNoDir)
	_, err = store.Get("FOO")
	require.ErrorIs(t, err, ErrNoDir)
}

func TestEnvStoreDelMissingVariable(t *testing.T) {
	store := &EnvStore{Dir: t.TempDir(), Runner: &ExecRunner{}}

	// Removal of a missing entry surfaces the remove primitive's error.
	err := store.Del("GHOST")
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestEnvStoreListSkipsNonRegular(t *testing.T) {
	store := &EnvStore{Dir: t.TempDir(), Runner: &ExecRunner{}}
	require.NoError(t, store.Add("FOO", "bar"))
	require.NoError(t, os.MkdirAll(filepath.Join(store.Dir, "subdir"), 0o755))

	names, err := store.List()
	require.NoError(t, err)
	require.Equal(t, []string{"FOO"}, names)
}

func TestEnvStoreDryRun(t *testing.T) {
	var buf bytes.Buffer
	store := &EnvStore{Dir: t.TempDir(), Runner: &DryRunner{W: &buf}}

	require.NoError(t, store.Add("FOO", "bar baz"))

	path := filepath.Join(store.Dir, "FOO")
	require.Equal(t, "echo 'bar baz' > "+path+"\n", buf.String())

	// The store itself was not touched.
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	buf.Reset()
	require.NoError(t, store.Del("FOO"))
	require.Equal(t, "rm "+path+"\n", buf.String())
}

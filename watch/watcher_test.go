package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOnMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope", "data.csv"))
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\r\n"), 0o644))

	fw, err := New(path)
	require.NoError(t, err)
	fw.Start()
	assert.NoError(t, fw.Stop())
}

func TestChangeFiresCallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\r\n"), 0o644))

	fw, err := New(path)
	require.NoError(t, err)
	defer fw.Stop()

	fired := make(chan string, 1)
	fw.OnChange(func(p string) error {
		select {
		case fired <- p:
		default:
		}
		return nil
	})
	fw.Start()

	require.NoError(t, os.WriteFile(path, []byte("a,b\r\nc,d\r\n"), 0o644))

	select {
	case p := <-fired:
		assert.Equal(t, path, p)
	case <-time.After(5 * time.Second):
		t.Fatal("callback did not fire after file change")
	}
}

func TestUnrelatedFileIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\r\n"), 0o644))

	fw, err := New(path)
	require.NoError(t, err)
	defer fw.Stop()

	fired := make(chan struct{}, 1)
	fw.OnChange(func(string) error {
		select {
		case fired <- struct{}{}:
		default:
		}
		return nil
	})
	fw.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x\r\n"), 0o644))

	select {
	case <-fired:
		t.Fatal("callback fired for an unrelated file")
	case <-time.After(1 * time.Second):
	}
}

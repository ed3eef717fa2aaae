package xconf

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadOnChange(t *testing.T) {
	path := writeConfig(t, "app.yaml", "cache:\n  max_entries: 10\n")

	l, err := Load(path)
	require.NoError(t, err)

	updated := make(chan Settings, 4)
	w, err := Watch(l, func(s Settings, err error) {
		if err == nil {
			updated <- s
		}
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	w.StartAsync()
	// 给监视循环一点启动时间，避免事件在 Add 之后、循环之前丢失
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("cache:\n  max_entries: 99\n"), 0o600))

	select {
	case s := <-updated:
		assert.Equal(t, 99, s.Cache.MaxEntries)
	case <-time.After(3 * time.Second):
		t.Fatal("未在超时时间内收到重载回调")
	}
	assert.Equal(t, 99, l.Settings().Cache.MaxEntries)
}

func TestWatch_CallbackOnReloadError(t *testing.T) {
	path := writeConfig(t, "app.yaml", "cache:\n  max_entries: 10\n")

	l, err := Load(path)
	require.NoError(t, err)

	failed := make(chan error, 4)
	w, err := Watch(l, func(_ Settings, err error) {
		if err != nil {
			failed <- err
		}
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	w.StartAsync()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("cache:\n  strategy: bogus\n"), 0o600))

	select {
	case err := <-failed:
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	case <-time.After(3 * time.Second):
		t.Fatal("未在超时时间内收到失败回调")
	}
	// 重载失败时旧快照保留
	assert.Equal(t, 10, l.Settings().Cache.MaxEntries)
}

func TestWatch_BytesLoaderUnsupported(t *testing.T) {
	l, err := LoadBytes(nil, FormatYAML)
	require.NoError(t, err)

	_, err = Watch(l, nil)
	assert.ErrorIs(t, err, ErrWatchUnsupported)
}

func TestWatcher_StopIdempotent(t *testing.T) {
	path := writeConfig(t, "app.yaml", "cache:\n  max_entries: 10\n")

	l, err := Load(path)
	require.NoError(t, err)

	w, err := Watch(l, nil)
	require.NoError(t, err)

	w.StartAsync()
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestWatcher_StopBeforeStart(t *testing.T) {
	path := writeConfig(t, "app.yaml", "cache:\n  max_entries: 10\n")

	l, err := Load(path)
	require.NoError(t, err)

	w, err := Watch(l, nil)
	require.NoError(t, err)
	require.NoError(t, w.Stop())
}

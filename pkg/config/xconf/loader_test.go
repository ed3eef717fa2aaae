package xconf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig 在临时目录中写入配置文件并返回路径。
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "app.yaml", `
cache:
  max_entries: 500
  max_memory_bytes: 1048576
  strategy: lfu
  default_ttl: 5m
  sweep_interval: 30s
pool:
  max_idle: 16
`)

	l, err := Load(path)
	require.NoError(t, err)

	s := l.Settings()
	assert.Equal(t, 500, s.Cache.MaxEntries)
	assert.Equal(t, int64(1048576), s.Cache.MaxMemoryBytes)
	assert.Equal(t, "lfu", s.Cache.Strategy)
	assert.Equal(t, 5*time.Minute, s.Cache.DefaultTTL)
	assert.Equal(t, 30*time.Second, s.Cache.SweepInterval)
	assert.Equal(t, 16, s.Pool.MaxIdle)
	assert.Equal(t, path, l.Path())
	assert.Equal(t, FormatYAML, l.Format())
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "app.json", `{
  "cache": {"max_entries": 64, "strategy": "fifo"},
  "pool": {"max_idle": 8}
}`)

	l, err := Load(path)
	require.NoError(t, err)

	s := l.Settings()
	assert.Equal(t, 64, s.Cache.MaxEntries)
	assert.Equal(t, "fifo", s.Cache.Strategy)
	assert.Equal(t, 8, s.Pool.MaxIdle)
	assert.Equal(t, FormatJSON, l.Format())
}

func TestLoad_DefaultsMerged(t *testing.T) {
	// 只覆盖一个键，其余保留默认值
	path := writeConfig(t, "app.yaml", `
cache:
  strategy: fifo
`)

	l, err := Load(path)
	require.NoError(t, err)

	def := DefaultSettings()
	s := l.Settings()
	assert.Equal(t, "fifo", s.Cache.Strategy)
	assert.Equal(t, def.Cache.MaxEntries, s.Cache.MaxEntries)
	assert.Equal(t, def.Pool.MaxIdle, s.Pool.MaxIdle)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := Load("")
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load("config.toml")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, ErrLoadFailed)
	})

	t.Run("syntax error", func(t *testing.T) {
		path := writeConfig(t, "bad.yaml", "cache: [unclosed")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrParseFailed)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		path := writeConfig(t, "app.yaml", "cache:\n  strategy: random\n")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeConfig(t, "app.yaml", "cache:\n  max_entries: -1\n")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidSettings)
	})
}

func TestLoadBytes(t *testing.T) {
	t.Run("basic load", func(t *testing.T) {
		l, err := LoadBytes([]byte(`{"cache": {"max_entries": 9}}`), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, 9, l.Settings().Cache.MaxEntries)
		assert.Empty(t, l.Path())
	})

	t.Run("empty data yields defaults", func(t *testing.T) {
		l, err := LoadBytes(nil, FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, DefaultSettings(), l.Settings())
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := LoadBytes([]byte("{}"), Format("toml"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("reload unsupported", func(t *testing.T) {
		l, err := LoadBytes(nil, FormatYAML)
		require.NoError(t, err)
		assert.ErrorIs(t, l.Reload(), ErrReloadUnsupported)
	})
}

func TestLoader_Reload(t *testing.T) {
	path := writeConfig(t, "app.yaml", "cache:\n  max_entries: 10\n")

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, l.Settings().Cache.MaxEntries)

	require.NoError(t, os.WriteFile(path, []byte("cache:\n  max_entries: 20\n"), 0o600))
	require.NoError(t, l.Reload())
	assert.Equal(t, 20, l.Settings().Cache.MaxEntries)
}

func TestLoader_ReloadKeepsOldSnapshotOnError(t *testing.T) {
	path := writeConfig(t, "app.yaml", "cache:\n  max_entries: 10\n")

	l, err := Load(path)
	require.NoError(t, err)

	// 写入非法内容后重载失败，旧快照必须保留
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  strategy: bogus\n"), 0o600))
	assert.ErrorIs(t, l.Reload(), ErrUnknownStrategy)
	assert.Equal(t, 10, l.Settings().Cache.MaxEntries)
}

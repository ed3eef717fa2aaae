package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式（推荐用于 K8s ConfigMap）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Loader 加载并持有类型化的 Settings 快照。
// 所有方法并发安全。
type Loader struct {
	mu       sync.RWMutex
	settings Settings
	path     string
	format   Format
	isBytes  bool // 标记是否从字节数据创建
}

// Load 从文件路径创建 Loader。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json），
// 解析和校验失败时返回错误，不产生半加载状态。
func Load(path string) (*Loader, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	settings, err := loadFile(path, format)
	if err != nil {
		return nil, err
	}

	return &Loader{
		settings: settings,
		path:     path,
		format:   format,
	}, nil
}

// LoadBytes 从字节数据创建 Loader。
// 需要显式指定格式，适用于 K8s ConfigMap 等场景。
// 空数据产生全默认值的 Settings。
func LoadBytes(data []byte, format Format) (*Loader, error) {
	if !isValidFormat(format) {
		return nil, ErrUnsupportedFormat
	}

	settings, err := parseSettings(data, format)
	if err != nil {
		return nil, err
	}

	return &Loader{
		settings: settings,
		format:   format,
		isBytes:  true,
	}, nil
}

// Settings 返回当前配置快照（值拷贝）。
func (l *Loader) Settings() Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.settings
}

// Reload 重新读取并解析配置文件。
// 解析或校验失败时保留旧快照并返回错误。
// 仅对从文件创建的 Loader 有效。
func (l *Loader) Reload() error {
	if l.isBytes {
		return ErrReloadUnsupported
	}

	settings, err := loadFile(l.path, l.format)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.settings = settings
	l.mu.Unlock()

	return nil
}

// Path 返回配置文件路径。
// 从字节数据创建的 Loader 返回空字符串。
func (l *Loader) Path() string {
	return l.path
}

// Format 返回配置格式。
func (l *Loader) Format() Format {
	return l.format
}

// =============================================================================
// 内部辅助函数
// =============================================================================

// loadFile 读取文件并解析为 Settings。
func loadFile(path string, format Format) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return parseSettings(data, format)
}

// parseSettings 在默认值之上合并数据并校验。
func parseSettings(data []byte, format Format) (Settings, error) {
	settings := DefaultSettings()

	if len(data) > 0 {
		k := koanf.New(".")
		parser, err := parserFor(format)
		if err != nil {
			return Settings{}, err
		}
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return Settings{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
		if err := k.UnmarshalWithConf("", &settings, koanf.UnmarshalConf{
			Tag: "koanf",
		}); err != nil {
			return Settings{}, fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
		}
	}

	if err := settings.validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}

// isValidFormat 检查格式是否有效。
func isValidFormat(format Format) bool {
	switch format {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// parserFor 返回格式对应的 koanf 解析器。
func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

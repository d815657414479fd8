package arabify

import (
	"sync"

	"github.com/riverfjs/arabify-go/internal/types"
)

// 导出类型别名
type RenderConfig = types.RenderConfig
type Strategy = types.Strategy
type MarkerPolicy = types.MarkerPolicy

const (
	CharacterScan = types.CharacterScan
	TokenScan     = types.TokenScan
	SentenceScan  = types.SentenceScan

	MarkerLiteral = types.MarkerLiteral
	MarkerSwallow = types.MarkerSwallow
)

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
// Callers must not modify it; use options or a copy instead.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// ParseStrategy maps "character", "token" or "sentence" to a Strategy.
func ParseStrategy(name string) (Strategy, bool) {
	return types.ParseStrategy(name)
}

package bytepatch

import "github.com/dacharyc/bytepatch/bitap"

// wordBits is the bitap word width the patch-apply layer is hard-coded to
// (§4.3.2, §9 "Word width"). addContext, splitMax and Apply (which also
// caps the padding length with it) all use this constant; widening it requires widening bitap.MaxPattern too.
const wordBits = bitap.MaxPattern

// patchConfig holds the resolved settings for patch construction and
// application.
type patchConfig struct {
	bitapConfig     bitap.Config
	margin          int
	deleteThreshold float64
	paddingLength   int
}

func defaultPatchConfig() *patchConfig {
	return &patchConfig{
		bitapConfig:     bitap.DefaultConfig(),
		margin:          4,
		deleteThreshold: 0.5,
		paddingLength:   4,
	}
}

// PatchOption configures patch construction and application.
type PatchOption func(*patchConfig)

// WithBitapConfig overrides the fuzzy-match distance/threshold used when
// applying a patch.
func WithBitapConfig(cfg bitap.Config) PatchOption {
	return func(c *patchConfig) {
		c.bitapConfig = cfg
	}
}

// WithPatchMargin sets the context margin (bytes of surrounding EQUAL kept
// around each edit). Clamped to wordBits-1 by splitMax regardless of what's
// requested here (§4.3.3).
func WithPatchMargin(margin int) PatchOption {
	return func(c *patchConfig) {
		c.margin = margin
	}
}

// WithDeleteThreshold sets the maximum acceptable levenshtein/|left| ratio
// before an imperfect match is rejected (§4.3.6).
func WithDeleteThreshold(threshold float64) PatchOption {
	return func(c *patchConfig) {
		c.deleteThreshold = threshold
	}
}

// WithPaddingLength sets the sentinel padding width Apply surrounds the
// target buffer with (§4.3.4). Must stay below wordBits.
func WithPaddingLength(n int) PatchOption {
	return func(c *patchConfig) {
		c.paddingLength = n
	}
}

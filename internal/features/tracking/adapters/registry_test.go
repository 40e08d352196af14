package adapter

import (
	"testing"

	"parcel-tracker/internal/core/config"

	"github.com/stretchr/testify/assert"
)

func names(cfg config.BackendsConfig) ([]string, []bool, []string) {
	backends, unknown := NewBackends(cfg, nil)
	var n []string
	var configured []bool
	for _, b := range backends {
		n = append(n, b.Name())
		configured = append(configured, b.Configured())
	}
	return n, configured, unknown
}

func TestNewBackends_Order(t *testing.T) {
	n, configured, unknown := names(config.BackendsConfig{
		Order:            "openai, PERPLEXITY,claude,gemini",
		PerplexityAPIKey: "pplx",
	})

	assert.Equal(t, []string{"openai", "perplexity", "gemini"}, n)
	assert.Equal(t, []bool{false, true, false}, configured)
	assert.Equal(t, []string{"claude"}, unknown)
}

func TestNewBackends_Empty(t *testing.T) {
	n, _, unknown := names(config.BackendsConfig{})
	assert.Empty(t, n)
	assert.Empty(t, unknown)
}

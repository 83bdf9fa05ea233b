package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBackendURLPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		override string
		envURL   string
		envHost  string
		want     string
	}{
		{"override wins", "http://gpu-box:9000", "http://env:1234", "env-host", "http://gpu-box:9000"},
		{"override trailing slash trimmed", "http://gpu-box:9000/", "", "", "http://gpu-box:9000"},
		{"full url env", "", "http://env:1234", "env-host", "http://env:1234"},
		{"host-only env", "", "", "gpu-box", "http://gpu-box:11434"},
		{"host-only env with port", "", "", "gpu-box:9000", "http://gpu-box:9000"},
		{"host-only env with scheme", "", "", "https://gpu-box", "https://gpu-box:11434"},
		{"default", "", "", "", "http://localhost:11434"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveBackendURL(tt.override, tt.envURL, tt.envHost))
		})
	}
}

func TestNormalizeHost(t *testing.T) {
	assert.Equal(t, "http://gpu-box:11434", normalizeHost("gpu-box"))
	assert.Equal(t, "http://gpu-box:11434", normalizeHost("gpu-box/"))
	assert.Equal(t, "http://gpu-box:8080", normalizeHost("http://gpu-box:8080"))
	// 解析不出主机名时退回默认地址
	assert.Equal(t, "http://localhost:11434", normalizeHost("://"))
}

func TestResolveModelPrecedence(t *testing.T) {
	assert.Equal(t, "qwen2", resolveModel("qwen2", "mistral"))
	assert.Equal(t, "mistral", resolveModel("", "mistral"))
	assert.Equal(t, "llama3", resolveModel("", ""))
	assert.Equal(t, "llama3", resolveModel("  ", " "))
}

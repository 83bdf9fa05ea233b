package config

import (
	"net/url"
	"os"
	"strings"
	"sync"
)

// 模型后端地址与模型名的解析常量。
const (
	defaultBackendURL  = "http://localhost:11434"
	defaultBackendPort = "11434"
	defaultModelName   = "llama3"

	envBackendURL  = "OLLAMA_URL"
	envBackendHost = "OLLAMA_HOST"
	envModelName   = "OLLAMA_MODEL"
)

var (
	backendOverride string
	modelOverride   string

	backendOnce sync.Once
	backendURL  string

	modelOnce sync.Once
	modelName string
)

// SetBackendOverride 设置启动参数指定的后端地址，需在首次解析前调用。
func SetBackendOverride(u string) {
	backendOverride = u
}

// SetModelOverride 设置启动参数指定的模型名，需在首次解析前调用。
func SetModelOverride(m string) {
	modelOverride = m
}

// ResolveBackendURL 解析模型后端地址并缓存，进程生命周期内只解析一次。
// 优先级：启动参数 > 配置文件 > OLLAMA_URL > OLLAMA_HOST（自动补全协议和端口）> 内置默认值。
func ResolveBackendURL() string {
	backendOnce.Do(func() {
		override := backendOverride
		if override == "" {
			override = Conf.LLM.BaseURL
		}
		backendURL = resolveBackendURL(override, os.Getenv(envBackendURL), os.Getenv(envBackendHost))
	})
	return backendURL
}

// ResolveModel 解析模型名并缓存，优先级：启动参数 > 配置文件 > OLLAMA_MODEL > 内置默认值。
func ResolveModel() string {
	modelOnce.Do(func() {
		override := modelOverride
		if override == "" {
			override = Conf.LLM.Model
		}
		modelName = resolveModel(override, os.Getenv(envModelName))
	})
	return modelName
}

func resolveBackendURL(override, envURL, envHost string) string {
	if v := strings.TrimSpace(override); v != "" {
		return strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(envURL); v != "" {
		return strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(envHost); v != "" {
		return normalizeHost(v)
	}
	return defaultBackendURL
}

func resolveModel(override, envModel string) string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	if v := strings.TrimSpace(envModel); v != "" {
		return v
	}
	return defaultModelName
}

// normalizeHost 将仅含主机名的值规范化为完整 URL：缺协议补 http://，缺端口补默认端口。
func normalizeHost(host string) string {
	h := strings.TrimRight(host, "/")
	if !strings.Contains(h, "://") {
		h = "http://" + h
	}
	u, err := url.Parse(h)
	if err != nil || u.Host == "" {
		return defaultBackendURL
	}
	if u.Port() == "" {
		u.Host = u.Host + ":" + defaultBackendPort
	}
	return u.String()
}

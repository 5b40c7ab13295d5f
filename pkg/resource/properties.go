package resource

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Init loads application properties from a YAML file and resolves ${ENV:default} placeholders.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	for key, value := range resolved {
		v.Set(key, value)
	}

	properties = v
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if envPattern.MatchString(v) {
				result[fullKey] = resolveEnvVariables(v)
			}
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		}
	}
}

// resolveEnvVariables replaces every ${NAME} or ${NAME:default} occurrence in value.
func resolveEnvVariables(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

// Set overrides a property at runtime.
func Set(key string, value any) {
	properties.Set(key, value)
}

func Get(key string) any {
	return properties.Get(key)
}

func IsSet(key string) bool {
	return properties.IsSet(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

// GetStringOrDefault returns the trimmed value of key or defaultValue when it is blank.
func GetStringOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(properties.GetString(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

// GetDurationOrDefault returns the duration stored under key or defaultValue when it is unset or not positive.
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := properties.GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

// GetIntOrDefault returns the int stored under key or defaultValue when the key is unset.
func GetIntOrDefault(key string, defaultValue int) int {
	if !properties.IsSet(key) || properties.GetString(key) == "" {
		return defaultValue
	}
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}

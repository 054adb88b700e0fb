package utils

import (
	"log"
	"os"
	"strconv"
)

func getEnv(key string, defaultValue interface{}) interface{} {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}

	switch defaultValue.(type) {
	case string:
		return value
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("Error parsing %s: %v, will use default value", key, err)
			return defaultValue
		}
		return intValue
	default:
		return defaultValue
	}
}

func GetEnvString(key, defaultValue string) string {
	return getEnv(key, defaultValue).(string)
}

func GetEnvInt(key string, defaultValue int) int {
	return getEnv(key, defaultValue).(int)
}

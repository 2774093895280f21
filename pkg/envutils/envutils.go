package envutils

import (
	"log"
	"os"
	"strconv"
)

func Env(variableName, defaultValue string) string {
	if variable := os.Getenv(variableName); variable != "" {
		log.Printf("[%s]: %s", variableName, variable)
		return variable
	}
	log.Printf("[%s_DEFAULT]: %s", variableName, defaultValue)
	return defaultValue
}

func EnvInt(variableName string, defaultValue int) int {
	variable := os.Getenv(variableName)
	if variable == "" {
		log.Printf("[%s_DEFAULT]: %d", variableName, defaultValue)
		return defaultValue
	}

	value, err := strconv.Atoi(variable)
	if err != nil {
		log.Printf("[%s_DEFAULT]: %d (unparsable %q)", variableName, defaultValue, variable)
		return defaultValue
	}

	log.Printf("[%s]: %d", variableName, value)
	return value
}

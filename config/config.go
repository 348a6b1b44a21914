package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/juho05/diacritics/mappings"
	"github.com/juho05/log"
)

type environment map[string]string

type Config struct {
	ListenAddr      string
	LogLevel        log.Severity
	LogFile         *os.File
	Languages       []string
	CustomSets      []string
	CustomSetsFirst bool
	ComposeInput    bool
	MaxInputSize    int64
	DBHost          string
	DBPort          int
	DBUser          string
	DBPassword      string
	DBName          string
	AutoMigrate     bool
}

// DBEnabled reports whether a database is configured.
// Without a database only the built-in languages are available.
func (c Config) DBEnabled() bool {
	return c.DBHost != ""
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// Load loads the configuration from environment variables into a Config.
// env should be of the same format as os.Environ()
func Load(environ []string) (Config, []error) {
	env := make(environment, len(environ))
	for _, e := range environ {
		parts := strings.SplitN(e, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("invalid environment variable format: %s", e)
		}
		env[parts[0]] = parts[1]
	}

	var errors []error

	var config Config
	var err error

	config.ListenAddr = loadListenAddr(env)

	config.LogLevel, err = loadLogLevel(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.LogFile, err = loadLogFile(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.Languages, err = loadLanguages(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.CustomSets = loadCustomSets(env)

	config.CustomSetsFirst, err = loadCustomSetsFirst(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.ComposeInput, err = loadComposeInput(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.MaxInputSize, err = loadMaxInputSize(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.DBHost = loadDBHost(env)
	if config.DBEnabled() {
		config.DBPort, err = loadDBPort(env)
		if err != nil {
			errors = append(errors, err)
		}

		config.DBUser, err = loadDBUser(env)
		if err != nil {
			errors = append(errors, err)
		}

		config.DBPassword, err = loadDBPassword(env)
		if err != nil {
			errors = append(errors, err)
		}

		config.DBName, err = loadDBName(env)
		if err != nil {
			errors = append(errors, err)
		}

		config.AutoMigrate, err = loadAutoMigrate(env)
		if err != nil {
			errors = append(errors, err)
		}
	} else if len(config.CustomSets) > 0 {
		errors = append(errors, newError("CUSTOM_SETS", "requires a database (DB_HOST)"))
	}

	return config, errors
}

func loadListenAddr(env environment) string {
	return optionalString(env, "LISTEN_ADDR", "0.0.0.0:8080")
}

func loadLogLevel(env environment) (log.Severity, error) {
	key := "LOG_LEVEL"
	def := log.INFO
	logLevelStr := env[key]
	if logLevelStr == "" {
		return def, nil
	}
	level, err := strconv.Atoi(logLevelStr)
	if err != nil {
		return def, newError(key, "invalid log level: must be an integer")
	}
	if level < int(log.NONE) || level > int(log.TRACE) {
		return def, newError(key, "invalid log level: valid values: 0 (none), 1 (fatal), 2 (error), 3 (warning), 4 (info), 5 (trace)")
	}
	return log.Severity(level), nil
}

// FIXME config should not be responsible for opening log file
func loadLogFile(env environment) (*os.File, error) {
	key := "LOG_FILE"
	def := os.Stderr
	if env[key] == "" {
		return def, nil
	}
	appnd, _ := strconv.ParseBool(env["LOG_APPEND"])
	if appnd {
		file, err := os.OpenFile(env[key], os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return def, newError(key, fmt.Sprintf("failed to open log file (append): %s", err))
		}
		return file, nil
	}
	file, err := os.Create(env[key])
	if err != nil {
		return def, newError(key, fmt.Sprintf("failed to open log file: %s", err))
	}
	return file, nil
}

func loadLanguages(env environment) ([]string, error) {
	key := "LANGUAGES"
	list := optionalStringList(env, key, mappings.Names())
	for i := range list {
		list[i] = strings.ToLower(list[i])
		if _, ok := mappings.ByName(list[i]); !ok {
			return nil, newError(key, fmt.Sprintf("unknown language %q (valid: %s)", list[i], strings.Join(mappings.Names(), ", ")))
		}
	}
	return list, nil
}

func loadCustomSets(env environment) []string {
	return optionalStringList(env, "CUSTOM_SETS", make([]string, 0))
}

func loadCustomSetsFirst(env environment) (bool, error) {
	return boolean(env, "CUSTOM_SETS_FIRST", true)
}

func loadComposeInput(env environment) (bool, error) {
	return boolean(env, "COMPOSE_INPUT", true)
}

func loadMaxInputSize(env environment) (int64, error) {
	key := "MAX_INPUT_SIZE"
	str := env[key]
	if str == "" {
		return 1 << 20, nil
	}
	size, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, newError(key, "must be an integer")
	}
	if size <= 0 {
		return 0, newError(key, "must be greater than 0")
	}
	return size, nil
}

func loadDBHost(env environment) string {
	return optionalString(env, "DB_HOST", "")
}

func loadDBPort(env environment) (int, error) {
	key := "DB_PORT"
	if env[key] == "" {
		return 5432, nil
	}
	return requiredInt(env, key)
}

func loadDBUser(env environment) (string, error) {
	return requiredString(env, "DB_USER")
}

func loadDBPassword(env environment) (string, error) {
	return requiredString(env, "DB_PASSWORD")
}

func loadDBName(env environment) (string, error) {
	return requiredString(env, "DB_NAME")
}

func loadAutoMigrate(env environment) (bool, error) {
	return boolean(env, "AUTO_MIGRATE", true)
}

func optionalString(env environment, key, def string) string {
	str := env[key]
	if str == "" {
		return def
	}
	return str
}

func optionalStringList(env environment, key string, def []string) []string {
	str, ok := env[key]
	if !ok {
		return def
	}
	if str == "" {
		return make([]string, 0)
	}
	list := strings.Split(str, ",")
	newList := make([]string, 0, len(list))
	for _, item := range list {
		item = strings.TrimSpace(item)
		if item != "" {
			newList = append(newList, item)
		}
	}
	return newList
}

func requiredString(env environment, key string) (string, error) {
	str := env[key]
	if str == "" {
		return "", newError(key, "must not be empty")
	}
	return str, nil
}

func requiredInt(env environment, key string) (int, error) {
	str := env[key]
	if str == "" {
		return 0, newError(key, "must not be empty")
	}
	i, err := strconv.Atoi(str)
	if err != nil {
		return 0, newError(key, "must be an integer")
	}
	return i, nil
}

func boolean(env environment, key string, def bool) (bool, error) {
	str := env[key]
	if str == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(str)
	if err != nil {
		return false, newError(key, "must be a boolean")
	}
	return b, nil
}

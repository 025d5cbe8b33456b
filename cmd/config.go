package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"doccov.dev/pkg/doccov/internal/adapter"
	"doccov.dev/pkg/doccov/internal/domain"
	m "doccov.dev/pkg/doccov/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "doccov"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	excludeFlagName     = "exclude"
	policyFlagName      = "policy"
	runParallelFlagName = "parallel"
	verboseFlagName     = "verbose"
	metricsFlagName     = "metrics-file"

	verboseConfigKey      = "verbose"
	excludeConfigKey      = "paths.exclude"
	excludeDirsConfigKey  = "paths.exclude_dirs"
	extensionsConfigKey   = "source.extensions"
	languageConfigKey     = "source.language"
	runParallelConfigKey  = "run.parallel"
	lowThresholdConfigKey = "report.low_threshold"
	metricsConfigKey      = "metrics.textfile"
	spillDirConfigKey     = "run.spill_dir"

	projectMarkersKey = "project.markers"
	projectNameKey    = "project.name"

	scanAccessModifiersKey   = "scan.access_modifiers"
	scanTypeModifiersKey     = "scan.type_modifiers"
	scanTypeKeywordsKey      = "scan.type_keywords"
	scanFunctionModifiersKey = "scan.function_modifiers"
	scanFunctionKeywordsKey  = "scan.function_keywords"
	scanPropertyModifiersKey = "scan.property_modifiers"
	scanPropertyKeywordsKey  = "scan.property_keywords"

	associatorPolicyKey             = "associator.policy"
	associatorMaxLookbackKey        = "associator.max_lookback"
	associatorWindowKey             = "associator.window"
	associatorDocPrefixesKey        = "associator.doc_prefixes"
	associatorCommentPrefixesKey    = "associator.comment_prefixes"
	associatorAnnotationPrefixesKey = "associator.annotation_prefixes"

	defaultReportsDir   = ".doccov-reports"
	defaultRunParallel  = 4
	defaultLowThreshold = 20.0
	defaultLanguage     = "swift"

	envPrefix = "DOCCOV"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".doccov.log"
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	defaultExtensions  = []string{".swift"}
	defaultExcludeDirs = []string{"Preview Content", "Tests", "Test Resources", "Previews", ".git"}
)

var globalLogger *slog.Logger

// configErr holds the failure to read an existing config file. The root
// command reports it once logging is set up.
var configErr error

func init() {
	configureViper(viper.GetViper())
	setDefaults()

	configErr = readConfigFile(viper.GetViper())
}

func configureViper(v *viper.Viper) {
	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configFolderPath)
	v.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
}

// readConfigFile loads doccov.yaml when present. A missing file is not an error.
func readConfigFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
}

func setDefaults() {
	scan := domain.DefaultScanConfig()
	association := domain.DefaultAssociationConfig()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(verboseConfigKey, false)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(excludeDirsConfigKey, defaultExcludeDirs)
	viper.SetDefault(extensionsConfigKey, defaultExtensions)
	viper.SetDefault(languageConfigKey, defaultLanguage)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(spillDirConfigKey, "")
	viper.SetDefault(lowThresholdConfigKey, defaultLowThreshold)
	viper.SetDefault(metricsConfigKey, "")
	viper.SetDefault(projectMarkersKey, adapter.DefaultProjectMarkers)
	viper.SetDefault(projectNameKey, "")

	viper.SetDefault(scanAccessModifiersKey, scan.AccessModifiers)
	viper.SetDefault(scanTypeModifiersKey, scan.TypeModifiers)
	viper.SetDefault(scanTypeKeywordsKey, scan.TypeKeywords)
	viper.SetDefault(scanFunctionModifiersKey, scan.FunctionModifiers)
	viper.SetDefault(scanFunctionKeywordsKey, scan.FunctionKeywords)
	viper.SetDefault(scanPropertyModifiersKey, scan.PropertyModifiers)
	viper.SetDefault(scanPropertyKeywordsKey, scan.PropertyKeywords)

	viper.SetDefault(associatorPolicyKey, string(association.Policy))
	viper.SetDefault(associatorMaxLookbackKey, association.MaxLookback)
	viper.SetDefault(associatorWindowKey, association.Window)
	viper.SetDefault(associatorDocPrefixesKey, association.DocPrefixes)
	viper.SetDefault(associatorCommentPrefixesKey, association.CommentPrefixes)
	viper.SetDefault(associatorAnnotationPrefixesKey, association.AnnotationPrefixes)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

func scanConfigFromViper() domain.ScanConfig {
	return domain.ScanConfig{
		AccessModifiers:   viper.GetStringSlice(scanAccessModifiersKey),
		TypeModifiers:     viper.GetStringSlice(scanTypeModifiersKey),
		TypeKeywords:      viper.GetStringSlice(scanTypeKeywordsKey),
		FunctionModifiers: viper.GetStringSlice(scanFunctionModifiersKey),
		FunctionKeywords:  viper.GetStringSlice(scanFunctionKeywordsKey),
		PropertyModifiers: viper.GetStringSlice(scanPropertyModifiersKey),
		PropertyKeywords:  viper.GetStringSlice(scanPropertyKeywordsKey),
	}
}

func associationConfigFromViper() domain.AssociationConfig {
	return domain.AssociationConfig{
		Policy:             domain.Policy(strings.ToLower(strings.TrimSpace(viper.GetString(associatorPolicyKey)))),
		DocPrefixes:        viper.GetStringSlice(associatorDocPrefixesKey),
		CommentPrefixes:    viper.GetStringSlice(associatorCommentPrefixesKey),
		AnnotationPrefixes: viper.GetStringSlice(associatorAnnotationPrefixesKey),
		MaxLookback:        viper.GetInt(associatorMaxLookbackKey),
		Window:             viper.GetInt(associatorWindowKey),
	}
}

func workflowConfigFromViper() domain.WorkflowConfig {
	return domain.WorkflowConfig{
		OutputDir:    m.Path(viper.GetString(outputFlagName)),
		Extensions:   viper.GetStringSlice(extensionsConfigKey),
		ExcludeDirs:  viper.GetStringSlice(excludeDirsConfigKey),
		Language:     viper.GetString(languageConfigKey),
		LowThreshold: viper.GetFloat64(lowThresholdConfigKey),
		MetricsFile:  m.Path(viper.GetString(metricsConfigKey)),
		SpillDir:     viper.GetString(spillDirConfigKey),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

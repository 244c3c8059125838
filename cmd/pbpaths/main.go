package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/pbpaths/internal/config"
	"github.com/eugenenazirov/pbpaths/internal/logging"
	"github.com/eugenenazirov/pbpaths/internal/pbconfig"
	"github.com/eugenenazirov/pbpaths/internal/properties"
)

func main() {
	if err := run(os.Args[1:], pbconfig.EnvSource(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "pbpaths: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, env pbconfig.Source, stdout io.Writer) error {
	app := kingpin.New("pbpaths", "Resolve the PropBank index file, treebank directory and frame directory")
	app.UsageWriter(stdout)
	configFile := app.Flag("config", "Path to YAML configuration file").String()
	logLevel := app.Flag("log-level", "Log level (debug, info, warn, error)").String()
	format := app.Flag("format", "Output format (text or yaml)").String()
	propsFile := app.Flag("properties", "YAML file of overrides used instead of the environment").String()
	defines := app.Flag("define", "Override a location, e.g. -D TREEBANKDIR=/data/trees").Short('D').PlaceHolder("KEY=VALUE").StringMap()

	showCmd := app.Command("show", "Print resolved locations").Default()
	showKey := showCmd.Arg("key", "Print only this location").Enum(keyNames()...)
	checkCmd := app.Command("check", "Verify that resolved locations exist")
	defaultsCmd := app.Command("defaults", "Print compiled-in defaults")

	command, err := app.Parse(args)
	if err != nil {
		return err
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
		Properties: *defines,
	}
	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}
	if *format != "" {
		overrides.Format = format
	}
	if *propsFile != "" {
		overrides.PropertiesFile = propsFile
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	source, origin, err := buildSource(cfg, env, logger)
	if err != nil {
		return err
	}
	logger.Debug("override source selected", zap.String("source", origin))

	acc := pbconfig.New(source)
	for _, key := range pbconfig.Keys() {
		logger.Debug("location resolved",
			zap.Stringer("key", key),
			zap.String("path", acc.Resolve(key)),
			zap.Bool("overridden", acc.Overridden(key)),
		)
	}

	switch command {
	case checkCmd.FullCommand():
		return checkPaths(acc, stdout, logger)
	case defaultsCmd.FullCommand():
		return printPaths(stdout, cfg.Format, pbconfig.New(pbconfig.MapSource{}).Snapshot())
	default:
		if *showKey != "" {
			_, err := fmt.Fprintln(stdout, acc.Resolve(pbconfig.Key(*showKey)))
			return err
		}
		return printPaths(stdout, cfg.Format, acc.Snapshot())
	}
}

// buildSource picks the single store overrides are read from. Properties that
// name no known location are reported, since they can never take effect.
func buildSource(cfg config.Config, env pbconfig.Source, logger *zap.Logger) (pbconfig.Source, string, error) {
	if !cfg.UsesProperties() {
		return env, "environment", nil
	}

	store := properties.NewMemoryStore()
	if cfg.PropertiesFile != "" {
		loaded, err := properties.LoadFile(cfg.PropertiesFile)
		if err != nil {
			return nil, "", fmt.Errorf("load properties %s: %w", cfg.PropertiesFile, err)
		}
		store = loaded
	}

	keys := make([]string, 0, len(cfg.Properties))
	for k := range cfg.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := store.Set(k, cfg.Properties[k]); err != nil {
			return nil, "", fmt.Errorf("define %q: %w", k, err)
		}
	}

	for _, k := range store.Keys() {
		if !pbconfig.Known(pbconfig.Key(k)) {
			logger.Warn("unknown property ignored",
				zap.String("key", k),
				zap.Strings("known", keyNames()),
			)
		}
	}

	return store, "properties", nil
}

func printPaths(w io.Writer, format string, paths pbconfig.Paths) error {
	if format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(paths); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return enc.Close()
	}

	_, err := fmt.Fprintf(w, "%s=%s\n%s=%s\n%s=%s\n",
		pbconfig.PropBankFileKey, paths.PropBankFile,
		pbconfig.TreeBankDirKey, paths.TreeBankDir,
		pbconfig.FrameDirKey, paths.FrameDir,
	)
	return err
}

// checkPaths stats every resolved location. The index must be a regular file
// and the other two must be directories.
func checkPaths(acc *pbconfig.Accessor, w io.Writer, logger *zap.Logger) error {
	var errs []error
	for _, key := range pbconfig.Keys() {
		path := acc.Resolve(key)
		wantDir := key != pbconfig.PropBankFileKey

		status := "ok"
		info, err := os.Stat(path)
		switch {
		case err != nil:
			status = "missing"
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		case wantDir && !info.IsDir():
			status = "not a directory"
			errs = append(errs, fmt.Errorf("%s: %s is not a directory", key, path))
		case !wantDir && info.IsDir():
			status = "is a directory"
			errs = append(errs, fmt.Errorf("%s: %s is a directory", key, path))
		}

		if status == "ok" {
			logger.Info("location available", zap.Stringer("key", key), zap.String("path", path))
		} else {
			logger.Warn("location unavailable", zap.Stringer("key", key), zap.String("path", path), zap.String("status", status))
		}
		if _, err := fmt.Fprintf(w, "%-12s %-16s %s\n", key, status, path); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}

func keyNames() []string {
	keys := pbconfig.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, string(k))
	}
	return out
}

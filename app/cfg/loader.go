package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Output configuration
	OutputPath string `long:"output" env:"DIGEST_OUTPUT" default:"data/posts.json" description:"Path of the persisted digest collection"`
	DryRun     bool   `long:"dry-run" env:"DRY_RUN" description:"Print the new digest instead of writing the collection"`

	// Fetch configuration
	UserAgent   string `long:"user-agent" env:"USER_AGENT" default:"AI Inside Digest/1.0" description:"User agent string for feed requests"`
	WorkerCount int    `long:"worker-count" env:"WORKER_COUNT" default:"4" description:"Number of feeds fetched concurrently"`

	// Preview server configuration
	Port    string `long:"port" env:"PORT" default:"8080" description:"Preview server port"`
	BaseUrl string `long:"base-url" env:"BASE_URL" description:"Public base URL of the preview server (e.g., https://digest.example.com)"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses command-line flags and environment variables. It returns nil, nil
// when help was requested.
func Load() (*Cfg, error) {
	return parse(nil)
}

func parse(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	var err error
	if args == nil {
		_, err = parser.Parse()
	} else {
		_, err = parser.ParseArgs(args)
	}
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.WorkerCount < 1 {
		return nil, fmt.Errorf("worker count must be positive, got %d", raw.WorkerCount)
	}

	return &Cfg{
		OutputPath:  raw.OutputPath,
		DryRun:      raw.DryRun,
		UserAgent:   raw.UserAgent,
		WorkerCount: raw.WorkerCount,
		Port:        raw.Port,
		BaseUrl:     raw.BaseUrl,
		Debug:       raw.Debug,
		Version:     GetVersion(),
	}, nil
}

package config

import (
	"os"
	"time"

	json "github.com/json-iterator/go"
)

type (
	NET struct {
		// BindAddress is the address the listener is bound to.
		BindAddress string
		// ByteLimit caps how many request bytes are accumulated per
		// connection. Bytes past the cap are dropped and tallied, the
		// request is still served from the truncated buffer.
		ByteLimit int
		// ReadChunkSize is the size of a single read off the socket. A
		// read returning less than this ends the message.
		ReadChunkSize int
	}

	Pool struct {
		// Size is the number of workers processing connections. Every
		// connection occupies its worker until fully served, so this is
		// also the concurrency ceiling.
		Size int
	}

	FS struct {
		// Root is the directory pages are read from.
		Root string
		// Index is the page served at the root path.
		Index string
		// NotFound is the page served for paths resolving nowhere.
		NotFound string
		// SleepPath is a path deliberately answered slowly, for watching
		// the pool saturate.
		SleepPath string
		// SleepFor is how long SleepPath occupies its worker before
		// responding.
		SleepFor time.Duration
	}
)

// Config holds settings used across weft: the listener, the worker pool and
// the filesystem responder.
type Config struct {
	NET  NET
	Pool Pool
	FS   FS
}

// Default returns the config the demo setup runs with.
func Default() *Config {
	return &Config{
		NET: NET{
			BindAddress:   "localhost:8080",
			ByteLimit:     1024,
			ReadChunkSize: 512,
		},
		Pool: Pool{
			Size: 4,
		},
		FS: FS{
			Root:      "html",
			Index:     "index.htm",
			NotFound:  "404.htm",
			SleepPath: "/sleep",
			SleepFor:  10 * time.Second,
		},
	}
}

// Fill replaces zero-valued fields with their defaults, so a caller only
// specifies what matters to them.
func Fill(original *Config) *Config {
	defaultConfig := Default()

	original.NET.BindAddress = customOrDefault(
		original.NET.BindAddress, defaultConfig.NET.BindAddress,
	)
	original.NET.ByteLimit = customOrDefault(
		original.NET.ByteLimit, defaultConfig.NET.ByteLimit,
	)
	original.NET.ReadChunkSize = customOrDefault(
		original.NET.ReadChunkSize, defaultConfig.NET.ReadChunkSize,
	)
	original.Pool.Size = customOrDefault(
		original.Pool.Size, defaultConfig.Pool.Size,
	)
	original.FS.Root = customOrDefault(
		original.FS.Root, defaultConfig.FS.Root,
	)
	original.FS.Index = customOrDefault(
		original.FS.Index, defaultConfig.FS.Index,
	)
	original.FS.NotFound = customOrDefault(
		original.FS.NotFound, defaultConfig.FS.NotFound,
	)
	original.FS.SleepPath = customOrDefault(
		original.FS.SleepPath, defaultConfig.FS.SleepPath,
	)
	original.FS.SleepFor = customOrDefault(
		original.FS.SleepFor, defaultConfig.FS.SleepFor,
	)

	return original
}

// FromFile loads a config overlay from a JSON file. Omitted fields fall back
// to their defaults.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := new(Config)
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return Fill(cfg), nil
}

func customOrDefault[T comparable](custom, defaultVal T) T {
	var zero T
	if custom == zero {
		return defaultVal
	}

	return custom
}

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/vaughan0/go-ini"
)

const defaultConfigFile = "advent.ini"

type config struct {
	inputDir string

	// Optional S3 location for inputs that aren't present locally.
	bucket     string
	prefix     string
	region     string
	awsProfile string

	dialHistory string
}

func defaultConfig() *config {
	return &config{
		inputDir:    "inputs",
		region:      "us-east-1",
		awsProfile:  "default",
		dialHistory: "/tmp/advent_dial_history",
	}
}

// loadConfig reads the ini file at filename. If filename is empty, the
// default file is used if it exists.
func loadConfig(filename string) (*config, error) {
	explicit := filename != ""
	if !explicit {
		filename = defaultConfigFile
	}
	f, err := os.Open(filename)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("error loading config: %s", err)
	}
	defer f.Close()
	cfg, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", filename, err)
	}
	return cfg, nil
}

func parseConfig(r io.Reader) (*config, error) {
	file, err := ini.Load(r)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range []struct {
		section, key string
		dst          *string
	}{
		{"input", "dir", &cfg.inputDir},
		{"input", "bucket", &cfg.bucket},
		{"input", "prefix", &cfg.prefix},
		{"input", "region", &cfg.region},
		{"input", "profile", &cfg.awsProfile},
		{"dial", "history", &cfg.dialHistory},
	} {
		if v, ok := file.Get(opt.section, opt.key); ok {
			*opt.dst = v
		}
	}
	if cfg.inputDir == "" {
		return nil, errors.New("input dir must not be empty")
	}
	if cfg.bucket != "" && cfg.region == "" {
		return nil, fmt.Errorf("bucket %q configured without a region", cfg.bucket)
	}
	return cfg, nil
}

package analysis

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"runtime"
	"strings"

	file "github.com/wangkuiyi/file"
)

// Config contains the configuration of an analysis job.
type Config struct {
	// JobName will be used to identify the job in logs and output
	// file names.
	JobName string

	// EventFile is the event sample to analyze.  It can be a local
	// path or any filesystem understood by wangkuiyi/file, and is
	// decompressed transparently by its extension.
	EventFile string

	// NEvents caps the number of filtered events entering the
	// histogram.  Zero books an empty histogram.
	NEvents uint

	// Shards is the evaluation parallelism.  Non-positive values are
	// replaced by the number of CPUs.  Pipelines with an event cap
	// run sequentially regardless.
	Shards int

	// Output names the file the filled histogram is gob-encoded to.
	// Empty means the histogram is only reported in logs.
	Output string

	// Addr, when set, serves the expvar progress page.
	Addr string
}

func (c *Config) Validate() error {
	if len(c.JobName) <= 0 {
		return errors.New("c.JobName must be specified")
	}
	if len(c.EventFile) <= 0 {
		return errors.New("c.EventFile must be specified")
	}
	if c.Shards <= 0 {
		c.Shards = runtime.NumCPU()
	}
	return nil
}

// Encode returns the JSON-encoded Config, which can be used as the
// value of a command line flag.
func (c *Config) Encode() (string, error) {
	var buf bytes.Buffer
	if e := json.NewEncoder(&buf).Encode(c); e != nil {
		return "", fmt.Errorf("JSON encoding failed: %v", e)
	}
	return buf.String(), nil
}

// String is required by interface flag.Var
func (c *Config) String() string {
	if b, e := json.MarshalIndent(c, " ", "  "); e == nil {
		return fmt.Sprintf("%s", b)
	}
	return ""
}

// Set is required by interface flag.Var.  It decodes a JSON encoded
// Config variable.
func (c *Config) Set(value string) error {
	e := json.NewDecoder(strings.NewReader(value)).Decode(c)
	if e != nil {
		return fmt.Errorf("Error decoding JSON: %v", e)
	}
	return nil
}

// RegisterAsFlag registers a flag with name "config" that accepts a
// JSON encoded Config object as the value.  This function must be
// called before flag.Parse().
func (c *Config) RegisterAsFlag() {
	flag.Var(c, "config", "JSON encoded configuration")
}

func LoadConfig(filename string) (*Config, error) {
	f, e := file.Open(filename)
	if e != nil {
		return nil, fmt.Errorf("Cannot open config file %s: %v", filename, e)
	}
	defer f.Close()

	cfg := new(Config)
	if e = json.NewDecoder(f).Decode(cfg); e != nil {
		return nil, fmt.Errorf("Parse JSON config file: %v", e)
	}

	if e := cfg.Validate(); e != nil {
		return nil, fmt.Errorf("Invalid configuration: %v", e)
	}
	return cfg, nil
}

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alexiusacademia/gosect/internal/calc"
	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvOutputDir = "GOSECT_OUTPUT_DIR"
	EnvGrade     = "GOSECT_GRADE"
	EnvVerbose   = "GOSECT_VERBOSE"
)

// Settings are the ambient options of a run. They never reach the
// calculation core, which only sees calc.Input.
type Settings struct {
	OutputDir string // directory for exported files, "" = working directory
	Grade     string // default steel grade when no fy is given
	Verbose   bool
}

// Load reads settings from the environment after applying the given .env
// files. Missing .env files are ignored; a malformed one is an error.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	s := Settings{
		OutputDir: os.Getenv(EnvOutputDir),
		Grade:     os.Getenv(EnvGrade),
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		s.Verbose = b
	}
	return s, nil
}

// JobFile is the on-disk description of a batch of sections.
type JobFile struct {
	Name     string     `json:"name,omitempty"`
	Sections []calc.Job `json:"sections"`
}

// LoadJobs loads a batch definition from a JSON file
func LoadJobs(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseJobs(data)
}

// ParseJobs decodes and checks a batch definition.
func ParseJobs(data []byte) (*JobFile, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var jf JobFile
	if err := dec.Decode(&jf); err != nil {
		return nil, err
	}
	if len(jf.Sections) == 0 {
		return nil, errors.New("job file lists no sections")
	}
	for i, job := range jf.Sections {
		if job.Kind == 0 {
			return nil, fmt.Errorf("section %d: %w: missing \"type\"", i+1, calc.ErrUnknownSectionType)
		}
	}
	return &jf, nil
}

// Package config holds the target descriptor and run configuration. All
// validation happens here, before any target contact: an invalid
// configuration is fatal at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yugabench/yugabench/internal/models"
)

// Target describes how to reach the audited cluster. The password is held
// only for session establishment and never appears in reports.
type Target struct {
	Host           string
	Port           int
	Database       string
	User           string
	Password       string
	ConnectTimeout time.Duration
}

// Info strips the credentials for inclusion in run metadata.
func (t Target) Info() models.TargetInfo {
	return models.TargetInfo{
		Host:     t.Host,
		Port:     t.Port,
		Database: t.Database,
		User:     t.User,
	}
}

// Run configures one benchmark execution.
type Run struct {
	ProfileLevel  models.ProfileLevel
	Sections      []string
	ExcludeManual bool
	FailThreshold int
	CheckTimeout  time.Duration
	Workers       int
	PolicyPath    string
}

// Error reports one or more invalid configuration values. Fatal at startup,
// surfaced before any checks run.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Problems, "; "))
}

// DefaultTarget returns the target defaults, with YB_HOST, YB_PORT,
// YB_DATABASE, YB_USER and YB_PASSWORD environment overrides applied.
// Flags override both.
func DefaultTarget() Target {
	return Target{
		Host:           getenv("YB_HOST", "localhost"),
		Port:           getenvInt("YB_PORT", 5433),
		Database:       getenv("YB_DATABASE", "yugabyte"),
		User:           getenv("YB_USER", "yugabyte"),
		Password:       os.Getenv("YB_PASSWORD"),
		ConnectTimeout: 10 * time.Second,
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Validate checks both the target and run configuration, collecting every
// problem before returning.
func Validate(t Target, r Run) error {
	var problems []string

	if t.Host == "" {
		problems = append(problems, "target host must not be empty")
	}
	if t.Port < 1 || t.Port > 65535 {
		problems = append(problems, fmt.Sprintf("target port %d out of range 1-65535", t.Port))
	}
	if t.Database == "" {
		problems = append(problems, "target database must not be empty")
	}
	if t.User == "" {
		problems = append(problems, "target user must not be empty")
	}

	if !r.ProfileLevel.Valid() {
		problems = append(problems, fmt.Sprintf("unknown profile level %d; valid levels: 1, 2", r.ProfileLevel))
	}
	if r.FailThreshold < 0 {
		problems = append(problems, fmt.Sprintf("fail threshold must be >= 0, got %d", r.FailThreshold))
	}
	if r.Workers < 0 {
		problems = append(problems, fmt.Sprintf("workers must be >= 0, got %d", r.Workers))
	}
	if r.CheckTimeout < 0 {
		problems = append(problems, "check timeout must not be negative")
	}

	if len(problems) > 0 {
		return &Error{Problems: problems}
	}
	return nil
}

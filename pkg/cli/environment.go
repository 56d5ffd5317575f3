/*
Copyright SUSE LLC.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cli describes the operating environment of the satpm CLI:
// settings read from environment variables, overridable by flags.
package cli

import (
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/sat-pm/satpm/internal/solver"
	"github.com/sat-pm/satpm/pkg/satpmpath"
)

type EnvSettings struct {
	Debug      bool
	NoColors   bool
	NoEmojis   bool
	CacheDir   string // where the package index cache lives
	MaxWorkers int    // worker bound for batched resolutions
}

func New() *EnvSettings {
	env := &EnvSettings{
		CacheDir:   envOr("SATPM_CACHE_HOME", satpmpath.CachePath()),
		MaxWorkers: envIntOr("SATPM_MAX_WORKERS", solver.DefaultMaxWorkers),
	}
	env.Debug, _ = strconv.ParseBool(os.Getenv("SATPM_DEBUG"))
	env.NoColors, _ = strconv.ParseBool(os.Getenv("SATPM_NO_COLORS"))
	env.NoEmojis, _ = strconv.ParseBool(os.Getenv("SATPM_NO_EMOJIS"))
	return env
}

// AddFlags binds the settings to a flag set, usually the root command's
// persistent flags.
func (s *EnvSettings) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable verbose output")
	fs.BoolVar(&s.NoColors, "no-colors", s.NoColors, "disable colorized output")
	fs.BoolVar(&s.NoEmojis, "no-emojis", s.NoEmojis, "disable emojis in output")
	fs.StringVar(&s.CacheDir, "cache-dir", s.CacheDir, "directory to store the package index cache")
	fs.IntVar(&s.MaxWorkers, "max-workers", s.MaxWorkers, "maximum number of concurrent resolutions")
}

func envOr(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}

func envIntOr(name string, def int) int {
	if v, ok := os.LookupEnv(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

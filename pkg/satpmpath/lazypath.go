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

// Package satpmpath calculates filesystem paths to satpm's configuration
// and cache.
package satpmpath

import (
	"os"
	"path/filepath"
)

const (
	// CacheHomeEnvVar overrides the cache directory.
	CacheHomeEnvVar = "SATPM_CACHE_HOME"

	// ConfigHomeEnvVar overrides the configuration directory.
	ConfigHomeEnvVar = "SATPM_CONFIG_HOME"
)

// lazypath is a deferred path: it resolves against the environment on every
// call instead of once at startup, so tests can repoint it.
type lazypath string

func (l lazypath) resolve(envVar string, defaultFn func() (string, error), elem ...string) string {
	if base := os.Getenv(envVar); base != "" {
		return filepath.Join(append([]string{base}, elem...)...)
	}
	base, err := defaultFn()
	if err != nil {
		// no resolvable home: fall back to a relative dotdir
		base = "." + string(l)
		return filepath.Join(append([]string{base}, elem...)...)
	}
	return filepath.Join(append([]string{base, string(l)}, elem...)...)
}

func (l lazypath) cachePath(elem ...string) string {
	return l.resolve(CacheHomeEnvVar, os.UserCacheDir, elem...)
}

func (l lazypath) configPath(elem ...string) string {
	return l.resolve(ConfigHomeEnvVar, os.UserConfigDir, elem...)
}

var path = lazypath("satpm")

// CachePath returns the path where satpm stores its package index cache,
// with extra elements joined onto it.
func CachePath(elem ...string) string { return path.cachePath(elem...) }

// ConfigPath returns the path where satpm stores configuration.
func ConfigPath(elem ...string) string { return path.configPath(elem...) }

// Package finalize implements the Finalizer: given an ancestor-resolved
// array and a directory, produce the fully merged, validated array
// delivered to callers, memoized by the identity of the raw input
// array.
package finalize

import (
	"fmt"
	"sync"

	"github.com/yaklabco/mdcascade/pkg/config"
	"github.com/yaklabco/mdcascade/pkg/configfactory"
)

// ConfigurationNotFoundError reports that useConfigCascade was true but
// no configuration at all applies to dir.
type ConfigurationNotFoundError struct {
	Dir string
}

func (e *ConfigurationNotFoundError) Error() string {
	return fmt.Sprintf("No ESLint configuration found on %s.", e.Dir)
}

// MessageTemplate identifies this error kind for structured, localized
// rendering by an enclosing CLI.
func (e *ConfigurationNotFoundError) MessageTemplate() string { return "no-config-found" }

// MessageData is the structured payload accompanying MessageTemplate.
func (e *ConfigurationNotFoundError) MessageData() map[string]any {
	return map[string]any{"directoryPath": e.Dir}
}

// Finalizer produces the fully merged, validated ConfigArray a caller
// ultimately receives.
type Finalizer struct {
	factory          *configfactory.Factory
	cliArray         *config.ConfigArray
	homeDir          string
	useConfigCascade bool

	mu    sync.Mutex
	cache map[*config.ConfigArray]*config.ConfigArray
}

// New creates a Finalizer.
func New(factory *configfactory.Factory, cliArray *config.ConfigArray, homeDir string, useConfigCascade bool) *Finalizer {
	return &Finalizer{
		factory:          factory,
		cliArray:         cliArray,
		homeDir:          homeDir,
		useConfigCascade: useConfigCascade,
		cache:            make(map[*config.ConfigArray]*config.ConfigArray),
	}
}

// Clear drops every memoized finalization, forcing fresh work (and
// fresh identities) on the next Finalize call.
func (f *Finalizer) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache = make(map[*config.ConfigArray]*config.ConfigArray)
}

// Finalize composes array (as resolved by the Ancestor Resolver) with
// the personal-config fallback and the CLI array, validates the
// result, and memoizes it keyed by array's identity.
func (f *Finalizer) Finalize(array *config.ConfigArray, dir string) (*config.ConfigArray, error) {
	if cached, ok := f.cachedResult(array); ok {
		return cached, nil
	}

	result := array

	if f.useConfigCascade && !array.HasRealConfigFile() && !f.cliArray.HasRealConfigFile() {
		personal, err := f.loadPersonalConfig(array)
		if err != nil {
			return nil, fmt.Errorf("finalize: load personal config: %w", err)
		}
		result = personal
	}

	if !f.cliArray.Empty() {
		result = result.Append(f.cliArray)
	}

	validation := configfactory.Validate(result)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	f.store(array, result)

	if f.useConfigCascade && result.Empty() {
		return nil, &ConfigurationNotFoundError{Dir: dir}
	}

	return result, nil
}

// loadPersonalConfig loads a config from the user's home directory
// (if any) layered on top of array. This fallback runs even when the
// home directory turns out to have no config file of its own.
func (f *Finalizer) loadPersonalConfig(array *config.ConfigArray) (*config.ConfigArray, error) {
	if f.homeDir == "" {
		return array, nil
	}
	personal, err := f.factory.LoadOnDirectory(f.homeDir, "<personal-config>")
	if err != nil {
		return nil, err
	}
	if personal.Empty() {
		return array, nil
	}
	return personal.Concat(array), nil
}

func (f *Finalizer) cachedResult(array *config.ConfigArray) (*config.ConfigArray, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result, ok := f.cache[array]
	return result, ok
}

func (f *Finalizer) store(array, result *config.ConfigArray) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache[array] = result
}

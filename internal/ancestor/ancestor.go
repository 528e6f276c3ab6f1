// Package ancestor implements the Ancestor Resolver: given a path, it
// produces the merged configuration array for that path's directory by
// walking upward, caching per directory, honoring root:true, and
// stopping at the home directory or filesystem root.
package ancestor

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/yaklabco/mdcascade/pkg/config"
	"github.com/yaklabco/mdcascade/pkg/configfactory"
)

// Resolver resolves and caches the merged ConfigArray for any
// directory reachable from a file path.
type Resolver struct {
	factory *configfactory.Factory
	base    *config.ConfigArray
	homeDir string
	cwd     string

	// useConfigCascade mirrors the enumerator's useEslintrc flag: when
	// false, Resolve always returns the base array without touching
	// the filesystem.
	useConfigCascade bool

	mu    sync.Mutex
	cache map[string]*config.ConfigArray
}

// New creates a Resolver. homeDir may be "" if it could not be
// determined; the home-directory stop condition is then simply never
// triggered.
func New(factory *configfactory.Factory, base *config.ConfigArray, homeDir, cwd string, useConfigCascade bool) *Resolver {
	return &Resolver{
		factory:          factory,
		base:             base,
		homeDir:          homeDir,
		cwd:              cwd,
		useConfigCascade: useConfigCascade,
		cache:            make(map[string]*config.ConfigArray),
	}
}

// Clear drops every cached directory, forcing the next Resolve call to
// re-walk and re-load from disk.
func (r *Resolver) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*config.ConfigArray)
}

// Resolve returns the merged ConfigArray for dirname(path).
func (r *Resolver) Resolve(path string) (*config.ConfigArray, error) {
	return r.ResolveDir(filepath.Dir(path))
}

// ResolveDir returns the merged ConfigArray for dir directly, without
// deriving it from a file path first. The File Iterator uses this to
// seed a directory walk's starting configuration.
func (r *Resolver) ResolveDir(dir string) (*config.ConfigArray, error) {
	if !r.useConfigCascade {
		return r.base, nil
	}
	return r.resolveDir(dir)
}

func (r *Resolver) resolveDir(dir string) (*config.ConfigArray, error) {
	if cached, ok := r.cachedArray(dir); ok {
		return cached, nil
	}

	if r.isStopCondition(dir) {
		return r.store(dir, r.base), nil
	}

	own, err := r.factory.LoadOnDirectory(dir, dir)
	if err != nil {
		if errors.Is(err, configfactory.ErrAccessDenied) {
			// Access-denied is swallowed and substituted with the
			// base array for this directory only; it is not
			// propagated up the walk.
			return r.store(dir, r.base), nil
		}
		return nil, err
	}

	if !own.Empty() && rootFlagged(own) {
		// root:true halts the walk immediately after loading the
		// current directory, before recursing upward.
		return r.store(dir, own), nil
	}

	parentDir := filepath.Dir(dir)
	var parent *config.ConfigArray
	if parentDir == dir {
		parent = r.base
	} else {
		parent, err = r.resolveDir(parentDir)
		if err != nil {
			return nil, err
		}
	}

	merged := parent
	if !own.Empty() {
		merged = own.Concat(parent)
	}
	return r.store(dir, merged), nil
}

// isStopCondition reports whether dir should terminate the walk with
// the base array rather than being loaded. The three stop conditions
// are an empty or root directory, the home directory, and access
// denied (the latter handled separately in resolveDir).
func (r *Resolver) isStopCondition(dir string) bool {
	if dir == "" || dir == string(filepath.Separator) {
		return true
	}
	if filepath.Dir(dir) == dir {
		// Filesystem root reached (platform-independent form of the
		// dirname(dir) == dir fixed point).
		return true
	}
	if r.homeDir != "" && dir == r.homeDir && r.homeDir != r.cwd {
		// The home-directory stop condition is deliberately skipped
		// when cwd is itself the home directory, so project configs
		// below home are still discoverable in that case.
		return true
	}
	return false
}

func rootFlagged(array *config.ConfigArray) bool {
	for _, e := range array.Elements {
		if e.Root {
			return true
		}
	}
	return false
}

func (r *Resolver) cachedArray(dir string) (*config.ConfigArray, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	array, ok := r.cache[dir]
	return array, ok
}

func (r *Resolver) store(dir string, array *config.ConfigArray) *config.ConfigArray {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[dir] = array
	return array
}

// UserHomeDir wraps os.UserHomeDir, tolerating failure by returning "".
func UserHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

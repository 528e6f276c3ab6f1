package iterator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/mdcascade/pkg/config"
	"github.com/yaklabco/mdcascade/pkg/ignore"
)

// walkDir implements the directory-walk dispatch strategy. cfg is the
// configuration array already resolved for dir itself; when
// isTop is false, dir's own config file (if any) is loaded and layered
// on top of cfg before it is used. sel decides which non-directory
// entries are selected; predicate decides which paths (directories and
// files alike) are pruned or flagged.
func (it *Iterator) walkDir(dir string, cfg *config.ConfigArray, isTop, recursive bool, predicate *ignore.Predicate, sel func(string) bool, seen map[string]struct{}, emit func(Entry) bool) (bool, error) {
	if predicate.Contains(dir) {
		return true, nil
	}

	effective := cfg
	if !isTop {
		own, err := it.factory.LoadOnDirectory(dir, dir)
		if err != nil {
			return true, err
		}
		if !own.Empty() {
			effective = own.Concat(cfg)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			// Listing errors for non-existent directories are treated
			// as empty listings rather than propagated.
			return true, nil
		}
		return true, fmt.Errorf("iterator: read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		childPath := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if !recursive {
				continue
			}
			cont, err := it.walkDir(childPath, effective, false, recursive, predicate, sel, seen, emit)
			if err != nil {
				return true, err
			}
			if !cont {
				return false, nil
			}
			continue
		}

		if _, dup := seen[childPath]; dup {
			continue
		}
		if !sel(childPath) {
			continue
		}

		flag := FlagNone
		if predicate.Contains(childPath) {
			flag = FlagIgnoredSilently
		}
		seen[childPath] = struct{}{}

		if !emit(Entry{FilePath: childPath, Config: effective, Flag: flag}) {
			return false, nil
		}
	}

	return true, nil
}

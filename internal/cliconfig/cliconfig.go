// Package cliconfig assembles the head of the final configuration
// chain: caller-supplied CLI options plus, if an explicit --config
// file path was given, that file's elements prepended so the file's
// settings precede CLI-inline overrides in merge order.
package cliconfig

import (
	"fmt"

	"github.com/yaklabco/mdcascade/pkg/config"
	"github.com/yaklabco/mdcascade/pkg/configfactory"
)

// Build materializes cliData through factory and, if explicitConfigPath
// is non-empty, prepends the elements loaded from that file.
func Build(factory *configfactory.Factory, cliData *config.RawDocument, explicitConfigPath string) (*config.ConfigArray, error) {
	cli, err := factory.Create(cliData, "CLIOptions")
	if err != nil {
		return nil, fmt.Errorf("cliconfig: build CLI data: %w", err)
	}

	if explicitConfigPath == "" {
		return cli, nil
	}

	explicit, err := factory.LoadFile(explicitConfigPath, "--config "+explicitConfigPath)
	if err != nil {
		return nil, fmt.Errorf("cliconfig: load explicit config %s: %w", explicitConfigPath, err)
	}

	return cli.Concat(explicit), nil
}

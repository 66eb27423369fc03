package main

import (
	"path"

	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

// compileContract compiles the contract from its source directory and builds
// the manifest from the config.yml located in the same directory.
func compileContract(ctrPath string) (*nef.File, *manifest.Manifest, error) {
	// nef.NewFile() cares about version a lot.
	config.Version = "0.102.0"

	avm, di, err := compiler.CompileWithDebugInfo(ctrPath, nil)
	if err != nil {
		return nil, nil, err
	}

	ne, err := nef.NewFile(avm)
	if err != nil {
		return nil, nil, err
	}

	conf, err := smartcontract.ParseContractConfig(path.Join(ctrPath, "config.yml"))
	if err != nil {
		return nil, nil, err
	}

	o := &compiler.Options{}
	o.Name = conf.Name
	o.ContractEvents = conf.Events
	o.ContractSupportedStandards = conf.SupportedStandards
	o.Permissions = make([]manifest.Permission, len(conf.Permissions))
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}
	o.SafeMethods = conf.SafeMethods

	m, err := compiler.CreateManifest(di, o)
	if err != nil {
		return nil, nil, err
	}

	return ne, m, nil
}

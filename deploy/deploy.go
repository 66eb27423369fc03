package deploy

import (
	"encoding/json"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/vesting-contract/rpc/vesting"
	"go.uber.org/zap"
)

// Prm groups parameters of the vesting contract deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to be used.
	Blockchain actor.RPCActor

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	// Compiled contract executable and its manifest.
	NEF      nef.File
	Manifest manifest.Manifest

	// Administrator manages vesting schedules of the deployed contract.
	Administrator util.Uint160

	// Asset is the NEP-17 token the deployed contract pays out.
	Asset util.Uint160
}

// Deploy deploys the vesting contract on the given Neo blockchain and returns
// its address. The contract is initialized with Prm.Administrator and
// Prm.Asset. Deployment progress is logged into Prm.Logger.
func Deploy(prm Prm) (util.Uint160, error) {
	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	contractAddress := state.CreateContractHash(act.Sender(), prm.NEF.Checksum, prm.Manifest.Name)

	txHash, vub, err := management.New(act).Deploy(&prm.NEF, &prm.Manifest, []any{
		prm.Administrator,
		prm.Asset,
	})
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send contract deployment transaction: %w", err)
	}

	prm.Logger.Info("contract deployment transaction sent, waiting for persistence...",
		zap.Stringer("tx", txHash))

	aer, err := act.Wait(txHash, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for contract deployment transaction: %w", err)
	}

	if aer.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("contract deployment transaction failed: %s", aer.FaultException)
	}

	prm.Logger.Info("vesting contract successfully deployed",
		zap.Stringer("address", contractAddress))

	return contractAddress, nil
}

// Update upgrades the vesting contract deployed at the given address with
// Prm.NEF and Prm.Manifest. The request is authorized by the contract
// administrator, so Prm.LocalAccount must be one.
func Update(prm Prm, contractAddress util.Uint160) error {
	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return fmt.Errorf("init transaction sender from local account: %w", err)
	}

	nefBytes, err := prm.NEF.Bytes()
	if err != nil {
		return fmt.Errorf("encode NEF: %w", err)
	}

	manifestBytes, err := json.Marshal(prm.Manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	txHash, vub, err := vesting.New(act, contractAddress).Update(nefBytes, manifestBytes, nil)
	if err != nil {
		return fmt.Errorf("send contract update transaction: %w", err)
	}

	prm.Logger.Info("contract update transaction sent, waiting for persistence...",
		zap.Stringer("tx", txHash))

	aer, err := act.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for contract update transaction: %w", err)
	}

	if aer.VMState != vmstate.Halt {
		return fmt.Errorf("contract update transaction failed: %s", aer.FaultException)
	}

	prm.Logger.Info("vesting contract successfully updated",
		zap.Stringer("address", contractAddress))

	return nil
}

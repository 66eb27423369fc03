// Command vesting-deploy compiles the vesting contract from source and
// deploys it to a Neo chain, or updates an already deployed instance.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/vesting-contract/deploy"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the NEP-6 wallet of the deployer")
	walletPassword := flag.String("password", "", "Password of the deployer wallet account")
	srcPath := flag.String("src", "contracts/vesting", "Path to the contract source directory with config.yml")
	adminAddress := flag.String("admin", "", "Administrator address (defaults to the deployer account)")
	assetAddress := flag.String("asset", "", "Address of the NEP-17 asset the contract pays out")
	contractAddress := flag.String("contract", "", "Address of the deployed contract (update mode)")
	update := flag.Bool("update", false, "Update the deployed contract instead of deploying a new one")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing deployer wallet")
	case !*update && *assetAddress == "":
		log.Fatal("missing NEP-17 asset address")
	case *update && *contractAddress == "":
		log.Fatal("missing deployed contract address")
	}

	l, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(fmt.Errorf("init logger: %w", err))
	}

	acc, err := unlockWalletAccount(*walletPath, *walletPassword)
	if err != nil {
		log.Fatal(fmt.Errorf("open deployer account: %w", err))
	}

	ne, m, err := compileContract(*srcPath)
	if err != nil {
		log.Fatal(fmt.Errorf("compile contract from '%s': %w", *srcPath, err))
	}

	c, err := rpcclient.New(context.Background(), *neoRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		log.Fatal(fmt.Errorf("RPC client dial: %w", err))
	}

	defer c.Close()

	prm := deploy.Prm{
		Logger:       l,
		Blockchain:   c,
		LocalAccount: acc,
		NEF:          *ne,
		Manifest:     *m,
	}

	if *update {
		contractHash, err := parseUint160(*contractAddress)
		if err != nil {
			log.Fatal(fmt.Errorf("invalid contract address: %w", err))
		}

		err = deploy.Update(prm, contractHash)
		if err != nil {
			log.Fatal(err)
		}

		log.Printf("vesting contract %s is successfully updated\n", address.Uint160ToString(contractHash))
		return
	}

	prm.Asset, err = parseUint160(*assetAddress)
	if err != nil {
		log.Fatal(fmt.Errorf("invalid asset address: %w", err))
	}

	prm.Administrator = acc.ScriptHash()
	if *adminAddress != "" {
		prm.Administrator, err = parseUint160(*adminAddress)
		if err != nil {
			log.Fatal(fmt.Errorf("invalid administrator address: %w", err))
		}
	}

	contractHash, err := deploy.Deploy(prm)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("vesting contract is deployed at %s\n", address.Uint160ToString(contractHash))
}

// unlockWalletAccount reads the NEP-6 wallet and decrypts its first account.
func unlockWalletAccount(walletPath, password string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("read wallet: %w", err)
	}

	if len(w.Accounts) == 0 {
		return nil, errors.New("wallet has no accounts")
	}

	acc := w.Accounts[0]

	err = acc.Decrypt(password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("unlock account: %w", err)
	}

	return acc, nil
}

func parseUint160(s string) (util.Uint160, error) {
	if u, err := address.StringToUint160(s); err == nil {
		return u, nil
	}

	return util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
}

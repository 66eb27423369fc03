package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/vesting-contract/rpc/vesting"
)

// iteratorBatchSize limits the number of items requested from the server per
// iterator traversal call.
const iteratorBatchSize = 100

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractAddr := flag.String("contract", "", "Address or LE script hash of the vesting contract")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractAddr == "":
		log.Fatal("missing contract address")
	}

	err := dump(*neoRPCEndpoint, *contractAddr)
	if err != nil {
		log.Fatal(err)
	}
}

func dump(neoRPCEndpoint, contractAddr string) error {
	contractHash, err := parseUint160(contractAddr)
	if err != nil {
		return fmt.Errorf("parse contract address: %w", err)
	}

	c, err := rpcclient.New(context.Background(), neoRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("RPC client dial: %w", err)
	}

	defer c.Close()

	inv := invoker.New(c, nil)
	reader := vesting.NewReader(inv, contractHash)

	admin, err := reader.Administrator()
	if err != nil {
		return fmt.Errorf("get contract administrator: %w", err)
	}

	asset, err := reader.Asset()
	if err != nil {
		return fmt.Errorf("get contract asset: %w", err)
	}

	paused, err := reader.IsPaused()
	if err != nil {
		return fmt.Errorf("get contract pause state: %w", err)
	}

	version, err := reader.Version()
	if err != nil {
		return fmt.Errorf("get contract version: %w", err)
	}

	v := version.Int64()
	log.Printf("Vesting contract %s (version %d.%d.%d)\n",
		address.Uint160ToString(contractHash), v/1_000_000, v/1_000%1_000, v%1_000)
	log.Printf("Administrator: %s\n", address.Uint160ToString(admin))
	log.Printf("Asset: %s\n", address.Uint160ToString(asset))
	log.Printf("Paused: %t\n", paused)

	owners, err := listOwners(inv, reader)
	if err != nil {
		return fmt.Errorf("list vesting schedule owners: %w", err)
	}

	for _, owner := range owners {
		schedule, err := reader.VestingOf(owner)
		if err != nil {
			return fmt.Errorf("get vesting schedule of '%s': %w", address.Uint160ToString(owner), err)
		}

		st, err := reader.ViewAssets(owner)
		if err != nil {
			return fmt.Errorf("get releasable assets of '%s': %w", address.Uint160ToString(owner), err)
		}

		log.Printf("%s: total %s, released %s, releasable %s, active %t, milestones %d\n",
			address.Uint160ToString(owner), schedule.Total, schedule.Released,
			st.Releasable, schedule.Active, len(schedule.Times))
	}

	log.Printf("%d vesting schedules in total\n", len(owners))

	return nil
}

// listOwners collects all vesting schedule owners from the server-side
// iterator. Falls back to iterator expansion for servers with sessions
// disabled.
func listOwners(inv *invoker.Invoker, reader *vesting.ContractReader) ([]util.Uint160, error) {
	var items []stackitem.Item

	sessionID, iter, err := reader.Vestings()
	if err == nil {
		defer func() {
			_ = inv.TerminateSession(sessionID)
		}()

		for {
			batch, err := inv.TraverseIterator(sessionID, &iter, iteratorBatchSize)
			if err != nil {
				return nil, fmt.Errorf("traverse iterator: %w", err)
			}
			if len(batch) == 0 {
				break
			}
			items = append(items, batch...)
		}
	} else {
		items, err = reader.VestingsExpanded(iteratorBatchSize)
		if err != nil {
			return nil, fmt.Errorf("expand iterator: %w", err)
		}
	}

	owners := make([]util.Uint160, 0, len(items))
	for i := range items {
		b, err := items[i].TryBytes()
		if err != nil {
			return nil, fmt.Errorf("decode owner #%d: %w", i, err)
		}

		owner, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return nil, fmt.Errorf("decode owner #%d: %w", i, err)
		}

		owners = append(owners, owner)
	}

	return owners, nil
}

// parseUint160 accepts Neo address or hex-encoded LE script hash.
func parseUint160(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	return util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
}

package reenter

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const vestingContractKey = 'v'

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.(struct {
		vesting interop.Hash160
	})
	if len(args.vesting) != interop.Hash160Len {
		panic("incorrect vesting contract script hash")
	}

	storage.Put(storage.GetContext(), vestingContractKey, args.vesting)
}

// Claim releases own vested assets.
func Claim() {
	callRelease()
}

// OnNEP17Payment tries to release own vested assets once more while the
// payout transfer is still in progress.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	callRelease()
}

// BalanceOf poses as a NEP-17 balance query and tries to release own vested
// assets from the calling contract while its payout is already in progress.
// The caller grants read-only flags, so the nested call requests no more.
func BalanceOf(account interop.Hash160) int {
	vesting := runtime.GetCallingScriptHash()
	contract.Call(vesting, "release", contract.ReadOnly, runtime.GetExecutingScriptHash())
	return 0
}

func callRelease() {
	ctx := storage.GetReadOnlyContext()
	vesting := storage.Get(ctx, vestingContractKey).(interop.Hash160)
	contract.Call(vesting, "release", contract.All, runtime.GetExecutingScriptHash())
}

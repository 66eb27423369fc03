package nep17token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	tokenSymbol   = "TST"
	tokenDecimals = 8

	supplyKey     = 's'
	balancePrefix = 'b'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.(struct {
		owner  interop.Hash160
		supply int
	})

	if len(args.owner) != interop.Hash160Len {
		panic("incorrect owner script hash")
	}
	if args.supply <= 0 {
		panic("incorrect initial supply")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, supplyKey, args.supply)
	storage.Put(ctx, balanceKey(args.owner), args.supply)
}

func Symbol() string {
	return tokenSymbol
}

func Decimals() int {
	return tokenDecimals
}

func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, supplyKey).(int)
}

func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getBalance(ctx, account)
}

func Transfer(from, to interop.Hash160, amount int, data any) bool {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic("incorrect script hash")
	}
	if amount < 0 {
		panic("negative amount")
	}

	if !runtime.CheckWitness(from) && !runtime.GetCallingScriptHash().Equals(from) {
		return false
	}

	ctx := storage.GetContext()
	fromBalance := getBalance(ctx, from)
	if fromBalance < amount {
		return false
	}

	storage.Put(ctx, balanceKey(from), fromBalance-amount)
	storage.Put(ctx, balanceKey(to), getBalance(ctx, to)+amount)

	runtime.Notify("Transfer", from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}

	return true
}

func balanceKey(account interop.Hash160) []byte {
	return append([]byte{balancePrefix}, account...)
}

func getBalance(ctx storage.Context, account interop.Hash160) int {
	val := storage.Get(ctx, balanceKey(account))
	if val == nil {
		return 0
	}
	return val.(int)
}

package vesting

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/vesting-contract/common"
)

type (
	// Vesting describes a single vesting schedule. Each account has at
	// most one schedule at a time.
	Vesting struct {
		// Start is the moment (wall clock, ms) releases become possible.
		Start int
		// Total amount of assets granted by the schedule.
		Total int
		// Released is the amount already paid out.
		Released int
		// Times are milestone unlock moments (wall clock, ms),
		// sorted in non-decreasing order.
		Times []int
		// Percents are milestone unlock percents, one per milestone,
		// summing up to exactly 100.
		Percents []int
		// Active is false for schedules frozen by StopVesting.
		Active bool
	}

	// ReleaseState is a claimable-state projection of a schedule
	// returned by ViewAssets.
	ReleaseState struct {
		// Releasable is the amount Release would pay out right now.
		Releasable int
		// Times are milestone unlock moments of the schedule.
		Times []int
	}
)

const (
	adminKey  = 'a'
	assetKey  = 't'
	pausedKey = 'p'
	guardKey  = 'g'

	vestingPrefix = 'v'
)

// Contract errors thrown on invalid method invocations.
const (
	// ErrPaused is thrown by state-changing methods while the contract
	// is paused.
	ErrPaused = "contract is paused"
	// ErrMismatchedLists is thrown by DefineVesting when milestone lists
	// have different lengths.
	ErrMismatchedLists = "times and percents have different lengths"
	// ErrPercentRange is thrown by DefineVesting when a milestone percent
	// is outside of (0:100] range.
	ErrPercentRange = "percent out of range"
	// ErrUnorderedTimes is thrown by DefineVesting when milestone times
	// decrease.
	ErrUnorderedTimes = "milestone times are not sorted"
	// ErrPercentSum is thrown by DefineVesting when milestone percents
	// do not add up to exactly 100.
	ErrPercentSum = "percents do not sum up to 100"
	// ErrNotStarted is thrown by Release before the schedule start time.
	ErrNotStarted = "vesting has not started yet"
	// ErrNothingToRelease is thrown by Release when no unlocked assets
	// remain unpaid.
	ErrNothingToRelease = "nothing to release"
	// ErrInsufficientPool is thrown by Release when the contract does not
	// hold enough assets to cover the payout.
	ErrInsufficientPool = "insufficient asset balance"
	// ErrNoVesting is thrown by StopVesting and TransferVesting when the
	// account has no schedule.
	ErrNoVesting = "no vesting schedule"
	// ErrAlreadyVested is thrown by TransferVesting when the destination
	// account already has a schedule.
	ErrAlreadyVested = "destination already has a vesting schedule"
	// ErrReentrancy is thrown by Release entered again while a payout is
	// still in progress.
	ErrReentrancy = "release is already in progress"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		admin interop.Hash160
		asset interop.Hash160
	})

	if len(args.admin) != interop.Hash160Len {
		panic("incorrect administrator script hash")
	}
	if len(args.asset) != interop.Hash160Len {
		panic("incorrect asset script hash")
	}

	storage.Put(ctx, adminKey, args.admin)
	storage.Put(ctx, assetKey, args.asset)

	runtime.Log("vesting contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract administrator.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	checkAdminWitness(ctx)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("vesting contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Administrator returns the script hash of the contract administrator set
// at deploy time.
func Administrator() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return administrator(ctx)
}

// Asset returns the script hash of the NEP-17 token the contract pays
// vested assets in.
func Asset() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return assetHash(ctx)
}

// IsPaused returns true if the contract is paused. While paused, all
// state-changing methods throw and deposits are not accepted; read-only
// methods keep working.
func IsPaused() bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, pausedKey) != nil
}

// Pause suspends state-changing methods of the contract until Resume. It can
// be invoked only by the contract administrator. Repeated calls are allowed.
//
// It produces Paused notification.
func Pause() {
	ctx := storage.GetContext()
	checkAdminWitness(ctx)

	storage.Put(ctx, pausedKey, true)

	runtime.Log("vesting contract paused")
	runtime.Notify("Paused")
}

// Resume re-enables state-changing methods of the contract. It can be
// invoked only by the contract administrator. Repeated calls are allowed.
//
// It produces Resumed notification.
func Resume() {
	ctx := storage.GetContext()
	checkAdminWitness(ctx)

	storage.Delete(ctx, pausedKey)

	runtime.Log("vesting contract resumed")
	runtime.Notify("Resumed")
}

// DefineVesting registers a vesting schedule for the owner account. Total
// assets unlock at the given milestone times (ms) in the given percents,
// no earlier than the start moment (ms). Milestone lists must have the same
// length, percents must be in (0:100] range and sum up to exactly 100,
// times must not decrease. It can be invoked only by the contract
// administrator.
//
// Any existing schedule of the owner is replaced and its release history is
// discarded, so redefining an account that has already released assets
// grants the new total in full.
//
// It produces VestingDefined notification.
func DefineVesting(owner interop.Hash160, start int, times []int, percents []int, total int) {
	ctx := storage.GetContext()
	checkNotPaused(ctx)
	checkAdminWitness(ctx)

	if len(owner) != interop.Hash160Len {
		panic("incorrect owner script hash")
	}
	if total <= 0 {
		panic("total must be positive")
	}
	if len(times) != len(percents) {
		panic(ErrMismatchedLists)
	}

	sum := 0
	for i := 0; i < len(percents); i++ {
		p := percents[i]
		if p <= 0 || p > 100 {
			panic(ErrPercentRange)
		}
		if i > 0 && times[i] < times[i-1] {
			panic(ErrUnorderedTimes)
		}
		sum += p
	}
	if sum != 100 {
		panic(ErrPercentSum)
	}

	v := Vesting{
		Start:    start,
		Total:    total,
		Released: 0,
		Times:    times,
		Percents: percents,
		Active:   true,
	}
	putVesting(ctx, owner, v)

	runtime.Log("vesting schedule defined")
	runtime.Notify("VestingDefined", owner, total)
}

// Release pays out all currently unlocked and unpaid assets of the owner
// schedule with a NEP-17 transfer from the contract account. It can be
// invoked by the owner or by the owner contract directly. The released
// amount is the one ViewAssets returns at the same moment, so an account
// with no schedule has nothing to release.
//
// It produces TokensReleased notification.
func Release(owner interop.Hash160) {
	ctx := storage.GetContext()
	checkNotPaused(ctx)

	if storage.Get(ctx, guardKey) != nil {
		panic(ErrReentrancy)
	}

	if len(owner) != interop.Hash160Len {
		panic("incorrect owner script hash")
	}
	if !isUsableAddress(owner) {
		panic(common.ErrOwnerWitnessFailed)
	}

	v := getVesting(ctx, owner)

	now := runtime.GetTime()
	if now < v.Start {
		panic(ErrNotStarted)
	}

	amount := calcReleasable(v, now)
	if amount == 0 {
		panic(ErrNothingToRelease)
	}

	// The guard must be up before any call into the asset contract.
	storage.Put(ctx, guardKey, true)

	asset := assetHash(ctx)
	self := runtime.GetExecutingScriptHash()
	balance := contract.Call(asset, "balanceOf", contract.ReadOnly, self).(int)
	if balance < amount {
		panic(ErrInsufficientPool)
	}

	v.Released += amount
	putVesting(ctx, owner, v)

	ok := contract.Call(asset, "transfer", contract.All, self, owner, amount, nil).(bool)
	if !ok {
		panic("failed to transfer funds, aborting")
	}

	storage.Delete(ctx, guardKey)

	runtime.Log("vested assets released")
	runtime.Notify("TokensReleased", owner, amount)
}

// StopVesting permanently freezes the owner schedule: its releasable amount
// becomes zero and never grows again. The schedule record is kept. Stopping
// an already stopped schedule is a no-op. It can be invoked only by the
// contract administrator.
func StopVesting(owner interop.Hash160) {
	ctx := storage.GetContext()
	checkNotPaused(ctx)
	checkAdminWitness(ctx)

	v := getVesting(ctx, owner)
	if v.Total == 0 {
		panic(ErrNoVesting)
	}
	if !v.Active {
		return
	}

	v.Active = false
	putVesting(ctx, owner, v)

	runtime.Log("vesting schedule stopped")
}

// TransferVesting moves the schedule of the from account to the to account
// as is, keeping start, milestones, release history and activity unchanged.
// The destination account must have no schedule. It can be invoked only by
// the contract administrator.
//
// It produces VestingTransferred notification.
func TransferVesting(from, to interop.Hash160) {
	ctx := storage.GetContext()
	checkNotPaused(ctx)
	checkAdminWitness(ctx)

	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic("incorrect account script hash")
	}

	data := storage.Get(ctx, vestingKey(from))
	if data == nil {
		panic(ErrNoVesting)
	}
	if storage.Get(ctx, vestingKey(to)) != nil {
		panic(ErrAlreadyVested)
	}

	storage.Put(ctx, vestingKey(to), data.([]byte))
	storage.Delete(ctx, vestingKey(from))

	runtime.Log("vesting schedule transferred")
	runtime.Notify("VestingTransferred", from, to)
}

// Deposit pulls the given amount of the configured NEP-17 token from the
// administrator account to the contract account to fund future releases.
// The transaction must be witnessed by the administrator, this witness also
// authorizes the token side of the transfer.
//
// It produces Deposit notification (thrown by OnNEP17Payment callback).
func Deposit(amount int) {
	ctx := storage.GetContext()
	checkNotPaused(ctx)

	if amount <= 0 {
		panic("amount must be positive")
	}

	admin := administrator(ctx)
	common.CheckAdminWitness(admin)

	asset := assetHash(ctx)
	self := runtime.GetExecutingScriptHash()
	ok := contract.Call(asset, "transfer", contract.All, admin, self, amount, nil).(bool)
	if !ok {
		panic("failed to transfer funds, aborting")
	}
}

// OnNEP17Payment is a callback for NEP-17 compatible token contracts. Only
// the configured asset is accepted, only from the administrator and only
// while the contract is not paused, any other transfer is aborted.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetReadOnlyContext()

	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(assetHash(ctx)) {
		common.AbortWithMessage("only the configured asset can be accepted for deposit")
	}

	if amount <= 0 {
		common.AbortWithMessage("amount must be positive")
	}

	if storage.Get(ctx, pausedKey) != nil {
		common.AbortWithMessage(ErrPaused)
	}

	if !from.Equals(administrator(ctx)) {
		common.AbortWithMessage("only the administrator can fund the contract")
	}

	runtime.Notify("Deposit", from, amount)
}

// ViewAssets returns the claimable state of the owner schedule: the amount
// Release would pay out at the current moment and the milestone times. An
// account with no schedule gets a zero state.
func ViewAssets(owner interop.Hash160) ReleaseState {
	ctx := storage.GetReadOnlyContext()

	v := getVesting(ctx, owner)
	return ReleaseState{
		Releasable: calcReleasable(v, runtime.GetTime()),
		Times:      v.Times,
	}
}

// VestingOf returns the stored schedule of the owner account. An account
// with no schedule gets a zero record (zero total).
func VestingOf(owner interop.Hash160) Vesting {
	ctx := storage.GetReadOnlyContext()
	return getVesting(ctx, owner)
}

// Vestings returns an iterator over script hashes of all accounts that
// currently have a schedule.
func Vestings() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{vestingPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// calcReleasable computes the amount unlocked by the schedule at the given
// moment and not yet paid out. Milestone percents accrue when their time
// comes, the final milestone releases the exact remainder so that integer
// division leaves no dust behind.
func calcReleasable(v Vesting, now int) int {
	if !v.Active || v.Total == 0 {
		return 0
	}
	if now < v.Start {
		return 0
	}

	n := len(v.Times)
	if n == 0 {
		return 0
	}
	if now >= v.Times[n-1] {
		return v.Total - v.Released
	}

	accrued := 0
	for i := 0; i < n; i++ {
		if v.Times[i] > now {
			break
		}
		accrued += v.Percents[i]
	}

	vested := v.Total * accrued / 100
	if vested <= v.Released {
		return 0
	}
	return vested - v.Released
}

func vestingKey(owner interop.Hash160) []byte {
	return append([]byte{vestingPrefix}, owner...)
}

func getVesting(ctx storage.Context, owner interop.Hash160) Vesting {
	data := storage.Get(ctx, vestingKey(owner))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Vesting)
	}

	return Vesting{}
}

func putVesting(ctx storage.Context, owner interop.Hash160, v Vesting) {
	common.SetSerialized(ctx, vestingKey(owner), v)
}

func administrator(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

func assetHash(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, assetKey).(interop.Hash160)
}

func checkAdminWitness(ctx storage.Context) {
	common.CheckAdminWitness(administrator(ctx))
}

func checkNotPaused(ctx storage.Context) {
	if storage.Get(ctx, pausedKey) != nil {
		panic(ErrPaused)
	}
}

// isUsableAddress checks if the sender is either a correct NEO address or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}

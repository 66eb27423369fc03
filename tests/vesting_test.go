package tests

import (
	"encoding/json"
	"path"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/vesting-contract/common"
	"github.com/nspcc-dev/vesting-contract/contracts/vesting"
	"github.com/stretchr/testify/require"
)

const (
	vestingPath = "../contracts/vesting"
	tokenPath   = "../internal/testcontracts/nep17token"
	reenterPath = "../internal/testcontracts/reenter"
)

const dayMS = int64(24 * time.Hour / time.Millisecond)

func deployTokenContract(t *testing.T, e *neotest.Executor, owner util.Uint160, supply int64) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, c, []any{owner, supply})
	return c.Hash
}

func deployVestingContract(t *testing.T, e *neotest.Executor, asset util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, vestingPath, path.Join(vestingPath, "config.yml"))
	e.DeployContract(t, c, []any{e.CommitteeHash, asset})
	return c.Hash
}

func deployReenterContract(t *testing.T, e *neotest.Executor, vestingHash util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, reenterPath, path.Join(reenterPath, "config.yml"))
	e.DeployContract(t, c, []any{vestingHash})
	return c.Hash
}

// newVestingInvoker deploys the test token and the vesting contract on top of
// it, the committee plays the administrator role. Token hash is returned
// along with the committee invoker of the vesting contract.
func newVestingInvoker(t *testing.T) (*neotest.ContractInvoker, util.Uint160) {
	e := newExecutor(t)

	tokenHash := deployTokenContract(t, e, e.CommitteeHash, 1_000_000)
	vestingHash := deployVestingContract(t, e, tokenHash)

	return e.CommitteeInvoker(vestingHash), tokenHash
}

func defineSchedule(t *testing.T, c *neotest.ContractInvoker, owner util.Uint160, start int64, times, percents []int64, total int64) {
	ts := make([]any, len(times))
	for i := range times {
		ts[i] = times[i]
	}
	ps := make([]any, len(percents))
	for i := range percents {
		ps[i] = percents[i]
	}
	c.Invoke(t, stackitem.Null{}, "defineVesting", owner, start, ts, ps, total)
}

func vestingItem(start, total, released int64, times, percents []int64, active bool) stackitem.Item {
	ts := make([]stackitem.Item, len(times))
	for i := range times {
		ts[i] = stackitem.Make(times[i])
	}
	ps := make([]stackitem.Item, len(percents))
	for i := range percents {
		ps[i] = stackitem.Make(percents[i])
	}
	return stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(start),
		stackitem.Make(total),
		stackitem.Make(released),
		stackitem.NewArray(ts),
		stackitem.NewArray(ps),
		stackitem.NewBool(active),
	})
}

func releasableOf(t *testing.T, c *neotest.ContractInvoker, owner util.Uint160) int64 {
	s, err := c.TestInvoke(t, "viewAssets", owner)
	require.NoError(t, err)

	fields := s.Top().Item().Value().([]stackitem.Item)
	n, err := fields[0].TryInteger()
	require.NoError(t, err)
	return n.Int64()
}

func TestVestingInfo(t *testing.T) {
	e := newExecutor(t)
	tokenHash := deployTokenContract(t, e, e.CommitteeHash, 1_000_000)
	vestingHash := deployVestingContract(t, e, tokenHash)
	c := e.CommitteeInvoker(vestingHash)

	c.Invoke(t, stackitem.NewBuffer(e.CommitteeHash.BytesBE()), "administrator")
	c.Invoke(t, stackitem.NewBuffer(tokenHash.BytesBE()), "asset")
	c.Invoke(t, false, "isPaused")
	c.Invoke(t, common.Version, "version")
}

func TestDefineVesting(t *testing.T) {
	c, _ := newVestingInvoker(t)

	acc := c.NewAccount(t)
	owner := acc.ScriptHash()
	cAcc := c.WithSigners(acc)

	start := int64(c.TopBlock(t).Timestamp) + dayMS
	t1 := start + 30*dayMS
	t2 := start + 365*dayMS

	cAcc.InvokeFail(t, common.ErrAdminWitnessFailed, "defineVesting",
		owner, start, []any{t1}, []any{int64(100)}, int64(1000))

	c.InvokeFail(t, "incorrect owner script hash", "defineVesting",
		[]byte{1, 2, 3}, start, []any{t1}, []any{int64(100)}, int64(1000))
	c.InvokeFail(t, "total must be positive", "defineVesting",
		owner, start, []any{t1}, []any{int64(100)}, int64(0))
	c.InvokeFail(t, vesting.ErrMismatchedLists, "defineVesting",
		owner, start, []any{t1, t2}, []any{int64(100)}, int64(1000))
	c.InvokeFail(t, vesting.ErrPercentRange, "defineVesting",
		owner, start, []any{t1, t2}, []any{int64(0), int64(100)}, int64(1000))
	c.InvokeFail(t, vesting.ErrPercentRange, "defineVesting",
		owner, start, []any{t1, t2}, []any{int64(101), int64(-1)}, int64(1000))
	c.InvokeFail(t, vesting.ErrUnorderedTimes, "defineVesting",
		owner, start, []any{t2, t1}, []any{int64(25), int64(75)}, int64(1000))
	c.InvokeFail(t, vesting.ErrPercentSum, "defineVesting",
		owner, start, []any{t1, t2}, []any{int64(25), int64(74)}, int64(1000))

	h := c.Invoke(t, stackitem.Null{}, "defineVesting",
		owner, start, []any{t1, t2}, []any{int64(25), int64(75)}, int64(1000))
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "VestingDefined", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(owner.BytesBE()),
		stackitem.Make(1000),
	}), aer.Events[0].Item)

	c.Invoke(t, vestingItem(start, 1000, 0, []int64{t1, t2}, []int64{25, 75}, true), "vestingOf", owner)

	// redefinition replaces the record in full, including release history
	c.Invoke(t, stackitem.Null{}, "defineVesting",
		owner, start, []any{t2}, []any{int64(100)}, int64(400))
	c.Invoke(t, vestingItem(start, 400, 0, []int64{t2}, []int64{100}, true), "vestingOf", owner)
}

func TestRelease(t *testing.T) {
	e := newExecutor(t)
	tokenHash := deployTokenContract(t, e, e.CommitteeHash, 1_000_000)
	vestingHash := deployVestingContract(t, e, tokenHash)
	c := e.CommitteeInvoker(vestingHash)

	acc := c.NewAccount(t)
	owner := acc.ScriptHash()
	cAcc := c.WithSigners(acc)

	start := int64(c.TopBlock(t).Timestamp) + dayMS
	t1 := start + 30*dayMS
	t2 := start + 365*dayMS

	defineSchedule(t, c, owner, start, []int64{t1, t2}, []int64{25, 75}, 1000)

	// an account with no schedule simply has nothing to release
	unknown := c.NewAccount(t)
	c.WithSigners(unknown).InvokeFail(t, vesting.ErrNothingToRelease, "release", unknown.ScriptHash())

	// the owner witness is required
	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "release", owner)

	cAcc.InvokeFail(t, vesting.ErrNotStarted, "release", owner)

	// started, but nothing has been unlocked yet
	fastForwardTo(t, e, uint64(start))
	cAcc.InvokeFail(t, vesting.ErrNothingToRelease, "release", owner)

	// the pool is not funded yet
	fastForwardTo(t, e, uint64(t1-1))
	cAcc.InvokeFail(t, vesting.ErrInsufficientPool, "release", owner)

	c.Invoke(t, stackitem.Null{}, "deposit", int64(1000))

	h := cAcc.Invoke(t, stackitem.Null{}, "release", owner)
	aer := cAcc.CheckHalt(t, h)
	require.Equal(t, 2, len(aer.Events))
	require.Equal(t, "Transfer", aer.Events[0].Name)
	require.Equal(t, "TokensReleased", aer.Events[1].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(owner.BytesBE()),
		stackitem.Make(250),
	}), aer.Events[1].Item)

	require.Equal(t, int64(250), tokenBalanceOf(t, e, tokenHash, owner))
	require.Equal(t, int64(750), tokenBalanceOf(t, e, tokenHash, vestingHash))
	c.Invoke(t, vestingItem(start, 1000, 250, []int64{t1, t2}, []int64{25, 75}, true), "vestingOf", owner)

	// nothing new unlocks between the milestones
	cAcc.InvokeFail(t, vesting.ErrNothingToRelease, "release", owner)

	fastForwardTo(t, e, uint64(start+364*dayMS))
	cAcc.InvokeFail(t, vesting.ErrNothingToRelease, "release", owner)

	// the final milestone releases the exact remainder
	fastForwardTo(t, e, uint64(t2-1))
	h = cAcc.Invoke(t, stackitem.Null{}, "release", owner)
	aer = cAcc.CheckHalt(t, h)
	require.Equal(t, 2, len(aer.Events))
	require.Equal(t, "TokensReleased", aer.Events[1].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(owner.BytesBE()),
		stackitem.Make(750),
	}), aer.Events[1].Item)

	require.Equal(t, int64(1000), tokenBalanceOf(t, e, tokenHash, owner))
	require.Equal(t, int64(0), tokenBalanceOf(t, e, tokenHash, vestingHash))

	cAcc.InvokeFail(t, vesting.ErrNothingToRelease, "release", owner)
}

func TestReleaseGAS(t *testing.T) {
	e := newExecutor(t)
	gasHash := e.NativeHash(t, nativenames.Gas)
	vestingHash := deployVestingContract(t, e, gasHash)
	c := e.CommitteeInvoker(vestingHash)
	gasInvoker := e.CommitteeInvoker(gasHash)

	gasInvoker.Invoke(t, true, "transfer", e.CommitteeHash, vestingHash, int64(1000), nil)
	require.Equal(t, int64(1000), tokenBalanceOf(t, e, gasHash, vestingHash))

	acc := c.NewAccount(t)
	owner := acc.ScriptHash()

	start := int64(c.TopBlock(t).Timestamp)
	defineSchedule(t, c, owner, start, []int64{start + dayMS, start + 2*dayMS}, []int64{25, 75}, 1000)

	fastForwardTo(t, e, uint64(start+dayMS))
	c.WithSigners(acc).Invoke(t, stackitem.Null{}, "release", owner)

	// the contract account pays no fees, the pool shrinks by the exact payout
	require.Equal(t, int64(750), tokenBalanceOf(t, e, gasHash, vestingHash))
}

func TestStopVesting(t *testing.T) {
	c, _ := newVestingInvoker(t)

	acc := c.NewAccount(t)
	owner := acc.ScriptHash()
	cAcc := c.WithSigners(acc)

	c.InvokeFail(t, vesting.ErrNoVesting, "stopVesting", owner)

	start := int64(c.TopBlock(t).Timestamp)
	t1 := start + dayMS
	defineSchedule(t, c, owner, start, []int64{t1}, []int64{100}, 1000)

	cAcc.InvokeFail(t, common.ErrAdminWitnessFailed, "stopVesting", owner)

	c.Invoke(t, stackitem.Null{}, "stopVesting", owner)

	// a stopped schedule never unlocks anything
	fastForwardTo(t, c.Executor, uint64(t1))
	require.Equal(t, int64(0), releasableOf(t, c, owner))
	cAcc.InvokeFail(t, vesting.ErrNothingToRelease, "release", owner)

	// repeated stop is a no-op
	c.Invoke(t, stackitem.Null{}, "stopVesting", owner)

	// the record is kept, deactivated
	c.Invoke(t, vestingItem(start, 1000, 0, []int64{t1}, []int64{100}, false), "vestingOf", owner)
}

func TestTransferVesting(t *testing.T) {
	e := newExecutor(t)
	tokenHash := deployTokenContract(t, e, e.CommitteeHash, 1_000_000)
	vestingHash := deployVestingContract(t, e, tokenHash)
	c := e.CommitteeInvoker(vestingHash)

	accA := c.NewAccount(t)
	accB := c.NewAccount(t)
	from := accA.ScriptHash()
	to := accB.ScriptHash()

	c.InvokeFail(t, vesting.ErrNoVesting, "transferVesting", from, to)

	start := int64(c.TopBlock(t).Timestamp)
	t1 := start + dayMS
	t2 := start + 2*dayMS
	defineSchedule(t, c, from, start, []int64{t1, t2}, []int64{25, 75}, 1000)

	c.WithSigners(accA).InvokeFail(t, common.ErrAdminWitnessFailed, "transferVesting", from, to)

	c.Invoke(t, stackitem.Null{}, "deposit", int64(1000))

	fastForwardTo(t, e, uint64(t1))
	c.WithSigners(accA).Invoke(t, stackitem.Null{}, "release", from)
	require.Equal(t, int64(250), tokenBalanceOf(t, e, tokenHash, from))

	// an occupied destination is rejected
	defineSchedule(t, c, to, start, []int64{t2}, []int64{100}, 50)
	c.InvokeFail(t, vesting.ErrAlreadyVested, "transferVesting", from, to)

	accC := c.NewAccount(t)
	dest := accC.ScriptHash()
	h := c.Invoke(t, stackitem.Null{}, "transferVesting", from, dest)
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "VestingTransferred", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(from.BytesBE()),
		stackitem.NewByteArray(dest.BytesBE()),
	}), aer.Events[0].Item)

	// the record moved as is, with the release history
	c.Invoke(t, vestingItem(start, 1000, 250, []int64{t1, t2}, []int64{25, 75}, true), "vestingOf", dest)

	s, err := c.TestInvoke(t, "vestingOf", from)
	require.NoError(t, err)
	fields := s.Top().Item().Value().([]stackitem.Item)
	total, err := fields[1].TryInteger()
	require.NoError(t, err)
	require.Equal(t, int64(0), total.Int64())

	c.WithSigners(accA).InvokeFail(t, vesting.ErrNothingToRelease, "release", from)

	// the new owner continues the schedule
	fastForwardTo(t, e, uint64(t2-1))
	c.WithSigners(accC).Invoke(t, stackitem.Null{}, "release", dest)
	require.Equal(t, int64(750), tokenBalanceOf(t, e, tokenHash, dest))
}

func TestPauseResume(t *testing.T) {
	e := newExecutor(t)
	tokenHash := deployTokenContract(t, e, e.CommitteeHash, 1_000_000)
	vestingHash := deployVestingContract(t, e, tokenHash)
	c := e.CommitteeInvoker(vestingHash)
	tokenInvoker := e.CommitteeInvoker(tokenHash)

	acc := c.NewAccount(t)
	owner := acc.ScriptHash()
	cAcc := c.WithSigners(acc)

	cAcc.InvokeFail(t, common.ErrAdminWitnessFailed, "pause")
	cAcc.InvokeFail(t, common.ErrAdminWitnessFailed, "resume")

	start := int64(c.TopBlock(t).Timestamp)
	t1 := start + dayMS
	defineSchedule(t, c, owner, start, []int64{t1}, []int64{100}, 1000)
	c.Invoke(t, stackitem.Null{}, "deposit", int64(1000))

	h := c.Invoke(t, stackitem.Null{}, "pause")
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Paused", aer.Events[0].Name)
	c.Invoke(t, true, "isPaused")

	// state-changing methods are gated
	fastForwardTo(t, e, uint64(t1))
	cAcc.InvokeFail(t, vesting.ErrPaused, "release", owner)
	c.InvokeFail(t, vesting.ErrPaused, "defineVesting",
		owner, start, []any{t1}, []any{int64(100)}, int64(5))
	c.InvokeFail(t, vesting.ErrPaused, "stopVesting", owner)
	c.InvokeFail(t, vesting.ErrPaused, "transferVesting", owner, owner)
	c.InvokeFail(t, vesting.ErrPaused, "deposit", int64(1))

	// deposits are not accepted either
	tokenInvoker.InvokeFail(t, "ABORT", "transfer", e.CommitteeHash, vestingHash, int64(1), nil)

	// read-only methods keep working
	c.Invoke(t, true, "isPaused")
	require.Equal(t, int64(1000), releasableOf(t, c, owner))

	// pausing twice is allowed
	c.Invoke(t, stackitem.Null{}, "pause")

	h = c.Invoke(t, stackitem.Null{}, "resume")
	aer = c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Resumed", aer.Events[0].Name)
	c.Invoke(t, false, "isPaused")

	cAcc.Invoke(t, stackitem.Null{}, "release", owner)
	require.Equal(t, int64(1000), tokenBalanceOf(t, e, tokenHash, owner))
}

func TestDeposit(t *testing.T) {
	e := newExecutor(t)
	tokenHash := deployTokenContract(t, e, e.CommitteeHash, 1_000_000)
	vestingHash := deployVestingContract(t, e, tokenHash)
	c := e.CommitteeInvoker(vestingHash)
	tokenInvoker := e.CommitteeInvoker(tokenHash)
	gasInvoker := e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas))

	acc := c.NewAccount(t)

	c.InvokeFail(t, "amount must be positive", "deposit", int64(0))
	c.WithSigners(acc).InvokeFail(t, common.ErrAdminWitnessFailed, "deposit", int64(100))

	// only the configured asset is accepted
	gasInvoker.InvokeFail(t, "ABORT", "transfer", e.CommitteeHash, vestingHash, int64(100), nil)

	// only the administrator funds the pool
	tokenInvoker.Invoke(t, true, "transfer", e.CommitteeHash, acc.ScriptHash(), int64(100), nil)
	tokenInvoker.WithSigners(acc).InvokeFail(t, "ABORT", "transfer",
		acc.ScriptHash(), vestingHash, int64(100), nil)

	h := c.Invoke(t, stackitem.Null{}, "deposit", int64(500))
	aer := c.CheckHalt(t, h)
	require.Equal(t, 2, len(aer.Events))
	require.Equal(t, "Transfer", aer.Events[0].Name)
	require.Equal(t, "Deposit", aer.Events[1].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(e.CommitteeHash.BytesBE()),
		stackitem.Make(500),
	}), aer.Events[1].Item)
	require.Equal(t, int64(500), tokenBalanceOf(t, e, tokenHash, vestingHash))

	// direct transfer from the administrator works as a deposit too
	tokenInvoker.Invoke(t, true, "transfer", e.CommitteeHash, vestingHash, int64(100), nil)
	require.Equal(t, int64(600), tokenBalanceOf(t, e, tokenHash, vestingHash))
}

func TestReentrancy(t *testing.T) {
	e := newExecutor(t)
	tokenHash := deployTokenContract(t, e, e.CommitteeHash, 1_000_000)
	vestingHash := deployVestingContract(t, e, tokenHash)
	reenterHash := deployReenterContract(t, e, vestingHash)
	c := e.CommitteeInvoker(vestingHash)

	start := int64(c.TopBlock(t).Timestamp)
	t1 := start + dayMS
	defineSchedule(t, c, reenterHash, start, []int64{t1, start + 2*dayMS}, []int64{50, 50}, 1000)
	c.Invoke(t, stackitem.Null{}, "deposit", int64(1000))

	fastForwardTo(t, e, uint64(t1))

	cRe := e.CommitteeInvoker(reenterHash)
	cRe.InvokeFail(t, vesting.ErrReentrancy, "claim")

	// the attack transaction rolled back in full
	require.Equal(t, int64(0), tokenBalanceOf(t, e, tokenHash, reenterHash))
	require.Equal(t, int64(1000), tokenBalanceOf(t, e, tokenHash, vestingHash))

	s, err := c.TestInvoke(t, "vestingOf", reenterHash)
	require.NoError(t, err)
	fields := s.Top().Item().Value().([]stackitem.Item)
	released, err := fields[2].TryInteger()
	require.NoError(t, err)
	require.Equal(t, int64(0), released.Int64())
}

func TestReentrancyBalanceCheck(t *testing.T) {
	e := newExecutor(t)
	reenterHash := deployReenterContract(t, e, util.Uint160{})
	vestingHash := deployVestingContract(t, e, reenterHash)
	c := e.CommitteeInvoker(vestingHash)

	acc := c.NewAccount(t)
	owner := acc.ScriptHash()

	start := int64(c.TopBlock(t).Timestamp)
	defineSchedule(t, c, owner, start, []int64{start + dayMS}, []int64{100}, 1000)

	fastForwardTo(t, e, uint64(start+dayMS))

	// the guard is already up when the pool balance is queried, a hostile
	// asset gets the same rejection as a hostile receiver
	c.WithSigners(acc).InvokeFail(t, vesting.ErrReentrancy, "release", owner)

	require.Equal(t, int64(1000), releasableOf(t, c, owner))
}

func TestViewAssets(t *testing.T) {
	e := newExecutor(t)
	tokenHash := deployTokenContract(t, e, e.CommitteeHash, 1_000_000)
	vestingHash := deployVestingContract(t, e, tokenHash)
	c := e.CommitteeInvoker(vestingHash)

	acc := c.NewAccount(t)
	owner := acc.ScriptHash()
	cAcc := c.WithSigners(acc)

	// an account with no schedule gets a zero state
	require.Equal(t, int64(0), releasableOf(t, c, owner))

	start := int64(c.TopBlock(t).Timestamp) + dayMS
	t1 := start + 30*dayMS
	t2 := start + 365*dayMS
	defineSchedule(t, c, owner, start, []int64{t1, t2}, []int64{25, 75}, 1000)
	c.Invoke(t, stackitem.Null{}, "deposit", int64(1000))

	expectState := func(releasable int64) {
		c.Invoke(t, stackitem.NewStruct([]stackitem.Item{
			stackitem.Make(releasable),
			stackitem.NewArray([]stackitem.Item{stackitem.Make(t1), stackitem.Make(t2)}),
		}), "viewAssets", owner)
	}

	expectState(0)

	fastForwardTo(t, e, uint64(t1-1))
	expectState(250)

	// the view and the release always agree
	cAcc.Invoke(t, stackitem.Null{}, "release", owner)
	require.Equal(t, int64(250), tokenBalanceOf(t, e, tokenHash, owner))
	expectState(0)

	fastForwardTo(t, e, uint64(t2-1))
	expectState(750)
}

func TestVestings(t *testing.T) {
	c, _ := newVestingInvoker(t)

	s, err := c.TestInvoke(t, "vestings")
	require.NoError(t, err)
	require.Equal(t, 0, len(iteratorToArray(s.Top().Value().(*storage.Iterator))))

	acc1 := c.NewAccount(t)
	acc2 := c.NewAccount(t)
	start := int64(c.TopBlock(t).Timestamp) + dayMS

	defineSchedule(t, c, acc1.ScriptHash(), start, []int64{start + dayMS}, []int64{100}, 500)
	defineSchedule(t, c, acc2.ScriptHash(), start, []int64{start + dayMS}, []int64{100}, 700)

	s, err = c.TestInvoke(t, "vestings")
	require.NoError(t, err)
	items := iteratorToArray(s.Top().Value().(*storage.Iterator))
	require.Equal(t, 2, len(items))

	got := make([][]byte, 0, len(items))
	for i := range items {
		b, err := items[i].TryBytes()
		require.NoError(t, err)
		got = append(got, b)
	}
	require.ElementsMatch(t, [][]byte{
		acc1.ScriptHash().BytesBE(),
		acc2.ScriptHash().BytesBE(),
	}, got)
}

func TestUpdate(t *testing.T) {
	e := newExecutor(t)
	tokenHash := deployTokenContract(t, e, e.CommitteeHash, 1_000_000)
	ctr := neotest.CompileFile(t, e.CommitteeHash, vestingPath, path.Join(vestingPath, "config.yml"))
	e.DeployContract(t, ctr, []any{e.CommitteeHash, tokenHash})
	c := e.CommitteeInvoker(ctr.Hash)

	nefBytes, err := ctr.NEF.Bytes()
	require.NoError(t, err)
	manifestBytes, err := json.Marshal(ctr.Manifest)
	require.NoError(t, err)

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, common.ErrAdminWitnessFailed, "update",
		nefBytes, manifestBytes, nil)

	c.InvokeFail(t, common.ErrAlreadyUpdated, "update", nefBytes, manifestBytes, nil)
}

/*
Package vesting implements Vesting contract which is deployed to N3 chain.

Vesting contract holds a pool of NEP-17 tokens and pays them out to accounts
according to per-account vesting schedules. A schedule grants a total amount
of assets that unlock in percent portions at fixed milestone moments, no
earlier than the schedule start. Schedules are managed by the contract
administrator set at deploy time, payouts are claimed by schedule owners
with the Release method.

The pool is funded with regular NEP-17 transfers from the administrator
account (or with the Deposit helper method), any other incoming transfer is
rejected. The administrator can suspend the whole contract with Pause and
lift the suspension with Resume, read-only methods keep working while the
contract is paused.

# Contract notifications

VestingDefined notification. This notification is produced when the
administrator registers a schedule for an account.

	VestingDefined:
	  - name: owner
	    type: Hash160
	  - name: total
	    type: Integer

TokensReleased notification. This notification is produced when unlocked
assets are paid out to a schedule owner.

	TokensReleased:
	  - name: owner
	    type: Hash160
	  - name: amount
	    type: Integer

VestingTransferred notification. This notification is produced when the
administrator moves a schedule to another account.

	VestingTransferred:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160

Deposit notification. This notification is produced when the pool is funded
through the NEP-17 payment callback.

	Deposit:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer

Paused notification. This notification is produced when the administrator
suspends the contract. It carries no parameters.

	Paused

Resumed notification. This notification is produced when the administrator
lifts the suspension. It carries no parameters.

	Resumed
*/
package vesting

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'a' -> interop.Hash160
   script hash of the contract administrator
 - 't' -> interop.Hash160
   script hash of the NEP-17 token the contract pays vested assets in
 - 'p' -> bool
   flag marking the contract as paused, absent when the contract operates
 - 'g' -> bool
   release guard flag, present only while a release payout is in progress
 - v<interop.Hash160> -> std.Serialize(Vesting)
   vesting schedules of all accounts (here Vesting is a structure defined
   in current package)

# Vesting
Contract stores one schedule per account. Schedule records survive stops
(deactivated records stay in storage) and move between accounts as is on
TransferVesting.
*/

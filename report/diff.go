package report

import (
	"github.com/shopspring/decimal"

	"github.com/quill-fi/quill-tooling/snapshot"
)

// Entities are matched across snapshots by identity: branches by index, troves
// by ID within their branch, owners by exact address. Deltas are new minus old,
// both sides normalised with the new snapshot's constants. Entities present
// only in the old snapshot are not reported.

// ratioDelta is the change of a ratio. A side beyond the ratio ceiling has no
// meaningful numeric change.
type ratioDelta struct {
	Change       decimal.Decimal
	NewAvailable bool
	OldAvailable bool
}

func diffRatio(n, o snapshot.Ratio) ratioDelta {
	return ratioDelta{
		Change:       n.Value.Sub(o.Value),
		NewAvailable: n.Available(),
		OldAvailable: o.Available(),
	}
}

type branchDelta struct {
	Troves       decimal.Decimal
	Debt         decimal.Decimal
	Collateral   decimal.Decimal
	TCR          ratioDelta
	Price        decimal.Decimal
	SPDeposits   decimal.Decimal
	ActiveColl   decimal.Decimal
	ActiveDebt   decimal.Decimal
	DefaultColl  decimal.Decimal
	DefaultDebt  decimal.Decimal
	Surplus      decimal.Decimal
	SPColl       decimal.Decimal
	YieldOwed    decimal.Decimal
	YieldPending decimal.Decimal
}

// diffBranch compares nb against the branch with the same index in oldSnap.
// A branch missing from oldSnap is compared against zero.
func diffBranch(oldSnap, newSnap *snapshot.ProtocolSnapshot, nb snapshot.Branch) branchDelta {
	ob, _ := oldSnap.Branch(nb.Index)
	cfg := newSnap.ProtocolConfig

	amount := func(n, o decimal.Decimal) decimal.Decimal { return cfg.Amount(n.Sub(o)) }
	tokens := func(n, o decimal.Decimal) decimal.Decimal { return nb.Tokens(n.Sub(o)) }

	return branchDelta{
		Troves:       decimal.NewFromInt(nb.TotalTroves - ob.TotalTroves),
		Debt:         amount(nb.TotalDebt, ob.TotalDebt),
		Collateral:   tokens(nb.TotalCollateral, ob.TotalCollateral),
		TCR:          diffRatio(cfg.TCR(nb), cfg.TCR(ob)),
		Price:        amount(nb.LastGoodPrice, ob.LastGoodPrice),
		SPDeposits:   amount(nb.StabilityPool.TotalDeposits, ob.StabilityPool.TotalDeposits),
		ActiveColl:   tokens(nb.ActivePool.TotalCollateral, ob.ActivePool.TotalCollateral),
		ActiveDebt:   amount(nb.ActivePool.BoldDebt, ob.ActivePool.BoldDebt),
		DefaultColl:  tokens(nb.DefaultPool.TotalCollateral, ob.DefaultPool.TotalCollateral),
		DefaultDebt:  amount(nb.DefaultPool.BoldDebt, ob.DefaultPool.BoldDebt),
		Surplus:      amount(nb.CollSurplusPool.TotalSurplus, ob.CollSurplusPool.TotalSurplus),
		SPColl:       tokens(nb.StabilityPool.CollBalance, ob.StabilityPool.CollBalance),
		YieldOwed:    amount(nb.StabilityPool.YieldGainsOwed, ob.StabilityPool.YieldGainsOwed),
		YieldPending: amount(nb.StabilityPool.YieldGainsPending, ob.StabilityPool.YieldGainsPending),
	}
}

type troveDelta struct {
	// New is set for troves absent from the old branch; they carry no deltas.
	New       bool
	OldStatus string
	Debt      decimal.Decimal
	Coll      decimal.Decimal
	ICR       ratioDelta
	AIR       decimal.Decimal
}

// StatusChanged reports whether the trove existed before with another status.
func (d troveDelta) StatusChanged(current string) bool {
	return !d.New && d.OldStatus != current
}

func diffTrove(oldSnap, newSnap *snapshot.ProtocolSnapshot, nb snapshot.Branch, nt snapshot.Trove) troveDelta {
	ob, ok := oldSnap.Branch(nb.Index)
	if !ok {
		return troveDelta{New: true}
	}
	ot, ok := ob.Trove(nt.TroveID)
	if !ok {
		return troveDelta{New: true}
	}

	cfg := newSnap.ProtocolConfig

	return troveDelta{
		OldStatus: ot.Status,
		Debt:      cfg.Amount(nt.EntireDebt.Sub(ot.EntireDebt)),
		Coll:      nb.Tokens(nt.EntireColl.Sub(ot.EntireColl)),
		ICR:       diffRatio(cfg.ICR(nb, nt), cfg.ICR(nb, ot)),
		AIR:       cfg.Rate(nt.AnnualInterestRate.Sub(ot.AnnualInterestRate)),
	}
}

type ownerDelta struct {
	USDQ decimal.Decimal
	// Collateral is keyed by branch index. Branches the owner holds nothing of
	// in the new snapshot have no entry.
	Collateral map[int64]decimal.Decimal
}

func diffOwner(oldSnap, newSnap *snapshot.ProtocolSnapshot, no snapshot.UserBalance) ownerDelta {
	oo, _ := oldSnap.Owner(no.Address)
	d := ownerDelta{
		USDQ:       newSnap.ProtocolConfig.Amount(no.USDQBalance.Sub(oo.USDQBalance)),
		Collateral: make(map[int64]decimal.Decimal),
	}

	for _, b := range newSnap.Branches {
		nc, ok := no.Collateral(b.Index)
		if !ok {
			continue
		}
		oc, _ := oo.Collateral(b.Index)
		d.Collateral[b.Index] = b.Tokens(nc.Balance.Sub(oc.Balance))
	}

	return d
}

type headerDelta struct {
	Supply   decimal.Decimal
	Branches int64
	Seconds  int64
	Blocks   int64
}

func diffHeader(oldSnap, newSnap *snapshot.ProtocolSnapshot) headerDelta {
	return headerDelta{
		Supply:   newSnap.ProtocolConfig.Amount(newSnap.TotalSupply.Sub(oldSnap.TotalSupply)),
		Branches: newSnap.NumberBranches - oldSnap.NumberBranches,
		Seconds:  newSnap.Timestamp - oldSnap.Timestamp,
		Blocks:   newSnap.Block - oldSnap.Block,
	}
}

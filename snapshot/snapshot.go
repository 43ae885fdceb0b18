// Package snapshot models a point-in-time capture of the lending protocol state
// as written by the GetStateSnapshot forge script.
//
// Every monetary, ratio and precision field is kept as an arbitrary precision
// [decimal.Decimal] holding the raw on-chain fixed-point integer. Values are only
// scaled for display through the helpers in normalize.go.
package snapshot

import (
	"github.com/shopspring/decimal"
)

// ProtocolSnapshot is the root of a snapshot document. It is never mutated after
// parsing.
type ProtocolSnapshot struct {
	TotalSupply    decimal.Decimal `json:"totalSupply"`
	NumberBranches int64           `json:"numberBranches"`
	Timestamp      int64           `json:"timestamp"`
	Block          int64           `json:"block"`
	ProtocolConfig ProtocolConfig  `json:"protocolConfig"`
	Branches       []Branch        `json:"branches"`
	Owners         []UserBalance   `json:"owners"`
}

// ProtocolConfig holds the fixed-point constants used to normalise raw values.
type ProtocolConfig struct {
	DecimalPrecision   decimal.Decimal `json:"decimalPrecision"`
	OnePercent         decimal.Decimal `json:"onePercent"`
	OneHundredPercent  decimal.Decimal `json:"oneHundredPercent"`
	ETHGasCompensation decimal.Decimal `json:"ethGasCompensation"`
}

// Branch is one collateral market. Branches are identified by Index.
type Branch struct {
	Index                            int64           `json:"index"`
	Collateral                       string          `json:"collateral"`
	Symbol                           string          `json:"symbol"`
	Decimals                         int32           `json:"decimals"`
	TotalTroves                      int64           `json:"totalTroves"`
	TotalDebt                        decimal.Decimal `json:"totalDebt"`
	TotalCollateral                  decimal.Decimal `json:"totalCollateral"`
	TCR                              decimal.Decimal `json:"TCR"`
	TotalSPDeposits                  decimal.Decimal `json:"totalSPDeposits"`
	ShutdownTime                     int64           `json:"shutdownTime"`
	CCR                              decimal.Decimal `json:"CCR"`
	MCR                              decimal.Decimal `json:"MCR"`
	SCR                              decimal.Decimal `json:"SCR"`
	LiquidationPenaltySP             decimal.Decimal `json:"liquidationPenaltySP"`
	LiquidationPenaltyRedistribution decimal.Decimal `json:"liquidationPenaltyRedistribution"`
	MinDebt                          decimal.Decimal `json:"minDebt"`
	SPYieldSplit                     decimal.Decimal `json:"SPYieldSplit"`
	MinAnnualInterestRate            decimal.Decimal `json:"minAnnualInterestRate"`
	LastGoodPrice                    decimal.Decimal `json:"lastGoodPrice"`
	Troves                           []Trove         `json:"troves"`
	ActivePool                       ActivePool      `json:"activePool"`
	DefaultPool                      DefaultPool     `json:"defaultPool"`
	CollSurplusPool                  CollSurplusPool `json:"collSurplusPool"`
	StabilityPool                    StabilityPool   `json:"stabilityPool"`
}

// Trove is a single borrowing position. Troves are identified by TroveID, the
// string form of a uint256.
type Trove struct {
	TroveID            string          `json:"troveId"`
	EntireDebt         decimal.Decimal `json:"entireDebt"`
	EntireColl         decimal.Decimal `json:"entireColl"`
	Status             string          `json:"status"`
	ICR                decimal.Decimal `json:"ICR"`
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate"`
	Owner              string          `json:"owner"`
}

type ActivePool struct {
	TotalCollateral   decimal.Decimal `json:"totalCollateral"`
	BoldDebt          decimal.Decimal `json:"boldDebt"`
	LastAggUpdateTime int64           `json:"lastAggUpdateTime"`
}

type DefaultPool struct {
	TotalCollateral decimal.Decimal `json:"totalCollateral"`
	BoldDebt        decimal.Decimal `json:"boldDebt"`
}

type CollSurplusPool struct {
	TotalSurplus decimal.Decimal `json:"totalSurplus"`
}

type StabilityPool struct {
	TotalDeposits     decimal.Decimal `json:"totalDeposits"`
	YieldGainsPending decimal.Decimal `json:"yieldGainsPending"`
	YieldGainsOwed    decimal.Decimal `json:"yieldGainsOwed"`
	CollBalance       decimal.Decimal `json:"collBalance"`
}

// UserBalance is the stablecoin and collateral holdings of one address.
// Owners are identified by the exact Address string.
type UserBalance struct {
	Address     string              `json:"address"`
	USDQBalance decimal.Decimal     `json:"usdqBalance"`
	Collaterals []CollateralBalance `json:"collaterals"`
}

// CollateralBalance is a holding of the collateral token of the branch at Index.
type CollateralBalance struct {
	Index   int64           `json:"index"`
	Symbol  string          `json:"symbol"`
	Balance decimal.Decimal `json:"balance"`
}

// Branch returns the branch with the given index.
func (s *ProtocolSnapshot) Branch(index int64) (Branch, bool) {
	for _, b := range s.Branches {
		if b.Index == index {
			return b, true
		}
	}

	return Branch{}, false
}

// Owner returns the balance entry whose address matches exactly.
func (s *ProtocolSnapshot) Owner(address string) (UserBalance, bool) {
	for _, o := range s.Owners {
		if o.Address == address {
			return o, true
		}
	}

	return UserBalance{}, false
}

// Trove returns the trove with the given ID.
func (b Branch) Trove(id string) (Trove, bool) {
	for _, t := range b.Troves {
		if t.TroveID == id {
			return t, true
		}
	}

	return Trove{}, false
}

// Collateral returns the owner's holding for the branch at branchIndex.
func (u UserBalance) Collateral(branchIndex int64) (CollateralBalance, bool) {
	for _, c := range u.Collaterals {
		if c.Index == branchIndex {
			return c, true
		}
	}

	return CollateralBalance{}, false
}

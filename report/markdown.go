package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quill-fi/quill-tooling/snapshot"
)

// markdownReport is the template context of the "snapshot" and "diff"
// templates. Every field is pre-formatted.
type markdownReport struct {
	TotalSupply    string
	NumberBranches string
	Timestamp      string
	Block          string
	Overview       *table
	Branches       []markdownBranch
	Owners         *table
	Liquidatable   *table
}

// markdownBranch is the template context of the "branch" template.
type markdownBranch struct {
	Index             int64
	Collateral        string
	Symbol            string
	TotalTroves       string
	TotalDebt         string
	TotalCollateral   string
	TCR               string
	ShutdownTime      string
	LastGoodPrice     string
	ActiveColl        string
	ActiveDebt        string
	LastAggUpdateTime string
	DefaultColl       string
	DefaultDebt       string
	Surplus           string
	SPDeposits        string
	YieldPending      string
	YieldOwed         string
	SPColl            string
	Troves            *table
	Details           []markdownTrove
}

type markdownTrove struct {
	ID     string
	Debt   string
	Coll   string
	Status string
	ICR    string
	AIR    string
	Owner  string
}

// Markdown renders a single snapshot as a Markdown document.
func (r *Renderer) Markdown(s *snapshot.ProtocolSnapshot) (string, error) {
	if err := s.Validate(); err != nil {
		return "", fmt.Errorf("cannot render snapshot: %w", err)
	}
	cfg := s.ProtocolConfig

	rep := markdownReport{
		TotalSupply:    fixed(cfg.Amount(s.TotalSupply)) + " USDQ",
		NumberBranches: itoa(s.NumberBranches),
		Timestamp:      itoa(s.Timestamp),
		Block:          itoa(s.Block),
		Overview: &table{Header: []string{
			"#", "Collateral", "Total Troves", "Total Debt (USDQ)", "Total Collateral", "TCR", "Price (USD)", "SP Deposits",
		}},
	}

	for _, b := range s.Branches {
		rep.Overview.append(
			itoa(b.Index),
			b.Symbol,
			itoa(b.TotalTroves),
			fixed(cfg.Amount(b.TotalDebt)),
			fixed(b.Tokens(b.TotalCollateral)),
			plainRatio(cfg.TCR(b)),
			fixed(cfg.Amount(b.LastGoodPrice)),
			fixed(cfg.Amount(b.StabilityPool.TotalDeposits)),
		)
		rep.Branches = append(rep.Branches, markdownBranchOf(cfg, b))
	}

	if len(s.Owners) > 0 {
		rep.Owners = r.markdownOwners(s, nil)
	}

	if list := s.Liquidatable(); len(list) > 0 {
		rep.Liquidatable = &table{Header: []string{"Branch", "Trove ID", "ICR"}}
		for _, l := range list {
			rep.Liquidatable.append(itoa(l.Branch), l.TroveID, fixed(l.ICR))
		}
	}

	return r.execute("snapshot", rep)
}

func markdownBranchOf(cfg snapshot.ProtocolConfig, b snapshot.Branch) markdownBranch {
	mb := markdownBranch{
		Index:             b.Index,
		Collateral:        b.Collateral,
		Symbol:            b.Symbol,
		TotalTroves:       itoa(b.TotalTroves),
		TotalDebt:         fixed(cfg.Amount(b.TotalDebt)) + " USDQ",
		TotalCollateral:   fixed(b.Tokens(b.TotalCollateral)) + " " + b.Symbol,
		TCR:               plainRatio(cfg.TCR(b)),
		ShutdownTime:      itoa(b.ShutdownTime),
		LastGoodPrice:     fixed(cfg.Amount(b.LastGoodPrice)) + " USD",
		ActiveColl:        fixed(b.Tokens(b.ActivePool.TotalCollateral)) + " " + b.Symbol,
		ActiveDebt:        fixed(cfg.Amount(b.ActivePool.BoldDebt)) + " USDQ",
		LastAggUpdateTime: itoa(b.ActivePool.LastAggUpdateTime),
		DefaultColl:       fixed(b.Tokens(b.DefaultPool.TotalCollateral)) + " " + b.Symbol,
		DefaultDebt:       fixed(cfg.Amount(b.DefaultPool.BoldDebt)) + " USDQ",
		Surplus:           fixed(cfg.Amount(b.CollSurplusPool.TotalSurplus)) + " USDQ",
		SPDeposits:        fixed(cfg.Amount(b.StabilityPool.TotalDeposits)) + " USDQ",
		YieldPending:      fixed(cfg.Amount(b.StabilityPool.YieldGainsPending)) + " USDQ",
		YieldOwed:         fixed(cfg.Amount(b.StabilityPool.YieldGainsOwed)) + " USDQ",
		SPColl:            fixed(b.Tokens(b.StabilityPool.CollBalance)) + " " + b.Symbol,
	}
	if len(b.Troves) == 0 {
		return mb
	}

	mb.Troves = &table{Header: []string{
		"Trove ID", "Entire Debt (USDQ)", "Entire Collateral", "Status", "ICR", "Annual Interest Rate",
	}}
	for _, t := range b.Troves {
		icr := plainRatio(cfg.ICR(b, t))
		air := fixed(cfg.Rate(t.AnnualInterestRate))
		mb.Troves.append(
			shortID(t.TroveID, 6),
			fixed(cfg.Amount(t.EntireDebt)),
			fixed(b.Tokens(t.EntireColl)),
			t.Status,
			icr,
			air,
		)
		mb.Details = append(mb.Details, markdownTrove{
			ID:     t.TroveID,
			Debt:   fixed(cfg.Amount(t.EntireDebt)) + " USDQ",
			Coll:   fixed(b.Tokens(t.EntireColl)) + " " + b.Symbol,
			Status: t.Status,
			ICR:    icr,
			AIR:    air + "%",
			Owner:  t.Owner,
		})
	}

	return mb
}

// markdownOwners builds the owners table. With oldSnap set every balance
// carries its change.
func (r *Renderer) markdownOwners(s, oldSnap *snapshot.ProtocolSnapshot) *table {
	cfg := s.ProtocolConfig

	t := &table{Header: []string{"Owner", "Alias", "USDQ"}}
	for _, b := range s.Branches {
		t.Header = append(t.Header, b.Symbol)
	}

	for _, o := range s.Owners {
		var d ownerDelta
		if oldSnap != nil {
			d = diffOwner(oldSnap, s, o)
		}

		row := []string{
			o.Address,
			r.actors.Alias(o.Address),
			withDelta(fixed(cfg.Amount(o.USDQBalance)), markdownDelta(d.USDQ, 2)),
		}
		for _, b := range s.Branches {
			c, ok := o.Collateral(b.Index)
			if !ok {
				row = append(row, notAvailable)
				continue
			}
			row = append(row, withDelta(fixed(b.Tokens(c.Balance)), markdownDelta(d.Collateral[b.Index], 2)))
		}
		t.append(row...)
	}

	return t
}

// MarkdownDiff renders the changes between two snapshots as a Markdown document.
func (r *Renderer) MarkdownDiff(oldSnap, newSnap *snapshot.ProtocolSnapshot) (string, error) {
	if err := validatePair(oldSnap, newSnap); err != nil {
		return "", err
	}
	cfg := newSnap.ProtocolConfig
	hd := diffHeader(oldSnap, newSnap)

	rep := markdownReport{
		TotalSupply:    withDelta(fixed(cfg.Amount(newSnap.TotalSupply))+" USDQ", markdownDelta(hd.Supply, 2)),
		NumberBranches: withDelta(itoa(newSnap.NumberBranches), markdownDelta(decimal.NewFromInt(hd.Branches), 0)),
		Timestamp:      itoa(newSnap.Timestamp),
		Block:          itoa(newSnap.Block),
		Overview: &table{Header: []string{
			"#", "Collateral", "Total Troves", "Total Debt (USDQ)", "Total Collateral", "TCR", "Price (USD)", "SP Deposits",
		}},
	}
	if hd.Seconds != 0 {
		rep.Timestamp += fmt.Sprintf(" (time moved forward by %d seconds)", hd.Seconds)
	}
	if hd.Blocks != 0 {
		rep.Block += fmt.Sprintf(" (block moved forward by %d)", hd.Blocks)
	}

	for _, b := range newSnap.Branches {
		d := diffBranch(oldSnap, newSnap, b)
		tcrDelta := markdownRatioDelta(d.TCR)

		rep.Overview.append(
			itoa(b.Index),
			b.Symbol,
			withDelta(itoa(b.TotalTroves), markdownDelta(d.Troves, 0)),
			withDelta(fixed(cfg.Amount(b.TotalDebt)), markdownDelta(d.Debt, 2)),
			withDelta(fixed(b.Tokens(b.TotalCollateral)), markdownDelta(d.Collateral, 2)),
			withDelta(plainRatio(cfg.TCR(b)), tcrDelta),
			withDelta(fixed(cfg.Amount(b.LastGoodPrice)), markdownDelta(d.Price, 2)),
			withDelta(fixed(cfg.Amount(b.StabilityPool.TotalDeposits)), markdownDelta(d.SPDeposits, 2)),
		)
		rep.Branches = append(rep.Branches, markdownDiffBranchOf(oldSnap, newSnap, b, d, tcrDelta))
	}

	if len(newSnap.Owners) > 0 {
		rep.Owners = r.markdownOwners(newSnap, oldSnap)
	}

	return r.execute("diff", rep)
}

func markdownDiffBranchOf(oldSnap, newSnap *snapshot.ProtocolSnapshot, b snapshot.Branch, d branchDelta, tcrDelta string) markdownBranch {
	cfg := newSnap.ProtocolConfig
	mb := markdownBranchOf(cfg, b)
	mb.Details = nil

	mb.TotalTroves = withDelta(mb.TotalTroves, markdownDelta(d.Troves, 0))
	mb.TotalDebt = withDelta(mb.TotalDebt, markdownDelta(d.Debt, 2))
	mb.TotalCollateral = withDelta(mb.TotalCollateral, markdownDelta(d.Collateral, 2))
	mb.TCR = withDelta(mb.TCR, tcrDelta)
	mb.LastGoodPrice = withDelta(mb.LastGoodPrice, markdownDelta(d.Price, 2))
	mb.ActiveColl = withDelta(mb.ActiveColl, markdownDelta(d.ActiveColl, 2))
	mb.ActiveDebt = withDelta(mb.ActiveDebt, markdownDelta(d.ActiveDebt, 2))
	mb.DefaultColl = withDelta(mb.DefaultColl, markdownDelta(d.DefaultColl, 2))
	mb.DefaultDebt = withDelta(mb.DefaultDebt, markdownDelta(d.DefaultDebt, 2))
	mb.Surplus = withDelta(mb.Surplus, markdownDelta(d.Surplus, 2))
	mb.SPDeposits = withDelta(mb.SPDeposits, markdownDelta(d.SPDeposits, 2))
	mb.YieldPending = withDelta(mb.YieldPending, markdownDelta(d.YieldPending, 2))
	mb.YieldOwed = withDelta(mb.YieldOwed, markdownDelta(d.YieldOwed, 2))
	mb.SPColl = withDelta(mb.SPColl, markdownDelta(d.SPColl, 2))

	if mb.Troves == nil {
		return mb
	}

	for i, t := range b.Troves {
		td := diffTrove(oldSnap, newSnap, b, t)
		row := mb.Troves.Rows[i]
		if td.New {
			row[0] = "**" + row[0] + "** (new)"
		}
		row[1] = withDelta(row[1], markdownDelta(td.Debt, 2))
		row[2] = withDelta(row[2], markdownDelta(td.Coll, 2))
		if td.StatusChanged(t.Status) {
			row[3] += " (was " + td.OldStatus + ")"
		}
		row[4] = withDelta(row[4], markdownRatioDelta(td.ICR))
		row[5] = withDelta(row[5], markdownDelta(td.AIR, 2))
	}

	return mb
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}

	return sb.String(), nil
}

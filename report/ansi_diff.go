package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/quill-fi/quill-tooling/snapshot"
)

// ANSIDiff renders the changes between two snapshots as a terminal report.
// Values shown are those of newSnap, each followed by its change since oldSnap.
func (r *Renderer) ANSIDiff(oldSnap, newSnap *snapshot.ProtocolSnapshot) (string, error) {
	if err := validatePair(oldSnap, newSnap); err != nil {
		return "", err
	}

	w := ansiWriter{p: r.palette, cfg: newSnap.ProtocolConfig}
	w.diffHeader(oldSnap, newSnap)
	w.diffOverview(oldSnap, newSnap)
	for _, b := range newSnap.Branches {
		w.diffBranch(oldSnap, newSnap, b)
	}
	if len(newSnap.Owners) > 0 {
		w.diffOwners(oldSnap, newSnap, r.actors.Alias)
	}

	return w.String(), nil
}

func (w *ansiWriter) diffHeader(oldSnap, newSnap *snapshot.ProtocolSnapshot) {
	p := w.p
	d := diffHeader(oldSnap, newSnap)

	w.printf("%s\n\n", p.Bold("Protocol Diff Report"))

	w.printf("  %s %s USDQ", p.Bold("Total Supply:       "), fixed(w.cfg.Amount(newSnap.TotalSupply)))
	if d.Supply.Sign() != 0 {
		w.printf(" %s", w.p.unitDelta(d.Supply, 2, "USDQ"))
	}
	w.printf("\n  %s %s", p.Bold("Number of Branches: "), p.Yellow(itoa(newSnap.NumberBranches)))
	if d.Branches != 0 {
		w.printf(" %s", w.p.delta(decimal.NewFromInt(d.Branches), 0, ""))
	}
	w.printf("\n  %s %d", p.Bold("Timestamp:          "), newSnap.Timestamp)
	if d.Seconds != 0 {
		w.printf(" (time moved forward by %s seconds)", p.Cyan(itoa(d.Seconds)))
	}
	w.printf("\n  %s %d", p.Bold("Block Number:       "), newSnap.Block)
	if d.Blocks != 0 {
		w.printf(" (block moved forward by %s)", p.Cyan(itoa(d.Blocks)))
	}
	w.printf("\n\n")
}

func (w *ansiWriter) diffOverview(oldSnap, newSnap *snapshot.ProtocolSnapshot) {
	p, cfg := w.p, w.cfg
	w.printf("  %s\n\n", p.Underline("Overview"))

	t := table{Header: []string{
		p.Bold("  #"),
		p.Bold("Collateral"),
		p.Bold("Total Troves"), "",
		p.Bold("Debt (USDQ)"), "",
		p.Bold("Collateral"), "",
		p.Bold("TCR"), "",
		p.Bold("Price (USD)"), "",
		p.Bold("SP Deposits"), "",
	}}
	for _, b := range newSnap.Branches {
		d := diffBranch(oldSnap, newSnap, b)
		t.append(
			"  "+itoa(b.Index),
			p.Cyan(b.Symbol),
			itoa(b.TotalTroves), p.delta(d.Troves, 0, " "),
			fixed(cfg.Amount(b.TotalDebt)), p.delta(d.Debt, 2, " "),
			fixed(b.Tokens(b.TotalCollateral)), p.delta(d.Collateral, 2, " "),
			plainRatio(cfg.TCR(b)), p.ratioDelta(d.TCR, " "),
			fixed(cfg.Amount(b.LastGoodPrice)), p.delta(d.Price, 2, " "),
			fixed(cfg.Amount(b.StabilityPool.TotalDeposits)), p.delta(d.SPDeposits, 2, " "),
		)
	}
	w.WriteString(ansiTable(t))
}

func (w *ansiWriter) diffBranch(oldSnap, newSnap *snapshot.ProtocolSnapshot, b snapshot.Branch) {
	p, cfg := w.p, w.cfg
	d := diffBranch(oldSnap, newSnap, b)

	w.printf("\n%s\n\n", p.Underline(p.Bold(fmt.Sprintf("Branch %d: %s (%s)", b.Index, b.Collateral, b.Symbol))))

	w.printf("  %s\n\n", p.Underline("Overall"))
	w.printf("    %s %s", p.Bold("Troves:     "), withDelta(itoa(b.TotalTroves), p.delta(d.Troves, 0, "")))
	w.printf("\n    %s %s", p.Bold("Debt:       "), withDelta(p.Yellow(fixed(cfg.Amount(b.TotalDebt)))+" USDQ", p.delta(d.Debt, 2, "")))
	w.printf("\n    %s %s", p.Bold("Collateral: "), withDelta(p.Yellow(fixed(b.Tokens(b.TotalCollateral)))+" "+b.Symbol, p.delta(d.Collateral, 2, "")))
	w.printf("\n    %s %s", p.Bold("TCR:        "), withDelta(p.ratio(cfg.TCR(b)), p.ratioDelta(d.TCR, "")))
	w.printf("\n    %s %s", p.Bold("Price:      "), withDelta(fixed(cfg.Amount(b.LastGoodPrice))+" USD", p.delta(d.Price, 2, "")))
	w.printf("\n\n  %s\n\n", p.Underline("Pools"))

	pools := table{Header: []string{
		p.Bold("    ActivePool"), "", "",
		p.Bold("DefaultPool"), "", "",
		p.Bold("CollSurplusPool"), "", "",
		p.Bold("StabilityPool"), "", "",
	}}
	pools.append("", "", "", "", "", "", "", "", "", "", "", "")
	pools.append(
		p.Italic("    Collateral"), fixed(b.Tokens(b.ActivePool.TotalCollateral)), p.delta(d.ActiveColl, 2, " "),
		p.Italic("Collateral"), fixed(b.Tokens(b.DefaultPool.TotalCollateral)), p.delta(d.DefaultColl, 2, " "),
		p.Italic("Collateral"), fixed(cfg.Amount(b.CollSurplusPool.TotalSurplus)), p.delta(d.Surplus, 2, " "),
		p.Italic("Collateral"), fixed(b.Tokens(b.StabilityPool.CollBalance)), p.delta(d.SPColl, 2, " "),
	)
	pools.append(
		p.Italic("    Debt"), fixed(cfg.Amount(b.ActivePool.BoldDebt)), p.delta(d.ActiveDebt, 2, " "),
		p.Italic("Debt"), fixed(cfg.Amount(b.DefaultPool.BoldDebt)), p.delta(d.DefaultDebt, 2, " "),
		"", "", "",
		p.Italic("Deposits"), fixed(cfg.Amount(b.StabilityPool.TotalDeposits)), p.delta(d.SPDeposits, 2, " "),
	)
	pools.append("", "", "", "", "", "", "", "", "",
		p.Italic("Yield Gains Owed"), fixed(cfg.Amount(b.StabilityPool.YieldGainsOwed)), p.delta(d.YieldOwed, 2, " "))
	pools.append("", "", "", "", "", "", "", "", "",
		p.Italic("Yield Gains Pending"), fixed(cfg.Amount(b.StabilityPool.YieldGainsPending)), p.delta(d.YieldPending, 2, " "))
	w.WriteString(ansiTable(pools))

	w.printf("\n  %s\n\n", p.Underline("Troves List"))
	if len(b.Troves) == 0 {
		w.printf("    %s\n", p.Italic(p.Red("No troves available.")))
		return
	}

	troves := table{Header: []string{
		p.Bold("    Trove ID"),
		p.Bold("Owner"),
		p.Bold("Debt (USDQ)"), "",
		p.Bold("Coll (" + b.Symbol + ")"), "",
		p.Bold("Status"),
		p.Bold("ICR"), "",
		p.Bold("AIR (%)"), "",
	}}
	for _, t := range b.Troves {
		td := diffTrove(oldSnap, newSnap, b, t)

		id := p.Cyan("    " + shortID(t.TroveID, 8))
		if td.New {
			id = p.Green("  " + shortID(t.TroveID, 8))
		}
		status := t.Status
		if td.StatusChanged(t.Status) {
			status += p.Red(" (" + td.OldStatus + ")")
		}

		troves.append(
			id,
			p.Cyan(t.Owner),
			fixed(cfg.Amount(t.EntireDebt)), p.delta(td.Debt, 2, " "),
			fixed(b.Tokens(t.EntireColl)), p.delta(td.Coll, 2, " "),
			status,
			p.ratio(cfg.ICR(b, t)), p.ratioDelta(td.ICR, " "),
			fixed(cfg.Rate(t.AnnualInterestRate)), p.delta(td.AIR, 2, " "),
		)
	}
	w.WriteString(ansiTable(troves))
}

func (w *ansiWriter) diffOwners(oldSnap, newSnap *snapshot.ProtocolSnapshot, alias func(string) string) {
	p := w.p
	w.printf("\n%s\n\n", p.Underline(p.Bold("Owners Balances")))

	t := table{Header: []string{p.Bold("  Owner"), p.Bold("Alias"), p.Bold("USDQ"), ""}}
	for _, b := range newSnap.Branches {
		t.Header = append(t.Header, p.Bold(b.Symbol), "")
	}

	for _, o := range newSnap.Owners {
		d := diffOwner(oldSnap, newSnap, o)
		row := []string{
			p.Cyan("  " + o.Address),
			alias(o.Address),
			fixed(w.cfg.Amount(o.USDQBalance)),
			p.delta(d.USDQ, 2, ""),
		}
		for _, b := range newSnap.Branches {
			c, ok := o.Collateral(b.Index)
			if !ok {
				row = append(row, notAvailable, "")
				continue
			}
			row = append(row, fixed(b.Tokens(c.Balance)), p.delta(d.Collateral[b.Index], 2, ""))
		}
		t.append(row...)
	}
	w.WriteString(ansiTable(t))
}

package report

import (
	"fmt"
	"strings"

	"github.com/quill-fi/quill-tooling/snapshot"
)

// ANSI renders a single snapshot as a terminal report. Nothing is rendered if
// the snapshot lacks its precision constants.
func (r *Renderer) ANSI(s *snapshot.ProtocolSnapshot) (string, error) {
	if err := s.Validate(); err != nil {
		return "", fmt.Errorf("cannot render snapshot: %w", err)
	}

	w := ansiWriter{p: r.palette, cfg: s.ProtocolConfig}
	w.header(s)
	w.overview(s)
	for _, b := range s.Branches {
		w.branch(b)
	}
	if len(s.Owners) > 0 {
		w.owners(s, r.actors.Alias)
	}
	w.liquidatable(s)

	return w.String(), nil
}

type ansiWriter struct {
	strings.Builder

	p   palette
	cfg snapshot.ProtocolConfig
}

func (w *ansiWriter) printf(format string, args ...any) {
	fmt.Fprintf(&w.Builder, format, args...)
}

func (w *ansiWriter) header(s *snapshot.ProtocolSnapshot) {
	p := w.p
	w.printf("%s\n\n", p.Bold("Protocol Snapshot Report"))
	w.printf("  %s %s USDQ\n", p.Bold("Total Supply:       "), p.Green(fixed(w.cfg.Amount(s.TotalSupply))))
	w.printf("  %s %s\n", p.Bold("Number of Branches: "), p.Yellow(itoa(s.NumberBranches)))
	w.printf("  %s %d\n", p.Bold("Timestamp:          "), s.Timestamp)
	w.printf("  %s %d\n\n", p.Bold("Block Number:       "), s.Block)
}

func (w *ansiWriter) overview(s *snapshot.ProtocolSnapshot) {
	p := w.p
	w.printf("  %s\n\n", p.Underline("Overview"))

	t := table{Header: []string{
		p.Bold("    #"),
		p.Bold("Collateral"),
		p.Bold("Total Troves"),
		p.Bold("Total Debt (USDQ)"),
		p.Bold("Total Collateral"),
		p.Bold("TCR"),
		p.Bold("Price (USD)"),
		p.Bold("SP Deposits"),
	}}
	for _, b := range s.Branches {
		t.append(
			"    "+itoa(b.Index),
			p.Cyan(b.Symbol),
			itoa(b.TotalTroves),
			fixed(w.cfg.Amount(b.TotalDebt)),
			fixed(b.Tokens(b.TotalCollateral)),
			p.ratio(w.cfg.TCR(b)),
			fixed(w.cfg.Amount(b.LastGoodPrice)),
			fixed(w.cfg.Amount(b.StabilityPool.TotalDeposits)),
		)
	}
	w.WriteString(ansiTable(t))
}

func (w *ansiWriter) branch(b snapshot.Branch) {
	p, cfg := w.p, w.cfg

	w.printf("\n%s\n\n", p.Underline(p.Bold(fmt.Sprintf("Branch %d: %s (%s)", b.Index, b.Collateral, b.Symbol))))

	w.printf("  %s\n\n", p.Underline("Overall"))
	w.printf("  %s %d\n", p.Bold("Total Troves:     "), b.TotalTroves)
	w.printf("  %s %s USDQ\n", p.Bold("Total Debt:       "), p.Green(fixed(cfg.Amount(b.TotalDebt))))
	w.printf("  %s %s %s\n", p.Bold("Total Collateral: "), p.Yellow(fixed(b.Tokens(b.TotalCollateral))), b.Symbol)
	w.printf("  %s %s\n", p.Bold("TCR:              "), p.ratio(cfg.TCR(b)))
	w.printf("  %s %d\n", p.Bold("Shutdown Time:    "), b.ShutdownTime)
	w.printf("  %s %s USD\n", p.Bold("Last Good Price:  "), fixed(cfg.Amount(b.LastGoodPrice)))

	w.printf("\n\n  %s\n\n", p.Underline("Pools"))

	pools := table{Header: []string{
		p.Bold("    ActivePool"), "",
		p.Bold("DefaultPool"), "",
		p.Bold("CollSurplusPool"), "",
		p.Bold("StabilityPool"), "",
	}}
	pools.append("", "", "", "", "", "", "", "")
	pools.append(
		p.Italic("    Collateral"), fixed(b.Tokens(b.ActivePool.TotalCollateral)),
		p.Italic("Collateral"), fixed(b.Tokens(b.DefaultPool.TotalCollateral)),
		p.Italic("Collateral"), fixed(cfg.Amount(b.CollSurplusPool.TotalSurplus)),
		p.Italic("Collateral"), fixed(b.Tokens(b.StabilityPool.CollBalance)),
	)
	pools.append(
		p.Italic("    Debt"), fixed(cfg.Amount(b.ActivePool.BoldDebt)),
		p.Italic("Debt"), fixed(cfg.Amount(b.DefaultPool.BoldDebt)),
		"", "",
		p.Italic("Deposits"), fixed(cfg.Amount(b.StabilityPool.TotalDeposits)),
	)
	pools.append("", "", "", "", "", "",
		p.Italic("Yield Gains Owed"), fixed(cfg.Amount(b.StabilityPool.YieldGainsOwed)))
	pools.append("", "", "", "", "", "",
		p.Italic("Yield Gains Pending"), fixed(cfg.Amount(b.StabilityPool.YieldGainsPending)))
	w.WriteString(ansiTable(pools))

	w.printf("\n  %s\n\n", p.Bold("Troves List"))
	if len(b.Troves) == 0 {
		w.printf("  %s\n", p.Italic(p.Red("No troves available.")))
		return
	}

	troves := table{Header: []string{
		p.Bold("  Trove ID"),
		p.Bold("Owner"),
		p.Bold("Debt (USDQ)"),
		p.Bold("Coll (" + b.Symbol + ")"),
		p.Bold("Status"),
		p.Bold("ICR"),
		p.Bold("AIR (%)"),
	}}
	for _, t := range b.Troves {
		troves.append(
			p.Cyan("  "+shortID(t.TroveID, 8)),
			p.Cyan(t.Owner),
			fixed(cfg.Amount(t.EntireDebt)),
			fixed(b.Tokens(t.EntireColl)),
			t.Status,
			p.ratio(cfg.ICR(b, t)),
			fixed(cfg.Rate(t.AnnualInterestRate)),
		)
	}
	w.WriteString(ansiTable(troves))
}

func (w *ansiWriter) owners(s *snapshot.ProtocolSnapshot, alias func(string) string) {
	p := w.p
	w.printf("\n%s\n\n", p.Underline(p.Bold("Owners Balances")))

	t := table{Header: []string{p.Bold("  Owner"), p.Bold("Alias"), p.Bold("USDQ")}}
	for _, b := range s.Branches {
		t.Header = append(t.Header, p.Bold(b.Symbol))
	}

	for _, o := range s.Owners {
		row := []string{
			p.Cyan("  " + o.Address),
			alias(o.Address),
			fixed(w.cfg.Amount(o.USDQBalance)),
		}
		for _, b := range s.Branches {
			c, ok := o.Collateral(b.Index)
			if !ok {
				row = append(row, notAvailable)
				continue
			}
			row = append(row, fixed(b.Tokens(c.Balance)))
		}
		t.append(row...)
	}
	w.WriteString(ansiTable(t))
}

func (w *ansiWriter) liquidatable(s *snapshot.ProtocolSnapshot) {
	p := w.p
	w.printf("\n%s\n\n", p.Underline(p.Bold("Liquidatable troves IDs")))

	list := s.Liquidatable()
	if len(list) == 0 {
		w.printf("  %s\n", p.Italic(p.Red("No liquidatable troves.")))
		return
	}

	t := table{Header: []string{p.Bold("  Id"), p.Bold("Trove ID"), p.Bold("ICR")}}
	for _, l := range list {
		t.append("  "+itoa(l.Branch), l.TroveID, fixed(l.ICR))
	}
	w.WriteString(ansiTable(t))
}

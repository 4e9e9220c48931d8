package spreadsheet

import (
	"github.com/bernatfelip/cuentas/pkg/services/reporter"

	"github.com/xuri/excelize/v2"
)

// writeSummarySheet lays out the Final Summary sheet: per event balances
// in the fixed ordinary, grants, taxes order with the gross and net
// checkpoints between sections, followed by the liquidity block.
func writeSummarySheet(f *excelize.File, st styles, summary reporter.Summary) error {
	w, err := newSheetWriter(f, st, summarySheetName)
	if err != nil {
		return err
	}

	w.width("A", 24)
	w.width("B", 20)
	w.width("C", 20)
	w.width("D", 20)

	w.header("A1", "Events")
	w.header("B1", "Caixa")
	w.header("C1", "Paypal")
	w.header("D1", "Total")

	row := 2
	for _, balance := range summary.OrdinaryRows {
		writeBalanceRow(w, row, balance)
		row++
	}

	row += 2
	w.header(ref("A", row), "Grants")
	row++
	for _, balance := range summary.GrantRows {
		writeBalanceRow(w, row, balance)
		row++
	}

	row += 2
	writeTotalsRow(w, row, "Gross Total", summary.GrossTotal)

	row += 2
	w.header(ref("A", row), "Taxes")
	row++
	for _, balance := range summary.TaxRows {
		writeBalanceRow(w, row, balance)
		row++
	}

	row += 2
	writeTotalsRow(w, row, "Net Total", summary.NetTotal)

	row += 4
	w.header(ref("B", row), "Caixa")
	w.header(ref("C", row), "Paypal")
	w.header(ref("D", row), "Total")

	row++
	writeTotalsRow(w, row, "Initial liquidity", summary.InitialLiquidity)
	row++
	writeTotalsRow(w, row, "Final liquidity", summary.FinalLiquidity)
	row++
	writeTotalsRow(w, row, "Theoretical difference", summary.TheoreticalDifference)
	row++
	writeTotalsRow(w, row, "Real difference", summary.RealDifference)

	return w.error()
}

func writeBalanceRow(w *sheetWriter, row int, balance reporter.BalanceRow) {
	w.cell(ref("A", row), string(balance.Event))
	w.cell(ref("B", row), balance.Caixa.Format())
	w.cell(ref("C", row), balance.Paypal.Format())
	w.cell(ref("D", row), balance.Total.Format())
}

func writeTotalsRow(w *sheetWriter, row int, label string, totals reporter.Totals) {
	w.header(ref("A", row), label)
	w.cell(ref("B", row), totals.Caixa.Format())
	w.cell(ref("C", row), totals.Paypal.Format())
	w.cell(ref("D", row), totals.Total.Format())
}

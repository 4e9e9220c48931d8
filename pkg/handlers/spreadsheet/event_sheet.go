package spreadsheet

import (
	"sort"

	"github.com/bernatfelip/cuentas/pkg/domain/ledger/aggregate"

	"github.com/xuri/excelize/v2"
)

// writeEventSheet lays out one per event sheet: the loss table in
// columns A-E, the profit table in F-J, the gross balance matrix in L-O
// and the net loss concept breakdown below it.
func writeEventSheet(f *excelize.File, st styles, event *aggregate.EventAggregate) error {
	w, err := newSheetWriter(f, st, sheetName(string(event.Event)))
	if err != nil {
		return err
	}

	w.merge("A1", "E1")
	w.merge("F1", "J1")
	w.merge("M1", "O1")
	w.merge("L7", "M7")

	w.width("A", 12)
	w.width("B", 20)
	w.width("C", 16)
	w.width("D", 10)
	w.width("E", 20)
	w.width("F", 12)
	w.width("G", 20)
	w.width("H", 16)
	w.width("I", 10)
	w.width("J", 20)
	w.width("L", 20)
	w.width("M", 16)
	w.width("N", 16)
	w.width("O", 16)

	w.header("A1", "Loss")
	w.header("A2", "Name")
	w.header("B2", "Concept")
	w.header("C2", "Date")
	w.header("D2", "Amount")
	w.header("E2", "Comment")
	w.header("F1", "Profit")
	w.header("F2", "Name")
	w.header("G2", "Concept")
	w.header("H2", "Date")
	w.header("I2", "Amount")
	w.header("J2", "Comment")
	w.header("M1", "Gross Balance")
	w.header("M2", "Caixa")
	w.header("N2", "Paypal")
	w.header("O2", "Total")
	w.header("L3", "Loss")
	w.header("L4", "Profit")
	w.header("L5", "Total")
	w.header("L7", "Net Loss")
	w.headerStyle("M7")

	writeTransactionTable(w, event.TransactionsLoss, [5]string{"A", "B", "C", "D", "E"})
	writeTransactionTable(w, event.TransactionsProfit, [5]string{"F", "G", "H", "I", "J"})

	w.cell("M3", event.CaixaGross.Loss.Format())
	w.cell("M4", event.CaixaGross.Profit.Format())
	w.cell("M5", event.CaixaGross.Balance.Format())
	w.cell("N3", event.PaypalGross.Loss.Format())
	w.cell("N4", event.PaypalGross.Profit.Format())
	w.cell("N5", event.PaypalGross.Balance.Format())
	w.cell("O3", event.TotalGross.Loss.Format())
	w.cell("O4", event.TotalGross.Profit.Format())
	w.cell("O5", event.TotalGross.Balance.Format())

	// Concepts whose net amount is zero are an aggregation detail, not a
	// report line.
	row := 8
	for _, concept := range event.NetLossConcepts {
		if concept.Amount == 0 {
			continue
		}
		w.cell(ref("L", row), string(concept.Name))
		w.cell(ref("M", row), concept.Amount.Format())
		row++
	}
	w.header(ref("L", row), "Total")
	w.cell(ref("M", row), event.NetLossTotal.Format())

	return w.error()
}

// writeTransactionTable fills one five column table from row 3 down,
// oldest transaction first.
func writeTransactionTable(w *sheetWriter, transactions []aggregate.Transaction, cols [5]string) {
	sorted := make([]aggregate.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	row := 3
	for _, transaction := range sorted {
		w.cell(ref(cols[0], row), string(transaction.Name))
		w.cell(ref(cols[1], row), string(transaction.Concept))
		w.cell(ref(cols[2], row), transaction.Date.Format())
		w.cell(ref(cols[3], row), transaction.Amount.Format())
		w.cell(ref(cols[4], row), string(transaction.Comment))
		row++
	}
}

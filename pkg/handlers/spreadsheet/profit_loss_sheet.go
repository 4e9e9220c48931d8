package spreadsheet

import (
	"github.com/bernatfelip/cuentas/pkg/services/reporter"

	"github.com/xuri/excelize/v2"
)

// writeProfitAndLossSheet lays out the Loss&Profit sheet in the shape of
// the fiscal form the association files, box numbers included.
func writeProfitAndLossSheet(f *excelize.File, st styles, pl reporter.ProfitAndLoss) error {
	w, err := newSheetWriter(f, st, profitAndLossSheetName)
	if err != nil {
		return err
	}

	w.width("A", 40)
	w.width("B", 20)

	w.header("A1", "Net Import [255]")
	w.header("B1", "Sells [256]")

	row := 2
	for _, income := range pl.IncomeRows {
		writeAmountRow(w, row, income)
		row++
	}

	row++
	w.header(ref("A", row), "Other incomes [265]")
	w.header(ref("B", row), "Grants")
	row++
	for _, income := range pl.GrantIncomeRows {
		writeAmountRow(w, row, income)
		row++
	}

	row++
	w.header(ref("A", row), "Income Total")
	w.cell(ref("B", row), pl.IncomeTotal.Format())

	row += 3
	w.header(ref("A", row), "Other expenses [279]")
	w.header(ref("B", row), "Expenses")
	row++
	for _, expense := range pl.ExpenseRows {
		writeAmountRow(w, row, expense)
		row++
	}

	row++
	w.header(ref("A", row), "Loss Total")
	w.cell(ref("B", row), pl.LossTotal.Format())

	row += 2
	w.header(ref("A", row), "Result before tax [325]")
	w.cell(ref("B", row), pl.ResultBeforeTax.Format())

	row += 2
	w.header(ref("A", row), "Taxes")
	w.header(ref("B", row), "Expenses")
	row++
	for _, tax := range pl.TaxRows {
		writeAmountRow(w, row, tax)
		row++
	}

	row += 2
	w.header(ref("A", row), "Account Result")
	w.cell(ref("B", row), pl.AccountResult.Format())

	return w.error()
}

func writeAmountRow(w *sheetWriter, row int, amount reporter.AmountRow) {
	w.cell(ref("A", row), string(amount.Event))
	w.cell(ref("B", row), amount.Amount.Format())
}

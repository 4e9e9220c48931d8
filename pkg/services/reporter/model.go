package reporter

import (
	"github.com/bernatfelip/cuentas/pkg/domain/ledger/aggregate"
	"github.com/bernatfelip/cuentas/pkg/domain/ledger/entity"
)

// Liquidity carries the opening and closing balances of both channels.
// They arrive as plain configuration values; nothing in the pipeline
// ever prompts for them.
type Liquidity struct {
	InitialBank   entity.Amount
	FinalBank     entity.Amount
	InitialPaypal entity.Amount
	FinalPaypal   entity.Amount
}

// BalanceRow is one event line of the Final Summary sheet.
type BalanceRow struct {
	Event  entity.EventName
	Caixa  entity.Amount
	Paypal entity.Amount
	Total  entity.Amount
}

// Totals is a Caixa/Paypal/Total triple, used both for the running
// checkpoint totals and for the liquidity lines.
type Totals struct {
	Caixa  entity.Amount
	Paypal entity.Amount
	Total  entity.Amount
}

func (t *Totals) add(row BalanceRow) {
	t.Caixa += row.Caixa
	t.Paypal += row.Paypal
	t.Total += row.Total
}

// Summary is the cross event model behind the Final Summary sheet.
// Sections accumulate in a fixed order: ordinary events, then grants,
// then taxes. GrossTotal is the running total checkpointed after grants
// and therefore excludes taxes; NetTotal includes everything.
type Summary struct {
	OrdinaryRows []BalanceRow
	GrantRows    []BalanceRow
	GrossTotal   Totals
	TaxRows      []BalanceRow
	NetTotal     Totals

	InitialLiquidity      Totals
	FinalLiquidity        Totals
	TheoreticalDifference Totals
	RealDifference        Totals
}

// AmountRow is one event line of the Loss&Profit sheet.
type AmountRow struct {
	Event  entity.EventName
	Amount entity.Amount
}

// ProfitAndLoss models the Loss&Profit sheet of the fiscal form.
// IncomeTotal covers ordinary and grant profits, LossTotal the ordinary
// gross losses; tax balances only enter the account result.
type ProfitAndLoss struct {
	IncomeRows      []AmountRow
	GrantIncomeRows []AmountRow
	IncomeTotal     entity.Amount
	ExpenseRows     []AmountRow
	LossTotal       entity.Amount
	ResultBeforeTax entity.Amount
	TaxRows         []AmountRow
	AccountResult   entity.Amount
}

// Report bundles everything the presentation layer consumes: the per
// event aggregates in first occurrence order plus both cross event
// models.
type Report struct {
	Events     []*aggregate.EventAggregate
	Summary    Summary
	ProfitLoss ProfitAndLoss
}

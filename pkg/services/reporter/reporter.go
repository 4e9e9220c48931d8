package reporter

import (
	"github.com/bernatfelip/cuentas/pkg/domain/ledger"
	"github.com/bernatfelip/cuentas/pkg/domain/ledger/aggregate"

	"github.com/pkg/errors"
)

type Service interface {
	Report(liquidity Liquidity) (*Report, error)
}

type reporterService struct {
	ledgerSvc  ledger.Service
	classifier *Classifier
}

func New(ledgerSvc ledger.Service, classifier *Classifier) *reporterService {
	return &reporterService{
		ledgerSvc:  ledgerSvc,
		classifier: classifier,
	}
}

func (s *reporterService) Report(liquidity Liquidity) (*Report, error) {
	aggregates, err := s.ledgerSvc.Aggregate()
	if err != nil {
		return nil, errors.Wrap(err, "error aggregating ledger")
	}
	return &Report{
		Events:     aggregates,
		Summary:    s.Summary(aggregates, liquidity),
		ProfitLoss: s.ProfitAndLoss(aggregates),
	}, nil
}

// Summary builds the Final Summary model. The running totals accumulate
// section by section so the two checkpoints carry the exact semantics
// the sheet promises: gross total after grants, net total after taxes.
func (s *reporterService) Summary(aggregates []*aggregate.EventAggregate, liquidity Liquidity) Summary {
	var (
		summary Summary
		running Totals
	)
	for _, event := range aggregates {
		if s.classifier.Classify(event.Event) != Ordinary {
			continue
		}
		row := balanceRow(event)
		summary.OrdinaryRows = append(summary.OrdinaryRows, row)
		running.add(row)
	}
	for _, event := range aggregates {
		if s.classifier.Classify(event.Event) != Grant {
			continue
		}
		row := balanceRow(event)
		summary.GrantRows = append(summary.GrantRows, row)
		running.add(row)
	}
	summary.GrossTotal = running
	for _, event := range aggregates {
		if s.classifier.Classify(event.Event) != Tax {
			continue
		}
		row := balanceRow(event)
		summary.TaxRows = append(summary.TaxRows, row)
		running.add(row)
	}
	summary.NetTotal = running

	summary.InitialLiquidity = Totals{
		Caixa:  liquidity.InitialBank,
		Paypal: liquidity.InitialPaypal,
		Total:  liquidity.InitialBank + liquidity.InitialPaypal,
	}
	summary.FinalLiquidity = Totals{
		Caixa:  liquidity.FinalBank,
		Paypal: liquidity.FinalPaypal,
		Total:  liquidity.FinalBank + liquidity.FinalPaypal,
	}
	summary.TheoreticalDifference = Totals{
		Caixa:  liquidity.FinalBank - liquidity.InitialBank,
		Paypal: liquidity.FinalPaypal - liquidity.InitialPaypal,
		Total:  liquidity.FinalBank + liquidity.FinalPaypal - liquidity.InitialBank - liquidity.InitialPaypal,
	}
	// The real movement of money is exactly the net total of all events.
	summary.RealDifference = summary.NetTotal

	return summary
}

// ProfitAndLoss builds the Loss&Profit model of the fiscal form. Tax
// lines use the gross balance of the tax event and are folded into the
// running loss after the pre-tax result is taken.
func (s *reporterService) ProfitAndLoss(aggregates []*aggregate.EventAggregate) ProfitAndLoss {
	var pl ProfitAndLoss
	for _, event := range aggregates {
		if s.classifier.Classify(event.Event) != Ordinary {
			continue
		}
		pl.IncomeRows = append(pl.IncomeRows, AmountRow{Event: event.Event, Amount: event.TotalGross.Profit})
		pl.IncomeTotal += event.TotalGross.Profit
	}
	for _, event := range aggregates {
		if s.classifier.Classify(event.Event) != Grant {
			continue
		}
		pl.GrantIncomeRows = append(pl.GrantIncomeRows, AmountRow{Event: event.Event, Amount: event.TotalGross.Profit})
		pl.IncomeTotal += event.TotalGross.Profit
	}
	for _, event := range aggregates {
		if s.classifier.Classify(event.Event) != Ordinary {
			continue
		}
		pl.ExpenseRows = append(pl.ExpenseRows, AmountRow{Event: event.Event, Amount: event.TotalGross.Loss})
		pl.LossTotal += event.TotalGross.Loss
	}
	pl.ResultBeforeTax = pl.IncomeTotal + pl.LossTotal

	taxes := pl.LossTotal
	for _, event := range aggregates {
		if s.classifier.Classify(event.Event) != Tax {
			continue
		}
		pl.TaxRows = append(pl.TaxRows, AmountRow{Event: event.Event, Amount: event.TotalGross.Balance})
		taxes += event.TotalGross.Balance
	}
	pl.AccountResult = pl.IncomeTotal + taxes

	return pl
}

func balanceRow(event *aggregate.EventAggregate) BalanceRow {
	return BalanceRow{
		Event:  event.Event,
		Caixa:  event.CaixaGross.Balance,
		Paypal: event.PaypalGross.Balance,
		Total:  event.TotalGross.Balance,
	}
}

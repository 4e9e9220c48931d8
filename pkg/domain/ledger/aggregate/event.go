package aggregate

import (
	"github.com/bernatfelip/cuentas/pkg/domain/ledger/entity"
)

// Gross holds the gross figures of one payment channel. Loss is zero or
// negative, profit zero or positive, balance their sum.
type Gross struct {
	Loss    entity.Amount
	Profit  entity.Amount
	Balance entity.Amount
}

func (g *Gross) Sum(other Gross) {
	g.Loss += other.Loss
	g.Profit += other.Profit
	g.Balance += other.Balance
}

// ConceptAmount is the net amount spent on one expense concept, advances
// excluded.
type ConceptAmount struct {
	Name   entity.ConceptName
	Amount entity.Amount
}

// EventAggregate carries every figure derived for a single event.
//
// NetLossTotal deliberately diverges from TotalGross.Loss whenever the
// event has advance-flagged payments: advances count towards the gross
// figures but never towards the concept breakdown.
type EventAggregate struct {
	Event entity.EventName

	TransactionsLoss   []Transaction
	TransactionsProfit []Transaction

	CaixaGross  Gross
	PaypalGross Gross
	TotalGross  Gross

	NetLossConcepts []ConceptAmount
	NetLossTotal    entity.Amount
}

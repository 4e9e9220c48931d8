package ledger

import (
	"github.com/bernatfelip/cuentas/pkg/domain/ledger/aggregate"
	"github.com/bernatfelip/cuentas/pkg/domain/ledger/entity"
	"github.com/pkg/errors"
	"gopkg.in/tomb.v2"
)

type Service interface {
	Aggregate() ([]*aggregate.EventAggregate, error)
}

type ledgerService struct {
	repositories []Repository
}

// NewService combines any number of transaction sources into one ledger,
// for fiscal years split across several statement exports.
func NewService(repositories ...Repository) *ledgerService {
	return &ledgerService{
		repositories: repositories,
	}
}

// Aggregate loads every repository and computes the EventAggregate of
// each distinct event, preserving first occurrence order across all
// sources. Events are independent of each other, so each one is computed
// on its own goroutine.
func (s *ledgerService) Aggregate() ([]*aggregate.EventAggregate, error) {
	var (
		transactions []aggregate.Transaction
		eventNames   []entity.EventName
	)
	seen := make(map[entity.EventName]bool)
	for _, repository := range s.repositories {
		repoTransactions, repoEventNames, err := repository.Transactions()
		if err != nil {
			return nil, errors.Wrap(err, "error loading ledger transactions")
		}
		transactions = append(transactions, repoTransactions...)
		for _, eventName := range repoEventNames {
			if !seen[eventName] {
				seen[eventName] = true
				eventNames = append(eventNames, eventName)
			}
		}
	}

	if len(eventNames) == 0 {
		return nil, nil
	}
	aggregates := make([]*aggregate.EventAggregate, len(eventNames))
	var t tomb.Tomb
	// Children are spawned from a tracked goroutine so the tomb cannot
	// be marked dead between two Go calls.
	t.Go(func() error {
		for i, eventName := range eventNames {
			i, eventName := i, eventName
			t.Go(func() error {
				aggregates[i] = aggregateEvent(eventName, transactions)
				return nil
			})
		}
		return nil
	})
	err := t.Wait()
	if err != nil {
		return nil, errors.Wrap(err, "error aggregating events")
	}
	return aggregates, nil
}

// aggregateEvent derives every figure of one event from the full
// transaction set. Zero amounts are neither loss nor profit and stay out
// of both partitions.
func aggregateEvent(eventName entity.EventName, transactions []aggregate.Transaction) *aggregate.EventAggregate {
	var loss, profit []aggregate.Transaction
	for _, transaction := range transactions {
		if transaction.Event != eventName {
			continue
		}
		switch {
		case transaction.Amount < 0:
			loss = append(loss, transaction)
		case transaction.Amount > 0:
			profit = append(profit, transaction)
		}
	}

	caixaGross := grossByOrigin(loss, profit, entity.OriginCaixa)
	paypalGross := grossByOrigin(loss, profit, entity.OriginPaypal)
	totalGross := caixaGross
	totalGross.Sum(paypalGross)

	netLossConcepts, netLossTotal := netLossByConcept(loss)

	return &aggregate.EventAggregate{
		Event:              eventName,
		TransactionsLoss:   loss,
		TransactionsProfit: profit,
		CaixaGross:         caixaGross,
		PaypalGross:        paypalGross,
		TotalGross:         totalGross,
		NetLossConcepts:    netLossConcepts,
		NetLossTotal:       netLossTotal,
	}
}

func grossByOrigin(loss, profit []aggregate.Transaction, origin entity.Origin) aggregate.Gross {
	var gross aggregate.Gross
	for _, transaction := range loss {
		if transaction.Origin == origin {
			gross.Loss += transaction.Amount
		}
	}
	for _, transaction := range profit {
		if transaction.Origin == origin {
			gross.Profit += transaction.Amount
		}
	}
	gross.Balance = gross.Loss + gross.Profit
	return gross
}

// netLossByConcept sums the loss of every concept, skipping advances.
// Concepts keep the order of their first appearance in the loss list so
// reports stay reviewable run to run. A concept whose payments were all
// advances is retained with a zero sum; presentation decides what to do
// with it.
func netLossByConcept(loss []aggregate.Transaction) ([]aggregate.ConceptAmount, entity.Amount) {
	var conceptNames []entity.ConceptName
	sums := make(map[entity.ConceptName]entity.Amount)
	seen := make(map[entity.ConceptName]bool)
	for _, transaction := range loss {
		if !seen[transaction.Concept] {
			seen[transaction.Concept] = true
			conceptNames = append(conceptNames, transaction.Concept)
		}
		if transaction.Advance {
			continue
		}
		sums[transaction.Concept] += transaction.Amount
	}

	var total entity.Amount
	concepts := make([]aggregate.ConceptAmount, 0, len(conceptNames))
	for _, conceptName := range conceptNames {
		concepts = append(concepts, aggregate.ConceptAmount{
			Name:   conceptName,
			Amount: sums[conceptName],
		})
		total += sums[conceptName]
	}
	return concepts, total
}

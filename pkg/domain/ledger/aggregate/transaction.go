package aggregate

import (
	"github.com/bernatfelip/cuentas/pkg/domain/ledger/entity"
)

// Transaction is a single parsed ledger movement. Repositories create it
// once and nothing mutates it afterwards.
type Transaction struct {
	Movement entity.Movement    /* Bank movement identifier, passed through untouched */
	Date     entity.Timestamp   /* Local midnight of the transaction day */
	Info     entity.Info        /* Free text from the statement, passed through */
	Amount   entity.Amount      /* Cents of euro, negative when money left the account */
	Name     entity.Name        /* Counterparty name */
	Event    entity.EventName   /* Fiscal activity the movement belongs to, the primary grouping key */
	Concept  entity.ConceptName /* Expense sub category, only used in loss breakdowns */
	Advance  bool               /* Prepayment flag, excluded from net loss breakdowns but not from gross totals */
	Origin   entity.Origin      /* Payment channel, CAIXA or PAYPAL */
	Comment  entity.Comment     /* Free text, passed through */
}

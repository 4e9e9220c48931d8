package ledger

import (
	"github.com/bernatfelip/cuentas/pkg/domain/ledger/aggregate"
	"github.com/bernatfelip/cuentas/pkg/domain/ledger/entity"
)

// Repository is a source of parsed ledger transactions. Implementations
// return the complete transaction set of one statement together with the
// distinct event names in first occurrence order.
type Repository interface {
	Transactions() ([]aggregate.Transaction, []entity.EventName, error)
}

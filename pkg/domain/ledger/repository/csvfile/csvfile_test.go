package csvfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bernatfelip/cuentas/pkg/domain/ledger/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const ledgerFixture = `Movimientos de la cuenta
Movimiento;Fecha;Concepto;Importe;Nombre;Evento;Categoria;Anticipo;Origen;Comentario
MOV001;25/12/2023;transfer;-1.000,00;Caterer;Gala;Food;N;CAIXA;paid in full
MOV002;26/12/2023;card;500,00;Ticket sales;Gala;;N;PAYPAL;
MOV003;27/12/2023;fee;-12,50;Bank;Fees;Banking;Y;CAIXA;quarterly;extra note
`

func TestParse(t *testing.T) {
	transactions, eventNames, err := parse(strings.NewReader(ledgerFixture))
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	first := transactions[0]
	assert.Equal(t, entity.Movement("MOV001"), first.Movement)
	assert.Equal(t, "25/12/2023", first.Date.Format())
	assert.Equal(t, entity.Info("transfer"), first.Info)
	assert.Equal(t, entity.Amount(-100000), first.Amount)
	assert.Equal(t, entity.Name("Caterer"), first.Name)
	assert.Equal(t, entity.EventName("Gala"), first.Event)
	assert.Equal(t, entity.ConceptName("Food"), first.Concept)
	assert.False(t, first.Advance)
	assert.Equal(t, entity.OriginCaixa, first.Origin)
	assert.Equal(t, entity.Comment("paid in full"), first.Comment)

	assert.Equal(t, entity.Amount(50000), transactions[1].Amount)
	assert.Equal(t, entity.OriginPaypal, transactions[1].Origin)

	// Extra separators past the tenth field are dropped with the rest of
	// the line.
	third := transactions[2]
	assert.True(t, third.Advance)
	assert.Equal(t, entity.Comment("quarterly"), third.Comment)

	assert.Equal(t, []entity.EventName{"Gala", "Fees"}, eventNames)
}

func TestParseFieldCount(t *testing.T) {
	in := "h1\nh2\nMOV001;25/12/2023;transfer;-1.000,00;Caterer;Gala;Food;N;CAIXA\n"
	_, _, err := parse(strings.NewReader(in))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFieldCount))
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseBadAmount(t *testing.T) {
	in := "h1\nh2\nMOV001;25/12/2023;transfer;xx;Caterer;Gala;Food;N;CAIXA;\n"
	_, _, err := parse(strings.NewReader(in))
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrInvalidAmount))
	assert.Contains(t, err.Error(), "amount field")
}

func TestParseBadDate(t *testing.T) {
	in := "h1\nh2\nMOV001;2023-12-25;transfer;-1,00;Caterer;Gala;Food;N;CAIXA;\n"
	_, _, err := parse(strings.NewReader(in))
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrInvalidDate))
	assert.Contains(t, err.Error(), "line 3")
}

func TestTransactionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, os.WriteFile(path, []byte(ledgerFixture), 0o600))

	repository := New(zap.NewNop(), path)
	transactions, eventNames, err := repository.Transactions()
	require.NoError(t, err)
	assert.Len(t, transactions, 3)
	assert.Equal(t, []entity.EventName{"Gala", "Fees"}, eventNames)
}

func TestTransactionsMissingFile(t *testing.T) {
	repository := New(zap.NewNop(), filepath.Join(t.TempDir(), "nope.csv"))
	_, _, err := repository.Transactions()
	require.Error(t, err)
}

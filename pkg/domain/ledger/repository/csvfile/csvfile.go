// Package csvfile reads the semicolon delimited ledger exports the bank
// produces after manual annotation: two header lines followed by one
// transaction per line with ten ordered fields.
package csvfile

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bernatfelip/cuentas/pkg/domain/ledger/aggregate"
	"github.com/bernatfelip/cuentas/pkg/domain/ledger/entity"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// headerLines is the number of leading lines skipped unconditionally.
	headerLines = 2
	// fieldCount is the minimum number of semicolon separated fields per
	// data line. Extra separators beyond the tenth field are ignored.
	fieldCount = 10
)

// ErrFieldCount is returned when a data line carries fewer than ten
// fields. Any such line aborts the whole run, a fiscal report must never
// silently drop a transaction.
var ErrFieldCount = errors.New("wrong field count")

type repository struct {
	log  *zap.Logger
	path string
}

func New(log *zap.Logger, path string) *repository {
	return &repository{
		log:  log,
		path: path,
	}
}

func (r *repository) Transactions() ([]aggregate.Transaction, []entity.EventName, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unable to open ledger file: %s", r.path)
	}
	defer file.Close()

	transactions, eventNames, err := parse(file)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "error parsing ledger file: %s", r.path)
	}
	r.log.Info("ledger file parsed",
		zap.String("file", r.path),
		zap.String("transactions", humanize.Comma(int64(len(transactions)))),
		zap.Int("events", len(eventNames)),
	)
	return transactions, eventNames, nil
}

func parse(in io.Reader) ([]aggregate.Transaction, []entity.EventName, error) {
	var (
		transactions []aggregate.Transaction
		eventNames   []entity.EventName
	)
	seen := make(map[entity.EventName]bool)

	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if lineNumber <= headerLines {
			continue
		}
		transaction, err := parseLine(scanner.Text())
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		transactions = append(transactions, transaction)
		if !seen[transaction.Event] {
			seen[transaction.Event] = true
			eventNames = append(eventNames, transaction.Event)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "error reading ledger")
	}
	return transactions, eventNames, nil
}

func parseLine(line string) (aggregate.Transaction, error) {
	fields := strings.Split(line, ";")
	if len(fields) < fieldCount {
		return aggregate.Transaction{}, errors.Wrapf(ErrFieldCount, "got %d fields, want %d", len(fields), fieldCount)
	}
	date, err := entity.ParseDate(fields[1])
	if err != nil {
		return aggregate.Transaction{}, errors.Wrap(err, "date field")
	}
	amount, err := entity.ParseAmount(fields[3])
	if err != nil {
		return aggregate.Transaction{}, errors.Wrap(err, "amount field")
	}
	return aggregate.Transaction{
		Movement: entity.Movement(fields[0]),
		Date:     date,
		Info:     entity.Info(fields[2]),
		Amount:   amount,
		Name:     entity.Name(fields[4]),
		Event:    entity.EventName(fields[5]),
		Concept:  entity.ConceptName(fields[6]),
		Advance:  entity.ParseAdvance(fields[7]),
		Origin:   entity.Origin(fields[8]),
		Comment:  entity.Comment(fields[9]),
	}, nil
}

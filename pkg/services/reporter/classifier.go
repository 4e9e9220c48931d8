package reporter

import (
	"github.com/bernatfelip/cuentas/pkg/domain/ledger/entity"
)

// Category is the fiscal classification of an event. It is decided by
// caller supplied name sets, never by anything inside the ledger itself.
type Category int

const (
	Ordinary Category = iota
	Grant
	Tax
)

// Classifier tests event names against the grant and tax sets. Grant
// membership is checked first, so a name listed in both sets lands in
// the grants section of every report. Names that appear in neither set
// are ordinary events.
type Classifier struct {
	grants map[entity.EventName]bool
	taxes  map[entity.EventName]bool
}

func NewClassifier(grants, taxes []entity.EventName) *Classifier {
	classifier := &Classifier{
		grants: make(map[entity.EventName]bool, len(grants)),
		taxes:  make(map[entity.EventName]bool, len(taxes)),
	}
	for _, name := range grants {
		classifier.grants[name] = true
	}
	for _, name := range taxes {
		classifier.taxes[name] = true
	}
	return classifier
}

func (c *Classifier) Classify(name entity.EventName) Category {
	if c.grants[name] {
		return Grant
	}
	if c.taxes[name] {
		return Tax
	}
	return Ordinary
}

// Package policy validates a proposed ledger state against a trusted
// base state under the community's governance rules. Unlike the
// transaction engine it never fails fast: every problem found becomes a
// violation in the report, because the consumer is a human reviewer who
// wants the complete list.
package policy

import (
	"fmt"
	"path"
	"strings"

	"github.com/merit-guild/meritbank/internal/models"
)

// Rules holds the governance constants. Defaults mirror the community
// charter: issuance must come with a law change, citizenship grants are
// bound to an onboarding document and a fixed amount.
type Rules struct {
	// LawsPrefix is the namespace a touched path must live under for an
	// emission to be legitimate.
	LawsPrefix string
	// CitizenshipDir is the namespace holding per-recipient onboarding
	// artifacts ("<dir>/<recipient>.md").
	CitizenshipDir string
	// CitizenshipGrant is the only amount a citizenship transaction may
	// carry.
	CitizenshipGrant int64
}

// DefaultRules returns the charter defaults.
func DefaultRules() Rules {
	return Rules{
		LawsPrefix:       "laws/",
		CitizenshipDir:   "citizenship",
		CitizenshipGrant: 100,
	}
}

// Report is the outcome of a validation run. Violations is never nil-vs-
// meaningful: Accepted is simply len(Violations) == 0.
type Report struct {
	Accepted   bool
	Violations []string
}

// Validator checks proposed ledger states. It is pure and total: it
// never returns an error, it reports.
type Validator struct {
	rules Rules
}

// NewValidator returns a validator with the given rules.
func NewValidator(rules Rules) *Validator {
	return &Validator{rules: rules}
}

// Validate compares a proposed ledger against the base ledger. Records
// with ids at or below the base's maximum id are immutable history and
// are not re-examined; everything above it is classified and held to
// the per-category rules, then the proposed balance map is held to the
// global invariants regardless of what changed.
func (v *Validator) Validate(base, proposed *models.Ledger, author string, changedFiles []string) Report {
	var violations []string

	maxBaseID := base.MaxID()
	for _, tx := range proposed.Transactions {
		if tx.ID <= maxBaseID {
			continue
		}
		violations = append(violations, v.checkTransaction(proposed, tx, author, changedFiles)...)
	}

	violations = append(violations, proposed.InvariantViolations()...)

	return Report{Accepted: len(violations) == 0, Violations: violations}
}

func (v *Validator) checkTransaction(l *models.Ledger, tx models.Transaction, author string, changedFiles []string) []string {
	var violations []string

	switch Classify(l, tx) {
	case CategoryTransfer:
		if tx.From == tx.To {
			violations = append(violations, fmt.Sprintf("tx %d: self-transfer is not allowed (%s -> %s)", tx.ID, tx.From, tx.To))
		}
		if author != tx.From {
			violations = append(violations, fmt.Sprintf("tx %d: author %q does not match sender %q", tx.ID, author, tx.From))
		}

	case CategoryEmission:
		if !v.touchesLaws(changedFiles) {
			violations = append(violations, fmt.Sprintf("tx %d: emission requires a change under %s", tx.ID, v.rules.LawsPrefix))
		}

	case CategoryCitizenship:
		artifact := path.Join(v.rules.CitizenshipDir, tx.To+".md")
		if !containsPath(changedFiles, artifact) {
			violations = append(violations, fmt.Sprintf("tx %d: citizenship grant requires file %s", tx.ID, artifact))
		}
		if tx.Amount != v.rules.CitizenshipGrant {
			violations = append(violations, fmt.Sprintf("tx %d: citizenship grant must be %d merits, got %d", tx.ID, v.rules.CitizenshipGrant, tx.Amount))
		}

	case CategoryForbidden:
		violations = append(violations, fmt.Sprintf("tx %d: forbidden transaction shape (%s -> %s)", tx.ID, tx.From, tx.To))
	}

	return violations
}

func (v *Validator) touchesLaws(changedFiles []string) bool {
	for _, f := range changedFiles {
		if strings.HasPrefix(f, v.rules.LawsPrefix) {
			return true
		}
	}
	return false
}

func containsPath(files []string, want string) bool {
	for _, f := range files {
		if f == want {
			return true
		}
	}
	return false
}

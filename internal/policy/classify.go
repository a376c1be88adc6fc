package policy

import "github.com/merit-guild/meritbank/internal/models"

// Category is the governance class of a proposed transaction, derived
// purely from the roles of its endpoints.
type Category int

const (
	// CategoryTransfer is a member-authored payment.
	CategoryTransfer Category = iota
	// CategoryEmission is issuance: emission to treasury.
	CategoryEmission
	// CategoryCitizenship is a treasury disbursement to a member, used
	// for citizenship grants.
	CategoryCitizenship
	// CategoryForbidden is any shape no legitimate operation produces,
	// e.g. treasury to emission.
	CategoryForbidden
)

func (c Category) String() string {
	switch c {
	case CategoryTransfer:
		return "transfer"
	case CategoryEmission:
		return "emission"
	case CategoryCitizenship:
		return "citizenship"
	default:
		return "forbidden"
	}
}

// Classify maps a transaction to its governance category using the
// ledger's account roles.
func Classify(l *models.Ledger, tx models.Transaction) Category {
	from, to := l.RoleOf(tx.From), l.RoleOf(tx.To)
	switch {
	case from == models.RoleMember:
		return CategoryTransfer
	case from == models.RoleEmission && to == models.RoleTreasury:
		return CategoryEmission
	case from == models.RoleTreasury && to != models.RoleEmission:
		return CategoryCitizenship
	default:
		return CategoryForbidden
	}
}

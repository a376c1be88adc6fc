package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merit-guild/meritbank/internal/models"
)

func tx(id int64, from, to string, amount int64) models.Transaction {
	return models.Transaction{ID: id, From: from, To: to, Amount: amount}
}

func baseLedger() *models.Ledger {
	return models.NewLedger(map[string]int64{
		models.EmissionAccount: -10000,
		models.TreasuryAccount: 9900,
		"alice":                100,
	}, []models.Transaction{
		tx(1, models.EmissionAccount, models.TreasuryAccount, 10000),
		tx(2, models.TreasuryAccount, "alice", 100),
	})
}

func validate(t *testing.T, proposed *models.Ledger, author string, changedFiles ...string) Report {
	t.Helper()
	return NewValidator(DefaultRules()).Validate(baseLedger(), proposed, author, changedFiles)
}

func TestClassify(t *testing.T) {
	l := baseLedger()

	cases := []struct {
		from, to string
		want     Category
	}{
		{"alice", "bob", CategoryTransfer},
		{"alice", models.TreasuryAccount, CategoryTransfer},
		{"alice", models.EmissionAccount, CategoryTransfer},
		{models.EmissionAccount, models.TreasuryAccount, CategoryEmission},
		{models.TreasuryAccount, "alice", CategoryCitizenship},
		{models.TreasuryAccount, models.TreasuryAccount, CategoryCitizenship},
		{models.TreasuryAccount, models.EmissionAccount, CategoryForbidden},
		{models.EmissionAccount, "alice", CategoryForbidden},
		{models.EmissionAccount, models.EmissionAccount, CategoryForbidden},
	}
	for _, c := range cases {
		got := Classify(l, tx(9, c.from, c.to, 1))
		assert.Equal(t, c.want, got, "%s -> %s", c.from, c.to)
	}
}

func TestValidateTransfers(t *testing.T) {
	t.Run("well-formed transfer is accepted with an empty report", func(t *testing.T) {
		proposed := models.NewLedger(map[string]int64{
			models.EmissionAccount: -10000,
			models.TreasuryAccount: 9900,
			"alice":                50,
			"bob":                  50,
		}, append(baseLedger().Transactions, tx(3, "alice", "bob", 50)))

		report := validate(t, proposed, "alice")
		assert.True(t, report.Accepted)
		assert.Empty(t, report.Violations)
	})

	t.Run("authorship mismatch is the only violation", func(t *testing.T) {
		proposed := models.NewLedger(map[string]int64{
			models.EmissionAccount: -10000,
			models.TreasuryAccount: 9900,
			"alice":                50,
			"bob":                  50,
		}, append(baseLedger().Transactions, tx(3, "alice", "bob", 50)))

		report := validate(t, proposed, "eve")
		assert.False(t, report.Accepted)
		require.Len(t, report.Violations, 1)
		assert.Equal(t, `tx 3: author "eve" does not match sender "alice"`, report.Violations[0])
	})

	t.Run("self-transfer is rejected", func(t *testing.T) {
		proposed := models.NewLedger(baseLedger().Balances,
			append(baseLedger().Transactions, tx(3, "alice", "alice", 10)))

		report := validate(t, proposed, "alice")
		assert.False(t, report.Accepted)
		require.Len(t, report.Violations, 1)
		assert.Contains(t, report.Violations[0], "self-transfer")
	})

	t.Run("self-transfer and authorship can fire together", func(t *testing.T) {
		proposed := models.NewLedger(baseLedger().Balances,
			append(baseLedger().Transactions, tx(3, "alice", "alice", 10)))

		report := validate(t, proposed, "eve")
		assert.Len(t, report.Violations, 2)
	})
}

func TestValidateEmission(t *testing.T) {
	proposedWith := func(txs ...models.Transaction) *models.Ledger {
		return models.NewLedger(map[string]int64{
			models.EmissionAccount: -15000,
			models.TreasuryAccount: 14900,
			"alice":                100,
		}, append(baseLedger().Transactions, txs...))
	}

	t.Run("requires a law change", func(t *testing.T) {
		report := validate(t, proposedWith(tx(3, models.EmissionAccount, models.TreasuryAccount, 5000)), "alice",
			"README.md", "citizenship/bob.md")
		assert.False(t, report.Accepted)
		require.Len(t, report.Violations, 1)
		assert.Contains(t, report.Violations[0], "laws/")
	})

	t.Run("accepted with a law change", func(t *testing.T) {
		report := validate(t, proposedWith(tx(3, models.EmissionAccount, models.TreasuryAccount, 5000)), "alice",
			"laws/emission-2024.md")
		assert.True(t, report.Accepted)
	})

	t.Run("no changed files at all", func(t *testing.T) {
		report := validate(t, proposedWith(tx(3, models.EmissionAccount, models.TreasuryAccount, 5000)), "alice")
		assert.False(t, report.Accepted)
	})
}

func TestValidateCitizenship(t *testing.T) {
	proposedGrant := func(amount int64) *models.Ledger {
		return models.NewLedger(map[string]int64{
			models.EmissionAccount: -10000,
			models.TreasuryAccount: 9900 - amount,
			"alice":                100,
			"bob":                  amount,
		}, append(baseLedger().Transactions, tx(3, models.TreasuryAccount, "bob", amount)))
	}

	t.Run("accepted with the recipient artifact and the fixed grant", func(t *testing.T) {
		report := validate(t, proposedGrant(100), "alice", "citizenship/bob.md")
		assert.True(t, report.Accepted)
		assert.Empty(t, report.Violations)
	})

	t.Run("missing artifact", func(t *testing.T) {
		report := validate(t, proposedGrant(100), "alice", "citizenship/carol.md")
		require.Len(t, report.Violations, 1)
		assert.Equal(t, "tx 3: citizenship grant requires file citizenship/bob.md", report.Violations[0])
	})

	t.Run("wrong amount", func(t *testing.T) {
		report := validate(t, proposedGrant(50), "alice", "citizenship/bob.md")
		require.Len(t, report.Violations, 1)
		assert.Equal(t, "tx 3: citizenship grant must be 100 merits, got 50", report.Violations[0])
	})

	t.Run("wrong amount and missing artifact both fire", func(t *testing.T) {
		report := validate(t, proposedGrant(50), "alice")
		assert.Len(t, report.Violations, 2)
	})
}

func TestValidateForbidden(t *testing.T) {
	t.Run("treasury to emission", func(t *testing.T) {
		proposed := models.NewLedger(map[string]int64{
			models.EmissionAccount: -9900,
			models.TreasuryAccount: 9800,
			"alice":                100,
		}, append(baseLedger().Transactions, tx(3, models.TreasuryAccount, models.EmissionAccount, 100)))

		report := validate(t, proposed, "alice")
		assert.False(t, report.Accepted)
		require.Len(t, report.Violations, 1)
		assert.Equal(t, "tx 3: forbidden transaction shape (treasury -> emission)", report.Violations[0])
	})

	t.Run("emission to a member", func(t *testing.T) {
		proposed := models.NewLedger(map[string]int64{
			models.EmissionAccount: -10100,
			models.TreasuryAccount: 9900,
			"alice":                200,
		}, append(baseLedger().Transactions, tx(3, models.EmissionAccount, "alice", 100)))

		report := validate(t, proposed, "alice")
		assert.False(t, report.Accepted)
		assert.Contains(t, report.Violations[0], "forbidden")
	})
}

func TestValidateInvariants(t *testing.T) {
	t.Run("broken balances rejected independently of the log", func(t *testing.T) {
		proposed := models.NewLedger(map[string]int64{
			models.EmissionAccount: 500,
			models.TreasuryAccount: -200,
			"alice":                -100,
		}, baseLedger().Transactions)

		report := validate(t, proposed, "alice")
		assert.False(t, report.Accepted)
		// sum != 0, emission > 0, treasury < 0, alice < 0: all together.
		assert.Len(t, report.Violations, 4)
	})

	t.Run("governance and invariant violations accumulate", func(t *testing.T) {
		proposed := models.NewLedger(map[string]int64{
			models.EmissionAccount: -10000,
			models.TreasuryAccount: 9900,
			"alice":                90, // missing 10: sum is off
		}, append(baseLedger().Transactions, tx(3, "alice", "alice", 10)))

		report := validate(t, proposed, "eve")
		// self-transfer + authorship + sum.
		assert.Len(t, report.Violations, 3)
	})
}

func TestValidateDelta(t *testing.T) {
	t.Run("history below maxBaseId is not re-validated", func(t *testing.T) {
		// Base already contains what would be a forbidden shape; only
		// ids above the base maximum are examined.
		dirtyBase := models.NewLedger(map[string]int64{
			models.EmissionAccount: -10000,
			models.TreasuryAccount: 10000,
		}, []models.Transaction{
			tx(1, models.TreasuryAccount, models.EmissionAccount, 5),
			tx(2, models.EmissionAccount, models.TreasuryAccount, 10000),
		})
		proposed := models.NewLedger(dirtyBase.Balances, dirtyBase.Transactions)

		report := NewValidator(DefaultRules()).Validate(dirtyBase, proposed, "alice", nil)
		assert.True(t, report.Accepted)
	})

	t.Run("no new transactions still checks balances", func(t *testing.T) {
		proposed := models.NewLedger(map[string]int64{"alice": 1}, baseLedger().Transactions)
		report := validate(t, proposed, "alice")
		assert.False(t, report.Accepted)
	})

	t.Run("empty base examines everything", func(t *testing.T) {
		empty := models.NewLedger(nil, nil)
		proposed := models.NewLedger(map[string]int64{
			models.EmissionAccount: -100,
			models.TreasuryAccount: 100,
		}, []models.Transaction{tx(1, models.EmissionAccount, models.TreasuryAccount, 100)})

		report := NewValidator(DefaultRules()).Validate(empty, proposed, "alice", []string{"laws/genesis.md"})
		assert.True(t, report.Accepted)
	})
}

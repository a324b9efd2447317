// Package calculator computes member balances for the shared trip ledger.
//
// Everything here is a pure function of its inputs: no I/O, no state, and
// no rounding. Rounding belongs to display code (see FormatAmount).
package calculator

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mmynk/tripboard/internal/models"
)

// transferEpsilon hides floating point noise when suggesting transfers.
const transferEpsilon = 0.01

// Settle computes every member's paid total and net balance.
//
// Algorithm:
//   - each member starts at paid = 0, net = 0
//   - for each expense: a payer on the roster is credited the full amount
//   - the amount is split evenly across EffectiveSplit; each share is debited
//   - an expense whose effective split is empty debits nobody
//
// The result is in roster order. Payers who are no longer members are not
// credited and do not appear.
func Settle(expenses []models.Expense, members []string) []models.Balance {
	members = dedupe(members)
	roster := NewRoster(members)

	paid := make(map[string]float64, len(members))
	net := make(map[string]float64, len(members))

	for _, e := range expenses {
		payer := strings.TrimSpace(e.Payer)
		if roster.Contains(payer) {
			paid[payer] += e.Amount
			net[payer] += e.Amount
		}

		split := EffectiveSplit(e, members, roster)
		if len(split) == 0 {
			continue
		}
		share := e.Amount / float64(len(split))
		for _, m := range split {
			net[m] -= share
		}
	}

	balances := make([]models.Balance, 0, len(members))
	for _, m := range members {
		balances = append(balances, models.Balance{
			Name: m,
			Paid: paid[m],
			Net:  net[m],
		})
	}
	return balances
}

// dedupe drops repeated names, keeping first occurrences in order.
func dedupe(members []string) []string {
	seen := make(map[string]bool, len(members))
	out := make([]string, 0, len(members))
	for _, m := range members {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// SortForDisplay orders balances most-owing first. Equal nets keep their
// input order. The input is not modified.
func SortForDisplay(balances []models.Balance) []models.Balance {
	out := slices.Clone(balances)
	slices.SortStableFunc(out, func(a, b models.Balance) int {
		return cmp.Compare(a.Net, b.Net)
	})
	return out
}

// Total sums every expense, including those paid by former members.
func Total(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// SuggestTransfers matches debtors with creditors to settle the balances
// in few payments.
//
// Greedy: the largest debt is paid towards the largest credit until one of
// them is cleared. Transfers smaller than one cent are dropped.
func SuggestTransfers(balances []models.Balance) []models.Transfer {
	type position struct {
		name   string
		amount float64
	}

	var creditors, debtors []position
	for _, b := range balances {
		switch {
		case b.Net > transferEpsilon:
			creditors = append(creditors, position{b.Name, b.Net})
		case b.Net < -transferEpsilon:
			debtors = append(debtors, position{b.Name, -b.Net})
		}
	}

	byAmountDesc := func(a, b position) int { return cmp.Compare(b.amount, a.amount) }
	slices.SortStableFunc(creditors, byAmountDesc)
	slices.SortStableFunc(debtors, byAmountDesc)

	var transfers []models.Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := min(debtors[i].amount, creditors[j].amount)
		if amount > transferEpsilon {
			transfers = append(transfers, models.Transfer{
				From:   debtors[i].name,
				To:     creditors[j].name,
				Amount: amount,
			})
		}

		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if debtors[i].amount < transferEpsilon {
			i++
		}
		if creditors[j].amount < transferEpsilon {
			j++
		}
	}

	return transfers
}

package domain

import "iter"

// History is the append-only log of transactions registered on one account.
// It does no validation of its own.
type History struct {
	transactions []Transaction
}

func newHistory() *History {
	return &History{}
}

func (h *History) add(tx Transaction) {
	h.transactions = append(h.transactions, tx)
}

// Transactions yields the registered transactions in chronological order. The
// sequence can be ranged over any number of times and reflects the log at the
// moment iteration starts.
func (h *History) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		n := len(h.transactions)
		for i := 0; i < n; i++ {
			if !yield(h.transactions[i]) {
				return
			}
		}
	}
}

func (h *History) Len() int {
	return len(h.transactions)
}

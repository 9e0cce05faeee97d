package ledger

import "wallet/internal/core"

// CategoryAmount is one slice of the distribution chart.
type CategoryAmount struct {
	Category core.Category `json:"category"`
	Amount   core.Money    `json:"amount"`
}

// Distribute groups amounts by category label over whatever subset the
// caller passes (the report view passes everything, income included).
// Categories appear in first-encounter order, which is deterministic as long
// as the store preserves insertion order end-to-end; chart colors depend on
// it.
func Distribute(txs []core.Transaction) []CategoryAmount {
	index := make(map[core.Category]int, 8)
	out := make([]CategoryAmount, 0, 8)
	for _, tx := range txs {
		i, ok := index[tx.Category]
		if !ok {
			i = len(out)
			index[tx.Category] = i
			out = append(out, CategoryAmount{Category: tx.Category})
		}
		out[i].Amount.Cents += tx.Amount.Cents
	}
	return out
}

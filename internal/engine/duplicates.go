package engine

import (
	"chequeflow/internal/model"
)

type duplicateKey struct {
	clientName   string
	amount       string
	chequeNumber string
}

func keyOf(c model.Cheque) duplicateKey {
	// String() drops trailing zeros, so 100 and 100.00 share a key
	return duplicateKey{
		clientName:   c.ClientName,
		amount:       c.Amount.String(),
		chequeNumber: c.ChequeNumber,
	}
}

// DetectDuplicates returns every cheque whose (client name, amount, cheque
// number) is shared with at least one other cheque in the set, originals
// included, in input order.
func DetectDuplicates(cheques []model.Cheque) []model.Cheque {
	counts := make(map[duplicateKey]int, len(cheques))
	for _, c := range cheques {
		counts[keyOf(c)]++
	}

	var duplicates []model.Cheque
	for _, c := range cheques {
		if counts[keyOf(c)] > 1 {
			duplicates = append(duplicates, c)
		}
	}
	return duplicates
}

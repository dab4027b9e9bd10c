package engine

import (
	"strings"
	"time"

	"chequeflow/internal/model"

	"github.com/shopspring/decimal"
)

// HighValueThreshold marks cheques shown as high value on the dashboard.
var HighValueThreshold = decimal.NewFromInt(10000)

// Statistics counts cheques per status.
func Statistics(cheques []model.Cheque) model.Statistics {
	stats := model.Statistics{Total: len(cheques)}
	for _, c := range cheques {
		switch c.Status {
		case model.StatusApproved:
			stats.Approved++
		case model.StatusDeclined:
			stats.Declined++
		default:
			stats.Pending++
		}
	}
	return stats
}

// Analyze derives the finance dashboard figures. Monthly figures use the
// calendar month of now, matched against each cheque's CreatedAt.
func Analyze(cheques []model.Cheque, now time.Time) model.Analytics {
	a := model.Analytics{
		TotalAmount:  decimal.Zero,
		MonthlyTotal: decimal.Zero,
		Month:        now.Month(),
		Year:         now.Year(),
	}

	for _, c := range cheques {
		a.TotalAmount = a.TotalAmount.Add(c.Amount)

		created := c.CreatedAt.In(now.Location())
		if created.Year() == now.Year() && created.Month() == now.Month() {
			a.MonthlyTotal = a.MonthlyTotal.Add(c.Amount)
			a.MonthlyCount++
		}
		if c.Amount.GreaterThan(HighValueThreshold) {
			a.HighValueCount++
		}
		if c.PrintCount > 0 {
			a.PrintedCount++
		}
		if c.Status == model.StatusApproved && c.CurrentSignatures < RequiredSignatures(c.Amount) {
			a.AwaitingSignatures++
		}
	}
	return a
}

// Search filters cheques by a case-insensitive query over client name, cheque
// number, amount and ISO dates. An empty query returns the input unchanged.
func Search(cheques []model.Cheque, query string) []model.Cheque {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return cheques
	}

	var out []model.Cheque
	for _, c := range cheques {
		if matches(c, q) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c model.Cheque, q string) bool {
	if strings.Contains(strings.ToLower(c.ClientName), q) ||
		strings.Contains(strings.ToLower(c.ChequeNumber), q) ||
		strings.Contains(c.Amount.String(), q) {
		return true
	}
	for _, d := range []*time.Time{c.IssueDate, c.Date} {
		if d != nil && strings.Contains(d.Format("2006-01-02"), q) {
			return true
		}
	}
	return false
}

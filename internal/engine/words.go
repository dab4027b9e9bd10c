package engine

import (
	"fmt"
	"strings"

	"chequeflow/internal/apperrors"
	"chequeflow/internal/model"

	"github.com/shopspring/decimal"
)

// MaxChequeAmount is the largest amount a cheque slip can be written for.
var MaxChequeAmount = decimal.NewFromInt(25_000_000)

var (
	ones  = []string{"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tens  = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
	scale = []string{"", "Thousand", "Million"}
)

// AmountInWords spells out amount the way it is written on a cheque, e.g.
// "One Thousand Two Hundred and Five Dollars and Fifty Cents".
func AmountInWords(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", apperrors.NewValidationError("amount", "Negative amounts are not allowed.")
	}
	if amount.GreaterThan(MaxChequeAmount) {
		return "", apperrors.NewValidationError("amount", "Amount exceeds the limit of 25 million.")
	}
	if !amount.Equal(amount.Round(2)) {
		return "", apperrors.NewValidationError("amount", "Amount has more than two decimal places.")
	}

	whole := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()

	dollarWord := "Dollars"
	if whole == 1 {
		dollarWord = "Dollar"
	}
	centWord := "Cents"
	if cents == 1 {
		centWord = "Cent"
	}
	return fmt.Sprintf("%s %s and %s %s", numberToWords(whole), dollarWord, numberToWords(cents), centWord), nil
}

func numberToWords(n int64) string {
	if n == 0 {
		return ones[0]
	}
	var groups []string
	for i := 0; n > 0; i++ {
		if chunk := n % 1000; chunk != 0 {
			groups = append([]string{strings.TrimSpace(chunkToWords(chunk) + " " + scale[i])}, groups...)
		}
		n /= 1000
	}
	return strings.Join(groups, " ")
}

func chunkToWords(n int64) string {
	switch {
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + "-" + ones[n%10]
	case n%100 == 0:
		return ones[n/100] + " Hundred"
	default:
		return ones[n/100] + " Hundred and " + chunkToWords(n%100)
	}
}

// Slip is the text printed on a cheque.
type Slip struct {
	ChequeID      string `json:"cheque_id"`
	ChequeNumber  string `json:"cheque_number"`
	Payee         string `json:"payee"`
	Amount        string `json:"amount"`
	AmountInWords string `json:"amount_in_words"`
}

// NewSlip renders the print payload for c.
func NewSlip(c model.Cheque) (Slip, error) {
	words, err := AmountInWords(c.Amount)
	if err != nil {
		return Slip{}, err
	}
	return Slip{
		ChequeID:      c.ID.String(),
		ChequeNumber:  c.ChequeNumber,
		Payee:         c.ClientName,
		Amount:        c.Amount.StringFixed(2),
		AmountInWords: words,
	}, nil
}

// Text is the two-line form used by the printer: payee, then amount in words.
func (s Slip) Text() string {
	return fmt.Sprintf("Payee: %s\nAmount: %s", s.Payee, s.AmountInWords)
}

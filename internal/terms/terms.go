// Package terms derives dates from payment-terms descriptors.
package terms

import (
	"strconv"
	"strings"
	"time"
)

// DueOnReceipt is the literal terms value meaning the invoice date is
// the due date.
const DueOnReceipt = "Due on Receipt"

// defaultNetDays applies when the terms value is unrecognized or a
// "Net <N>" value fails to parse. The fallback is uniform regardless
// of why parsing failed.
const defaultNetDays = 30

// DueDate derives a due date from the invoice date and a payment-terms
// descriptor. "Net <N>" adds N days; "Due on Receipt" returns the
// invoice date unchanged; everything else adds 30 days.
func DueDate(invoiceDate time.Time, paymentTerms string) time.Time {
	terms := strings.TrimSpace(paymentTerms)

	if terms == DueOnReceipt {
		return invoiceDate
	}

	if rest, ok := strings.CutPrefix(terms, "Net "); ok {
		if days, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
			return invoiceDate.AddDate(0, 0, days)
		}
	}

	return invoiceDate.AddDate(0, 0, defaultNetDays)
}

// PastDue reports whether now is calendar-after the due date. The
// comparison is by date, not instant: an invoice is not past due on its
// due date.
func PastDue(dueDate, now time.Time) bool {
	if dueDate.IsZero() {
		return false
	}
	return truncateDay(now).After(truncateDay(dueDate))
}

// DaysUntilDue returns whole days until the due date; negative when
// past due.
func DaysUntilDue(dueDate, now time.Time) int {
	delta := truncateDay(dueDate).Sub(truncateDay(now))
	return int(delta.Hours() / 24)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Package format renders human-readable invoice numbers from a
// user-configurable template.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var paddedSeqRe = regexp.MustCompile(`\{SEQ(\d+)\}`)

// DefaultInvoiceNumberTemplate yields INV-0001 for the first invoice.
const DefaultInvoiceNumberTemplate = "INV-{SEQ4}"

// InvoiceNumber expands a numbering template against an issue date and
// a monotonic sequence. {YYYY}, {YY}, {MM}, and {DD} take their values
// from issuedAt; {SEQ} inserts the sequence as-is and {SEQn} zero-pads
// it to n digits (wider sequences keep all their digits).
func InvoiceNumber(template string, issuedAt time.Time, seq int64) (string, error) {
	if template == "" {
		return "", fmt.Errorf("invoice number template is empty")
	}
	if seq <= 0 {
		return "", fmt.Errorf("invalid invoice sequence: %d", seq)
	}

	number := paddedSeqRe.ReplaceAllStringFunc(template, func(token string) string {
		width, err := strconv.Atoi(paddedSeqRe.FindStringSubmatch(token)[1])
		if err != nil || width <= 0 {
			return token
		}
		return fmt.Sprintf("%0*d", width, seq)
	})

	replacer := strings.NewReplacer(
		"{YYYY}", issuedAt.Format("2006"),
		"{YY}", issuedAt.Format("06"),
		"{MM}", issuedAt.Format("01"),
		"{DD}", issuedAt.Format("02"),
		"{SEQ}", strconv.FormatInt(seq, 10),
	)
	number = replacer.Replace(number)

	// Anything still braced is a token we do not understand.
	if strings.ContainsAny(number, "{}") {
		return "", fmt.Errorf("unresolved token in invoice format: %s", number)
	}
	return number, nil
}

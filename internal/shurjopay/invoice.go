package shurjopay

import "strings"

// EncodeInvoices joins invoice references as id=amount pairs separated by
// '|', preserving input order. The result rides the checkout request as an
// opaque pass-through value and comes back on verification.
func EncodeInvoices(invoices []InvoiceRef) string {
	var b strings.Builder
	for i, inv := range invoices {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(inv.ID)
		b.WriteByte('=')
		b.WriteString(inv.Amount)
	}
	return b.String()
}

// DecodeInvoices reverses EncodeInvoices. Segments without an '=' are
// silently dropped; an empty input decodes to an empty sequence.
func DecodeInvoices(s string) []InvoiceRef {
	invoices := []InvoiceRef{}
	if s == "" {
		return invoices
	}
	for _, pair := range strings.Split(s, "|") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}
		invoices = append(invoices, InvoiceRef{ID: parts[0], Amount: parts[1]})
	}
	return invoices
}

package stockfolio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Pending order intents persist in their own pipe-delimited file, separate
// from the account snapshot, one record per line:
//
//	ORDER|SIDE|KIND|SYMBOL|PRICE_LIMIT|QUANTITY
//
// Place-time checks are not replayed on load: an intent was checked when it
// was placed, and the book's checks are advisory anyway.

const recordOrder = "ORDER"

// EncodeOrders writes every pending intent of the book to w, buys first.
func EncodeOrders(w io.Writer, b *OrderBook) error {
	for _, o := range b.Pending() {
		_, err := fmt.Fprintf(w, "%s|%s|%s|%s|%s|%s\n",
			recordOrder, o.Side, o.Kind, o.Symbol, o.PriceLimit.Fixed(), o.Quantity)
		if err != nil {
			return fmt.Errorf("writing order for %s: %w", o.Symbol, err)
		}
	}
	return nil
}

// DecodeOrders reads intents written by EncodeOrders into a new book for
// the account. Malformed records produce line-numbered errors.
func DecodeOrders(r io.Reader, account *Account) (*OrderBook, error) {
	book := NewOrderBook(account)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" {
			continue
		}
		parts := strings.Split(txt, snapshotSeparator)
		if parts[0] != recordOrder {
			return nil, fmt.Errorf("unknown record type %q on line %d", parts[0], line)
		}
		if len(parts) < 6 {
			return nil, fmt.Errorf("invalid order format on line %d: %q", line, txt)
		}
		kind, err := ParseKind(parts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid order on line %d: %w", line, err)
		}
		limit, err := decimal.NewFromString(parts[4])
		if err != nil {
			return nil, fmt.Errorf("invalid price limit on line %d: %w", line, err)
		}
		quantity, err := ParseQuantity(parts[5])
		if err != nil {
			return nil, fmt.Errorf("invalid quantity on line %d: %w", line, err)
		}
		o, err := NewOrder(Side(strings.ToUpper(parts[1])), kind, parts[3], M(limit), quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid order on line %d: %w", line, err)
		}
		if err := book.Load(o); err != nil {
			return nil, fmt.Errorf("loading order on line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading orders: %w", err)
	}
	return book, nil
}

// SaveOrders writes the book's pending intents to a file, replacing it.
func SaveOrders(filename string, b *OrderBook) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("saving orders to %q: %w", filename, err)
	}
	if err := EncodeOrders(f, b); err != nil {
		f.Close()
		return fmt.Errorf("saving orders to %q: %w", filename, err)
	}
	return f.Close()
}

// LoadOrders reads pending intents from a file into a new book for the
// account.
func LoadOrders(filename string, account *Account) (*OrderBook, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loading orders from %q: %w", filename, err)
	}
	defer f.Close()
	b, err := DecodeOrders(f, account)
	if err != nil {
		return nil, fmt.Errorf("loading orders from %q: %w", filename, err)
	}
	return b, nil
}

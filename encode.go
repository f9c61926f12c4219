package stockfolio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file persists an account snapshot as pipe-delimited text, in a way
// that is still human-readable and git-friendly.
//
// The format is one record per line:
//
//	HEADER|CASH|DAY
//	LOT|KIND|SYMBOL|UNIT_PRICE|QUANTITY|PURCHASE_DAY
//
// The header comes first, then one LOT line per live lot across all
// symbols, in acquisition order. Numeric fields use a fixed decimal point
// regardless of locale.

const snapshotSeparator = "|"

const (
	recordHeader = "HEADER"
	recordLot    = "LOT"
)

// EncodeSnapshot writes the account's header and every live lot to w.
func EncodeSnapshot(w io.Writer, a *Account) error {
	if _, err := fmt.Fprintf(w, "%s|%s|%d\n", recordHeader, a.cash.Fixed(), a.day); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}
	for symbol, ledger := range a.Ledgers() {
		for _, lot := range ledger.Lots() {
			if !lot.Quantity.IsPositive() {
				continue
			}
			_, err := fmt.Fprintf(w, "%s|%s|%s|%s|%s|%d\n",
				recordLot, ledger.asset.kind, symbol, lot.UnitPrice.Fixed(), lot.Quantity, lot.Day)
			if err != nil {
				return fmt.Errorf("writing lot for %s: %w", symbol, err)
			}
		}
	}
	return nil
}

// DecodeSnapshot reads a snapshot produced by EncodeSnapshot and rebuilds
// the account: the header initializes cash and day, then every lot record
// re-enters through BulkLoad. Malformed records produce line-numbered
// errors.
func DecodeSnapshot(r io.Reader, opts ...Option) (*Account, error) {
	var account *Account

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" {
			continue
		}
		parts := strings.Split(txt, snapshotSeparator)

		switch parts[0] {
		case recordHeader:
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid header format on line %d: %q", line, txt)
			}
			cash, err := decimal.NewFromString(parts[1])
			if err != nil {
				return nil, fmt.Errorf("invalid cash on line %d: %w", line, err)
			}
			day, err := strconv.Atoi(parts[2])
			if err != nil || day < 0 {
				return nil, fmt.Errorf("invalid day %q on line %d", parts[2], line)
			}
			account, err = New(M(cash), opts...)
			if err != nil {
				return nil, fmt.Errorf("invalid header on line %d: %w", line, err)
			}
			account.AdvanceDay(day)

		case recordLot:
			if account == nil {
				return nil, fmt.Errorf("missing %s before %s data on line %d", recordHeader, recordLot, line)
			}
			if len(parts) < 6 {
				return nil, fmt.Errorf("invalid lot format on line %d: %q", line, txt)
			}
			kind, err := ParseKind(parts[1])
			if err != nil {
				return nil, fmt.Errorf("invalid lot on line %d: %w", line, err)
			}
			price, err := decimal.NewFromString(parts[3])
			if err != nil {
				return nil, fmt.Errorf("invalid unit price on line %d: %w", line, err)
			}
			quantity, err := ParseQuantity(parts[4])
			if err != nil {
				return nil, fmt.Errorf("invalid quantity on line %d: %w", line, err)
			}
			day, err := strconv.Atoi(parts[5])
			if err != nil {
				return nil, fmt.Errorf("invalid purchase day on line %d: %w", line, err)
			}
			asset, err := NewAsset(kind, parts[2], M(price))
			if err != nil {
				return nil, fmt.Errorf("invalid asset on line %d: %w", line, err)
			}
			if err := account.BulkLoad(asset, quantity, day); err != nil {
				return nil, fmt.Errorf("loading lot on line %d: %w", line, err)
			}

		default:
			return nil, fmt.Errorf("unknown record type %q on line %d", parts[0], line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("snapshot has no %s record", recordHeader)
	}
	return account, nil
}

// SaveAccount writes the account snapshot to a file, replacing it.
func SaveAccount(filename string, a *Account) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("saving account to %q: %w", filename, err)
	}
	if err := EncodeSnapshot(f, a); err != nil {
		f.Close()
		return fmt.Errorf("saving account to %q: %w", filename, err)
	}
	return f.Close()
}

// LoadAccount reads an account snapshot from a file.
func LoadAccount(filename string, opts ...Option) (*Account, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loading account from %q: %w", filename, err)
	}
	defer f.Close()
	a, err := DecodeSnapshot(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading account from %q: %w", filename, err)
	}
	return a, nil
}

package stockfolio

import (
	"container/heap"
	"fmt"
	"strings"
)

// Side is the direction of a pending order intent.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Order is an immutable pending intent to buy or sell. It is not linked to
// ledger lots: placing a sell order does not reserve the quantity it names.
type Order struct {
	Symbol     string
	Kind       Kind
	PriceLimit Money
	Quantity   Quantity
	Side       Side
}

// NewOrder creates an order intent. The price limit and quantity must be
// strictly positive and the symbol non-empty.
func NewOrder(side Side, kind Kind, symbol string, priceLimit Money, quantity Quantity) (*Order, error) {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("%w: order symbol cannot be empty", ErrInvalidArgument)
	}
	if side != Buy && side != Sell {
		return nil, fmt.Errorf("%w: order side must be %s or %s", ErrInvalidArgument, Buy, Sell)
	}
	if !priceLimit.IsPositive() {
		return nil, fmt.Errorf("%w: price limit must be positive, got %s", ErrInvalidArgument, priceLimit)
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be positive, got %s", ErrInvalidArgument, quantity)
	}
	return &Order{Symbol: symbol, Kind: kind, PriceLimit: priceLimit, Quantity: quantity, Side: side}, nil
}

func (o *Order) String() string {
	return fmt.Sprintf("%s %s %s @ %s", o.Side, o.Kind, o.Symbol, o.PriceLimit)
}

// OrderBook holds pending order intents for one account, ranked by price
// attractiveness: highest limit first on the buy side, lowest limit first on
// the sell side. It never matches or executes anything; a caller acts on the
// peeked best intent with a real Buy or Sell against the account.
type OrderBook struct {
	account *Account
	buys    orderQueue
	sells   orderQueue
}

// NewOrderBook creates an order book fed by the account's cash and holdings
// checks.
func NewOrderBook(account *Account) *OrderBook {
	return &OrderBook{
		account: account,
		buys: orderQueue{less: func(a, b *Order) bool {
			return a.PriceLimit.GreaterThan(b.PriceLimit)
		}},
		sells: orderQueue{less: func(a, b *Order) bool {
			return a.PriceLimit.LessThan(b.PriceLimit)
		}},
	}
}

// Place admits an order intent.
//
// A buy requires quantity*limit within the account's current cash; a sell
// requires the account to currently hold the quantity. Both checks are
// advisory: nothing is escrowed or reserved, cash and holdings only move on
// a real Buy or Sell.
func (b *OrderBook) Place(o *Order) error {
	if o == nil {
		return fmt.Errorf("%w: order cannot be nil", ErrInvalidArgument)
	}
	if strings.TrimSpace(o.Symbol) == "" {
		return fmt.Errorf("%w: order symbol cannot be empty", ErrInvalidArgument)
	}
	if !o.PriceLimit.IsPositive() || !o.Quantity.IsPositive() {
		return fmt.Errorf("%w: order price and quantity must be positive", ErrInvalidArgument)
	}

	switch o.Side {
	case Buy:
		cost := o.PriceLimit.Mul(o.Quantity)
		if cost.GreaterThan(b.account.Cash()) {
			return fmt.Errorf("%w: order cost %s exceeds cash %s", ErrInsufficientFunds, cost, b.account.Cash())
		}
		heap.Push(&b.buys, o)
	case Sell:
		symbol := normalizeSymbol(o.Symbol)
		if b.account.Ledger(symbol) == nil {
			return fmt.Errorf("%w: %s is not held", ErrUnknownSymbol, symbol)
		}
		if b.account.Position(symbol).LessThan(o.Quantity) {
			return fmt.Errorf("%w: %s requested, %s held",
				ErrInsufficientHoldings, o.Quantity, b.account.Position(symbol))
		}
		heap.Push(&b.sells, o)
	default:
		return fmt.Errorf("%w: unknown order side %q", ErrInvalidArgument, o.Side)
	}
	return nil
}

// Load admits an already-validated intent without the place-time cash and
// holdings checks. It is the re-hydration path for intents admitted in an
// earlier session, the order-book counterpart of Account.BulkLoad.
func (b *OrderBook) Load(o *Order) error {
	if o == nil {
		return fmt.Errorf("%w: order cannot be nil", ErrInvalidArgument)
	}
	switch o.Side {
	case Buy:
		heap.Push(&b.buys, o)
	case Sell:
		heap.Push(&b.sells, o)
	default:
		return fmt.Errorf("%w: unknown order side %q", ErrInvalidArgument, o.Side)
	}
	return nil
}

// Pending returns every pending intent, buys first. Within a side the slice
// follows the heap's internal layout, not price rank.
func (b *OrderBook) Pending() []*Order {
	out := make([]*Order, 0, b.buys.Len()+b.sells.Len())
	out = append(out, b.buys.orders...)
	out = append(out, b.sells.orders...)
	return out
}

// PeekBestBuy returns the pending buy with the highest price limit without
// removing it, or false when no buy is pending.
func (b *OrderBook) PeekBestBuy() (*Order, bool) { return b.buys.peek() }

// PeekBestSell returns the pending sell with the lowest price limit without
// removing it, or false when no sell is pending.
func (b *OrderBook) PeekBestSell() (*Order, bool) { return b.sells.peek() }

// PendingBuys returns the number of pending buy intents.
func (b *OrderBook) PendingBuys() int { return b.buys.Len() }

// PendingSells returns the number of pending sell intents.
func (b *OrderBook) PendingSells() int { return b.sells.Len() }

// orderQueue is a binary heap of orders parameterized by its comparator.
// The order among equal price limits is the heap's own and must be treated
// as arbitrary.
type orderQueue struct {
	orders []*Order
	less   func(a, b *Order) bool
}

func (q *orderQueue) Len() int           { return len(q.orders) }
func (q *orderQueue) Less(i, j int) bool { return q.less(q.orders[i], q.orders[j]) }
func (q *orderQueue) Swap(i, j int)      { q.orders[i], q.orders[j] = q.orders[j], q.orders[i] }

func (q *orderQueue) Push(x any) { q.orders = append(q.orders, x.(*Order)) }

func (q *orderQueue) Pop() any {
	old := q.orders
	n := len(old)
	o := old[n-1]
	old[n-1] = nil
	q.orders = old[:n-1]
	return o
}

func (q *orderQueue) peek() (*Order, bool) {
	if len(q.orders) == 0 {
		return nil, false
	}
	return q.orders[0], true
}

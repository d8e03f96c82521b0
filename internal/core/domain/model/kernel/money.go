package kernel

import (
	"errors"
	"fmt"

	"onlineshop/internal/pkg/errs"
	"onlineshop/internal/pkg/guard"
)

// Currency identifies the currency a price is denominated in.
type Currency string

const (
	// RON is the Romanian leu.
	RON Currency = "RON"
	// EUR is the euro.
	EUR Currency = "EUR"
	// USD is the US dollar.
	USD Currency = "USD"
)

// getValidCurrencies returns the set of currencies the shop accepts.
func getValidCurrencies() map[Currency]struct{} {
	return map[Currency]struct{}{
		RON: {},
		EUR: {},
		USD: {},
	}
}

// Validate checks that the currency is one of the accepted values.
func (c Currency) Validate() error {
	if _, ok := getValidCurrencies()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("currency is invalid",
			fmt.Errorf("%q is not a supported currency", string(c)))
	}
	return nil
}

// String returns the ISO 4217 code of the currency.
func (c Currency) String() string {
	return string(c)
}

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money is an immutable value object representing a price: an amount in minor
// units (cents, bani) together with its currency. The zero value is invalid and
// fails validation; use NewMoney.
//
// Example:
//
//	price, err := kernel.NewMoney(1999, kernel.EUR) // 19.99 EUR
type Money struct { //nolint:recvcheck //using for validation
	amount   int64
	currency Currency

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value. The amount is given in minor units and must
// not be negative; the currency must be one of the accepted values.
func NewMoney(amount int64, currency Currency) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		money.setAmount(amount),
		money.setCurrency(currency),
	); err != nil {
		return Money{}, err
	}

	return money, nil
}

// Validate ensures the Money value was created via NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency of the amount.
func (m Money) Currency() Currency {
	return m.currency
}

// IsEqual reports whether two Money values have the same amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String formats the price as "<units>.<cents> <currency>".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.amount/100, m.amount%100, m.currency)
}

func (m *Money) setAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%d is negative", amount))
	}
	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	m.currency = currency
	return nil
}

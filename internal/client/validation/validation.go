// Package validation holds the pre-submission predicates consumed by the
// form layer. A failure here never reaches the network; the authoritative
// checks stay server-side.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// User-facing validation messages.
const (
	MsgRequired           = "This field is required"
	MsgInvalidEmail       = "Please enter a valid email address"
	MsgMinPasswordLength  = "Password must be at least 6 characters"
	MsgPasswordsMustMatch = "Passwords must match"
	MsgInvalidAmount      = "Please enter a valid amount"
	MsgMinimumAmount      = "Minimum amount is $0.01"
)

// ErrInsufficientFunds is the advisory overdraft rejection. The server
// remains the authority; a stale local balance simply lets the request
// through to be rejected remotely.
var ErrInsufficientFunds = errors.New("Insufficient funds. This transaction would exceed your available balance.")

var validate = validator.New(validator.WithRequiredStructEnabled())

var minimumAmount = decimal.RequireFromString("0.01")

// LoginForm are the credentials the login form submits.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func (f LoginForm) Validate() error {
	return translate(validate.Struct(f))
}

// RegisterForm is the registration form payload.
type RegisterForm struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

func (f RegisterForm) Validate() error {
	return translate(validate.Struct(f))
}

// ParseAmount parses a user-entered amount and applies the form rules:
// it must be a number, positive, and at least $0.01.
func ParseAmount(input string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, errors.New(MsgInvalidAmount)
	}
	if amount.Sign() <= 0 {
		return decimal.Zero, errors.New(MsgInvalidAmount)
	}
	if amount.LessThan(minimumAmount) {
		return decimal.Zero, errors.New(MsgMinimumAmount)
	}
	return amount, nil
}

// CheckWithdrawal blocks a withdrawal exceeding the last known balance.
func CheckWithdrawal(amount, balance decimal.Decimal) error {
	if amount.GreaterThan(balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// translate maps the first field error to its user-facing message, so the
// form layer shows one message at a time.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return errors.New(MsgRequired)
	case "email":
		return errors.New(MsgInvalidEmail)
	case "min":
		return errors.New(MsgMinPasswordLength)
	case "eqfield":
		return errors.New(MsgPasswordsMustMatch)
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}

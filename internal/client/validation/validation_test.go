package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLoginForm_Validate(t *testing.T) {
	cases := []struct {
		name    string
		form    LoginForm
		wantMsg string
	}{
		{"valid", LoginForm{Email: "a@b.com", Password: "secret1"}, ""},
		{"missing email", LoginForm{Password: "secret1"}, MsgRequired},
		{"bad email", LoginForm{Email: "not-an-email", Password: "secret1"}, MsgInvalidEmail},
		{"missing password", LoginForm{Email: "a@b.com"}, MsgRequired},
		{"short password", LoginForm{Email: "a@b.com", Password: "abc"}, MsgMinPasswordLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.form.Validate()
			if tc.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.wantMsg)
		})
	}
}

func TestRegisterForm_Validate(t *testing.T) {
	valid := RegisterForm{
		Name:            "Ada",
		Email:           "ada@bank.io",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	require.NoError(t, valid.Validate())

	mismatch := valid
	mismatch.ConfirmPassword = "secret2"
	require.EqualError(t, mismatch.Validate(), MsgPasswordsMustMatch)

	unnamed := valid
	unnamed.Name = ""
	require.EqualError(t, unnamed.Validate(), MsgRequired)
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input   string
		wantMsg string
	}{
		{"25.50", ""},
		{"0.01", ""},
		{"abc", MsgInvalidAmount},
		{"", MsgInvalidAmount},
		{"-5", MsgInvalidAmount},
		{"0", MsgInvalidAmount},
		{"0.005", MsgMinimumAmount},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			amount, err := ParseAmount(tc.input)
			if tc.wantMsg == "" {
				require.NoError(t, err)
				require.True(t, amount.Equal(decimal.RequireFromString(tc.input)))
				return
			}
			require.EqualError(t, err, tc.wantMsg)
		})
	}
}

func TestCheckWithdrawal(t *testing.T) {
	balance := decimal.RequireFromString("100.00")

	require.NoError(t, CheckWithdrawal(decimal.RequireFromString("100.00"), balance))
	require.NoError(t, CheckWithdrawal(decimal.RequireFromString("0.01"), balance))
	require.ErrorIs(t, CheckWithdrawal(decimal.RequireFromString("100.01"), balance), ErrInsufficientFunds)
}

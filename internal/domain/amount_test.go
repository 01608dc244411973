package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input   string
		want    string
		wantErr error
	}{
		{input: "100.1234", want: "100.1234"},
		{input: " 12.920 ", want: "12.920"},
		{input: "50", want: "50"},
		{input: "0.0001", want: "0.0001"},
		{input: "0", want: "0"},
		{input: "", wantErr: ErrInvalidAmount},
		{input: "1.2.3", wantErr: ErrInvalidAmount},
		{input: "abc", wantErr: ErrInvalidAmount},
		{input: "-0.5", wantErr: ErrNegativeAmount},
		{input: "1e3", wantErr: ErrInvalidAmount},
		{input: "1E3", wantErr: ErrInvalidAmount},
		{input: "1e-30", wantErr: ErrInvalidAmount},
		{input: "1e100000", wantErr: ErrInvalidAmount},
		{input: "0.0000000000000000000000000001", want: "0.0000000000000000000000000001"},
		{input: "0.00000000000000000000000000001", wantErr: ErrInvalidAmount},
		{input: "79228162514264337593543950335", want: "79228162514264337593543950335"},
		{input: "79228162514264337593543950336", wantErr: ErrInvalidAmount},
		{input: strings.Repeat("9", 100_000), wantErr: ErrInvalidAmount},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(subtestName(tc.input), func(t *testing.T) {
			t.Parallel()

			got, err := ParseAmount(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

// subtestName keeps subtest names readable for very long inputs.
func subtestName(input string) string {
	if len(input) > 32 {
		return input[:32] + "..."
	}

	return input
}

func TestAmountArithmeticKeepsScale(t *testing.T) {
	t.Parallel()

	a := MustParseAmount

	testCases := []struct {
		name string
		got  Amount
		want string
	}{
		{name: "AddAlignsScale", got: a("100.1234").Add(a("20")), want: "120.1234"},
		{name: "SubAlignsScale", got: a("100.1234").Sub(a("50")), want: "50.1234"},
		{name: "SubToZeroKeepsScale", got: a("101.291").Sub(a("101.291")), want: "0.000"},
		{name: "SubGoesNegative", got: a("50.1234").Sub(a("100.1234")), want: "-50.0000"},
		{name: "ZeroPlusX", got: a("0.0000").Add(a("12.92")), want: "12.92"},
		{name: "XPlusZero", got: a("202.582").Add(a("0.000")), want: "202.582"},
		{name: "ZeroValuePlusX", got: ZeroAmount.Add(a("55.55")), want: "55.55"},
		{name: "XMinusZero", got: a("7.50").Sub(a("0.0")), want: "7.50"},
		{name: "ZeroMinusX", got: a("0.00").Sub(a("1.5")), want: "-1.5"},
		{name: "IntegersStayIntegers", got: a("20").Sub(a("20")), want: "0"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, tc.got.String())
		})
	}
}

func TestAmountOrdering(t *testing.T) {
	t.Parallel()

	a := MustParseAmount

	require.True(t, a("0.0234").LessThan(a("0.1")))
	require.False(t, a("0.10").LessThan(a("0.1")))
	require.True(t, a("0.10").Equal(a("0.1")))
	require.Equal(t, -1, a("1").Cmp(a("2")))
	require.Equal(t, 0, a("2.000").Cmp(a("2")))
	require.Equal(t, 1, a("3").Cmp(a("2.9999")))
	require.True(t, ZeroAmount.IsZero())
	require.True(t, a("1").Sub(a("2")).IsNegative())
	require.Equal(t, "2.5", a("2.5").Decimal().String())
}

func TestAmountJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(AccountState{
		Client:    7,
		Available: MustParseAmount("1.50"),
		Held:      MustParseAmount("0.000"),
		Total:     MustParseAmount("1.50"),
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"client":7,"available":"1.50","held":"0.000","total":"1.50","locked":false}`, string(b))

	var got struct {
		Quoted Amount `json:"quoted"`
		Bare   Amount `json:"bare"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"quoted":"12.340","bare":0.5}`), &got))
	require.Equal(t, "12.340", got.Quoted.String())
	require.Equal(t, "0.5", got.Bare.String())

	require.ErrorIs(t, json.Unmarshal([]byte(`{"quoted":"-1"}`), &got), ErrNegativeAmount)
}

func TestOpError(t *testing.T) {
	t.Parallel()

	var err error = &OpError{Op: KindDispute, Client: 2, TxID: 11, Kind: ErrDepositAlreadyReversed}

	require.EqualError(t, err, "dispute client=2 tx=11: deposit has already been reversed")
	require.ErrorIs(t, err, ErrDepositAlreadyReversed)
	require.NotErrorIs(t, err, ErrDepositNotDisputed)
}

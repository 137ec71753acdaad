package commission_test

import (
	"math"
	"testing"

	"github.com/SscSPs/dealership_commission_app/internal/core/commission"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, d(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func TestSaleCommission_Tiers(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  string
	}{
		{"zero", "0", "0"},
		{"just above zero", "0.01", "200"},
		{"below first threshold", "9999.99", "200"},
		{"first threshold belongs to higher tier", "10000", "300"},
		{"middle tier", "15000", "300"},
		{"second threshold", "20000", "400"},
		{"upper tier", "29999.99", "400"},
		{"third threshold", "30000", "500"},
		{"far above", "85000", "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertAmount(t, tt.want, commission.SaleCommission(d(tt.price)))
		})
	}
}

func TestAccessoriesCommission_NewVehicle(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"0", "0"},
		{"998", "0"},
		{"999", "0"},
		{"1995.99", "0"},
		{"1996", "100"},
		{"2994", "200"},
		{"5000", "400"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assertAmount(t, tt.want, commission.AccessoriesCommission(commission.VehicleNew, d(tt.value)))
		})
	}
}

func TestAccessoriesCommission_UsedVehicle(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"0", "0"},
		{"849", "0"},
		{"850", "100"},
		{"1699.99", "100"},
		{"1700", "200"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assertAmount(t, tt.want, commission.AccessoriesCommission(commission.VehicleUsed, d(tt.value)))
		})
	}
}

func TestProfitCommission(t *testing.T) {
	tests := []struct {
		name  string
		price string
		cost  string
		want  string
	}{
		{"exactly one increment", "2000", "1100", "100"},
		{"no profit", "2000", "2000", "0"},
		{"loss is clamped", "2000", "2500", "0"},
		{"below one increment", "800", "500", "0"},
		{"two increments", "2500", "700", "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commission.ProfitCommission(d(tt.price), d(tt.cost))
			assertAmount(t, tt.want, got)
			assert.False(t, got.IsNegative())
		})
	}
}

func TestCalculate_TotalIsSumOfParts(t *testing.T) {
	inputs := []commission.Input{
		{},
		{SalePrice: d("25000"), VehicleType: commission.VehicleNew, AccessoriesValue: d("3000"), SpiffAmount: d("75.50")},
		{SalePrice: d("9000"), VehicleType: commission.VehicleUsed, AccessoriesValue: d("2600"), WarrantyPrice: d("3000"), WarrantyCost: d("1000")},
		{SalePrice: d("45000"), VehicleType: commission.VehicleNew, ServicePrice: d("4000"), ServiceCost: d("100"), SpiffAmount: d("250")},
	}

	for _, in := range inputs {
		b := commission.Calculate(in)
		sum := b.Sale.Add(b.Accessories).Add(b.Warranty).Add(b.Service).Add(b.Spiff)
		assert.True(t, sum.Equal(b.Total), "total %s != sum %s", b.Total, sum)

		categorySum := decimal.Zero
		for _, amount := range b.Categories() {
			categorySum = categorySum.Add(amount)
		}
		assert.True(t, categorySum.Equal(b.Total))
	}
}

func TestCalculate_DealershipScenario(t *testing.T) {
	b := commission.Calculate(commission.Input{
		SalePrice:        d("25000"),
		VehicleType:      commission.VehicleNew,
		AccessoriesValue: d("1996"),
		WarrantyPrice:    d("1500"),
		WarrantyCost:     d("600"),
		ServicePrice:     d("800"),
		ServiceCost:      d("500"),
		SpiffAmount:      d("150"),
	})

	assertAmount(t, "400", b.Sale)
	assertAmount(t, "100", b.Accessories)
	assertAmount(t, "100", b.Warranty)
	assertAmount(t, "0", b.Service)
	assertAmount(t, "150", b.Spiff)
	assertAmount(t, "750", b.Total)
}

func TestCalculate_MalformedInputNeverFails(t *testing.T) {
	assert.NotPanics(t, func() {
		b := commission.Calculate(commission.Input{
			SalePrice:        commission.AmountFromFloat(math.NaN()),
			AccessoriesValue: commission.AmountFromFloat(math.Inf(1)),
			WarrantyPrice:    commission.AmountFromString("not a number"),
			WarrantyCost:     commission.AmountFromString(""),
			SpiffAmount:      commission.AmountFromFloat(-50),
		})
		assertAmount(t, "0", b.Sale)
		assertAmount(t, "0", b.Accessories)
		assertAmount(t, "0", b.Warranty)
		assertAmount(t, "0", b.Spiff)
		assertAmount(t, "0", b.Total)
	})

	// Negative decimals that bypass the parsing helpers are clamped as well.
	b := commission.Calculate(commission.Input{SalePrice: d("-100"), SpiffAmount: d("-1")})
	assertAmount(t, "0", b.Total)
}

func TestAmountFromString(t *testing.T) {
	assertAmount(t, "25000", commission.AmountFromString("25,000"))
	assertAmount(t, "1500.25", commission.AmountFromString(" $1500.25 "))
	assertAmount(t, "0", commission.AmountFromString("-3"))
	assertAmount(t, "0", commission.AmountFromString("NaN"))
}

func TestInputNormalize_VehicleType(t *testing.T) {
	in := commission.Input{VehicleType: " NEW "}.Normalize()
	assert.Equal(t, commission.VehicleNew, in.VehicleType)

	// Anything other than "new" takes the used-vehicle accessories rule.
	b := commission.Calculate(commission.Input{VehicleType: "demo", AccessoriesValue: d("850")})
	assertAmount(t, "100", b.Accessories)
}

func TestCalculate_RoundsAmountsToCents(t *testing.T) {
	// 9999.999 is stored as 10000.00 and must be priced in the 10000 tier.
	b := commission.Calculate(commission.Input{SalePrice: d("9999.999"), SpiffAmount: d("10.005")})
	assertAmount(t, "300", b.Sale)
	assertAmount(t, "10.01", b.Spiff)
	assertAmount(t, "310.01", b.Total)
	assert.Equal(t, int32(-2), b.Total.Exponent())

	stored := commission.Calculate(commission.Input{SalePrice: d("10000.00"), SpiffAmount: d("10.01")})
	assert.True(t, stored.Total.Equal(b.Total), "stored=%s wire=%s", stored.Total, b.Total)
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.005", "10.01"},
		{"10.004", "10"},
		{"0.001", "0"},
		{"-0.004", "0"},
		{"-12.50", "0"},
		{"25000", "25000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assertAmount(t, tt.want, commission.NormalizeAmount(d(tt.in)))
		})
	}
	assertAmount(t, "10.01", commission.AmountFromString("$10.005"))
	assertAmount(t, "0.1", commission.AmountFromFloat(0.1))
}

package stockfolio

import "testing"

func TestAcquisitionCost(t *testing.T) {
	testCases := []struct {
		name     string
		kind     Kind
		price    Money
		quantity Quantity
		want     Money
	}{
		{
			name:     "share below fee threshold pays the flat fee",
			kind:     Share,
			price:    M(50),
			quantity: Q(10), // 500 < 1000
			want:     M(5),
		},
		{
			name:     "share exactly at threshold pays no fee",
			kind:     Share,
			price:    M(100),
			quantity: Q(10), // 1000, not below the threshold
			want:     M(0),
		},
		{
			name:     "share above threshold pays no fee",
			kind:     Share,
			price:    M(150),
			quantity: Q(10),
			want:     M(0),
		},
		{
			name:     "commodity never pays an acquisition cost",
			kind:     Commodity,
			price:    M(1800),
			quantity: Q(2),
			want:     M(0),
		},
		{
			name:     "currency pays the spread on the nominal value",
			kind:     Currency,
			price:    M(4),
			quantity: Q(1000), // 4000 * 0.005
			want:     M(20),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := AcquisitionCost(tc.kind, tc.price, tc.quantity)
			if !got.Equal(tc.want) {
				t.Errorf("AcquisitionCost(%v, %s, %s) = %s; want %s", tc.kind, tc.price, tc.quantity, got, tc.want)
			}
		})
	}
}

func TestRealValue(t *testing.T) {
	testCases := []struct {
		name     string
		kind     Kind
		price    Money
		quantity Quantity
		daysHeld int
		want     Money
	}{
		{
			name:     "share below threshold is marked down by the flat fee",
			kind:     Share,
			price:    M(50),
			quantity: Q(10),
			daysHeld: 100, // fee independent of time
			want:     M(495),
		},
		{
			name:     "share above threshold is worth the nominal value",
			kind:     Share,
			price:    M(150),
			quantity: Q(10),
			daysHeld: 0,
			want:     M(1500),
		},
		{
			name:     "commodity pays storage per unit per day",
			kind:     Commodity,
			price:    M(1800),
			quantity: Q(2),
			daysHeld: 10, // 3600 - 2*0.5*10
			want:     M(3590),
		},
		{
			name:     "commodity storage is charged for at least one day",
			kind:     Commodity,
			price:    M(1800),
			quantity: Q(2),
			daysHeld: 0, // clamped to 1 day
			want:     M(3599),
		},
		{
			name:     "currency is marked down by the spread, duration independent",
			kind:     Currency,
			price:    M(4),
			quantity: Q(1000),
			daysHeld: 365, // 4000 - 4000*0.005
			want:     M(3980),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := RealValue(tc.kind, tc.price, tc.quantity, tc.daysHeld)
			if !got.Equal(tc.want) {
				t.Errorf("RealValue(%v, %s, %s, %d) = %s; want %s", tc.kind, tc.price, tc.quantity, tc.daysHeld, got, tc.want)
			}
		})
	}
}

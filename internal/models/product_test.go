package models

import "testing"

func TestProductStockFlags(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		minLevel int
		inStock  bool
		lowStock bool
	}{
		{"充足库存", 100, 10, true, false},
		{"等于预警线", 10, 10, true, true},
		{"低于预警线", 3, 10, true, true},
		{"零库存", 0, 10, false, true},
		{"负库存", -1, 10, false, true},
		{"零预警线零库存", 0, 0, false, true},
	}
	for _, tc := range cases {
		product := Product{StockQuantity: tc.stock, MinStockLevel: tc.minLevel}
		if got := product.InStock(); got != tc.inStock {
			t.Fatalf("%s: InStock want %v got %v", tc.name, tc.inStock, got)
		}
		if got := product.LowStock(); got != tc.lowStock {
			t.Fatalf("%s: LowStock want %v got %v", tc.name, tc.lowStock, got)
		}
	}
}

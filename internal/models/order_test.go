package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderModelTest(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(AllModels()...); err != nil {
		t.Fatalf("migrate order tables failed: %v", err)
	}
	return db
}

func TestOrderItemSubtotalRecomputedOnSave(t *testing.T) {
	db := setupOrderModelTest(t)

	item := OrderItem{
		OrderID:     900001,
		ProductID:   1,
		ProductName: "测试商品",
		UnitPrice:   NewMoneyFromDecimal(decimal.NewFromFloat(19.90)),
		Quantity:    3,
		// 故意写错的小计，钩子应当覆盖
		Subtotal: NewMoneyFromDecimal(decimal.NewFromInt(1)),
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create order item failed: %v", err)
	}
	if !item.Subtotal.Equal(decimal.NewFromFloat(59.70)) {
		t.Fatalf("subtotal want 59.70 got %s", item.Subtotal)
	}

	item.Quantity = 5
	if err := db.Save(&item).Error; err != nil {
		t.Fatalf("save order item failed: %v", err)
	}
	if !item.Subtotal.Equal(decimal.NewFromFloat(99.50)) {
		t.Fatalf("subtotal want 99.50 got %s", item.Subtotal)
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	price := NewMoneyFromDecimal(decimal.NewFromFloat(1234.5))
	data, err := price.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal money failed: %v", err)
	}
	if string(data) != `"1234.50"` {
		t.Fatalf(`marshal want "1234.50" got %s`, data)
	}

	var parsed Money
	if err := parsed.UnmarshalJSON([]byte(`"99.99"`)); err != nil {
		t.Fatalf("unmarshal money failed: %v", err)
	}
	if !parsed.Equal(decimal.NewFromFloat(99.99)) {
		t.Fatalf("parsed want 99.99 got %s", parsed)
	}
	if err := parsed.UnmarshalJSON([]byte(`25`)); err != nil {
		t.Fatalf("unmarshal numeric money failed: %v", err)
	}
	if !parsed.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("parsed want 25 got %s", parsed)
	}
}

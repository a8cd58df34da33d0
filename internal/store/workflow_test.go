package store

import (
	"math"
	"testing"

	"github.com/Sakibhasan202/Walkin/internal/models"
)

func TestCommitSale_DecrementsStockAndClearsCart(t *testing.T) {
	s := newTestState()
	it := addTestItem(s, "Classic Tee White", 35.00, 120)
	s.AddToCart("u1", it.ID)
	s.AddToCart("u1", it.ID)

	tx, err := s.CommitSale("u1", s.Cart("u1"), models.PaymentCard)
	if err != nil {
		t.Fatalf("satış düşülemedi: %v", err)
	}

	got, _ := s.ItemByID(it.ID)
	if got.Stock != 118 {
		t.Errorf("stok 118 olmalıydı, %d", got.Stock)
	}
	if len(s.Cart("u1")) != 0 {
		t.Error("başarılı satış sonrası sepet boşalmalı")
	}
	if tx.Type != models.TransactionSale || tx.PaymentMethod != models.PaymentCard {
		t.Errorf("kayıt alanları yanlış: %+v", tx)
	}
}

func TestCommitSale_TotalIncludesTaxOnce(t *testing.T) {
	s := newTestState()
	it := addTestItem(s, "Urban Backpack", 89.50, 22)
	s.AddToCart("u1", it.ID)

	tx, err := s.CommitSale("u1", s.Cart("u1"), models.PaymentCash)
	if err != nil {
		t.Fatal(err)
	}

	// 89.50 x 1.08 = 96.66, kuruşa yuvarlanmış
	if tx.TotalAmount != 96.66 {
		t.Errorf("toplam 96.66 olmalıydı, %v", tx.TotalAmount)
	}
}

func TestCommitSale_ClampsStockAtZero(t *testing.T) {
	// Sepet kurulduktan sonra stok dışarıdan düşürülürse satış stoğu
	// eksiye değil 0'a çeker (belgelenmiş clamp politikası).
	s := newTestState()
	it := addTestItem(s, "x", 10, 3)
	s.AddToCart("u1", it.ID)
	s.AddToCart("u1", it.ID)
	s.AddToCart("u1", it.ID)

	one := 1
	s.UpdateItem(it.ID, ItemUpdate{Stock: &one})

	if _, err := s.CommitSale("u1", s.Cart("u1"), models.PaymentQR); err != nil {
		t.Fatal(err)
	}

	got, _ := s.ItemByID(it.ID)
	if got.Stock != 0 {
		t.Errorf("stok 0'a sabitlenmeliydi, %d", got.Stock)
	}
}

func TestCommitSale_ChargesSnapshotNotLiveCart(t *testing.T) {
	s := newTestState()
	a := addTestItem(s, "a", 10.00, 10)
	b := addTestItem(s, "b", 99.00, 10)

	s.AddToCart("u1", a.ID)
	snapshot := s.Cart("u1")

	// ödeme beklerken sepete ikinci ürün giriyor
	s.AddToCart("u1", b.ID)

	tx, err := s.CommitSale("u1", snapshot, models.PaymentCard)
	if err != nil {
		t.Fatal(err)
	}

	if tx.TotalAmount != 10.80 {
		t.Errorf("defter fotoğraftaki tutarı taşımalı (10.80), %v", tx.TotalAmount)
	}
	if len(tx.Items) != 1 || tx.Items[0].Name != "a" {
		t.Errorf("sadece fotoğraftaki satırlar düşülmeli: %+v", tx.Items)
	}

	gotB, _ := s.ItemByID(b.ID)
	if gotB.Stock != 10 {
		t.Errorf("fotoğraf dışı ürünün stoğu değişmemeliydi, %d", gotB.Stock)
	}
	if len(s.Cart("u1")) != 0 {
		t.Error("satış sonrası sepet boşalmalı")
	}
}

func TestCommitSale_EmptyCart(t *testing.T) {
	s := newTestState()
	if _, err := s.CommitSale("u1", s.Cart("u1"), models.PaymentCash); err != ErrEmptyCart {
		t.Errorf("ErrEmptyCart beklenirdi, %v geldi", err)
	}
}

func TestCommitSale_UpdatesKPIWithPreTaxRevenue(t *testing.T) {
	s := newTestState()
	it := addTestItem(s, "x", 100.00, 10)
	s.AddToCart("u1", it.ID)
	s.AddToCart("u1", it.ID)

	before := s.KPI()
	s.CommitSale("u1", s.Cart("u1"), models.PaymentCard)
	after := s.KPI()

	if diff := after.TotalRevenue - before.TotalRevenue; diff != 200.00 {
		t.Errorf("ciro vergi öncesi artmalı (200.00), %v arttı", diff)
	}
	if after.TotalSales-before.TotalSales != 2 {
		t.Errorf("satış adedi 2 artmalıydı")
	}
	if g := after.SalesGrowth - before.SalesGrowth; math.Abs(g-0.1) > 1e-9 {
		t.Errorf("büyüme 0.1 artmalıydı, %v arttı", g)
	}
}

func TestRestock_AddsStockAndRecordsPurchase(t *testing.T) {
	s := newTestState()
	it := addTestItem(s, "Classic Tee White", 35.00, 120)

	tx := s.Restock(it.ID, 50, 15.00)

	got, _ := s.ItemByID(it.ID)
	if got.Stock != 170 {
		t.Errorf("stok 170 olmalıydı, %d", got.Stock)
	}
	if tx.Type != models.TransactionPurchase || tx.TotalAmount != 750.00 {
		t.Errorf("PURCHASE 750.00 beklenirdi: %+v", tx)
	}
	if tx.PaymentMethod != "" {
		t.Error("alım kaydında ödeme yöntemi olmamalı")
	}
	if s.KPI().TotalBuy != 750.00 {
		t.Errorf("TotalBuy 750.00 olmalıydı, %v", s.KPI().TotalBuy)
	}
}

func TestRestock_MissingItemWritesUnknownItemRecord(t *testing.T) {
	s := newTestState()

	tx := s.Restock("yok-boyle-bir-id", 5, 10.00)

	if tx.Items[0].Name != "Unknown Item" {
		t.Errorf("satır adı Unknown Item olmalıydı, %q", tx.Items[0].Name)
	}
	if got := len(s.Transactions()); got != 1 {
		t.Errorf("kayıt yine düşülmeliydi, defter boyu %d", got)
	}
}

func TestLedger_AppendOnlyAndImmutable(t *testing.T) {
	s := newTestState()
	it := addTestItem(s, "Eski İsim", 20.00, 100)

	s.AddToCart("u1", it.ID)
	s.CommitSale("u1", s.Cart("u1"), models.PaymentCash)
	s.Restock(it.ID, 10, 5.00)

	if got := len(s.Transactions()); got != 2 {
		t.Fatalf("2 workflow çağrısı = 2 kayıt, %d var", got)
	}

	// ürünü yeniden adlandır ve sil; geçmiş değişmemeli
	newName := "Yeni İsim"
	s.UpdateItem(it.ID, ItemUpdate{Name: &newName})
	s.DeleteItem(it.ID)

	txs := s.Transactions()
	if got := len(txs); got != 2 {
		t.Errorf("katalog mutasyonları defteri etkilememeli, boy %d", got)
	}
	for _, tx := range txs {
		if tx.Items[0].Name != "Eski İsim" {
			t.Errorf("satır adı işlem anındaki kopya kalmalı, %q oldu", tx.Items[0].Name)
		}
	}

	// dönen kopyayı kurcalamak içeriyi bozamamalı
	txs[0].Items[0].Name = "kurcalandı"
	if s.Transactions()[0].Items[0].Name != "Eski İsim" {
		t.Error("Transactions() kopya döndürmeli")
	}
}

// KPI artımları defterin sıfırdan katlanmasıyla örtüşmeli: tüm mutasyonlar
// iki workflow üzerinden geçtiği sürece bu hep doğru.
func TestKPI_IncrementalMatchesLedgerRefold(t *testing.T) {
	s := newTestState()
	a := addTestItem(s, "a", 12.50, 100)
	b := addTestItem(s, "b", 7.25, 100)

	base := s.KPI()

	for i := 0; i < 3; i++ {
		s.AddToCart("u1", a.ID)
		s.AddToCart("u1", a.ID)
		s.AddToCart("u1", b.ID)
		if _, err := s.CommitSale("u1", s.Cart("u1"), models.PaymentCash); err != nil {
			t.Fatal(err)
		}
	}
	s.Restock(a.ID, 20, 3.00)
	s.Restock(b.ID, 5, 2.50)

	var refoldRevenue, refoldBuy float64
	refoldSales := 0
	for _, tx := range s.Transactions() {
		switch tx.Type {
		case models.TransactionSale:
			for _, l := range tx.Items {
				refoldRevenue += l.Price * float64(l.Quantity)
				refoldSales += l.Quantity
			}
		case models.TransactionPurchase:
			refoldBuy += tx.TotalAmount
		}
	}

	got := s.KPI()
	if math.Abs((got.TotalRevenue-base.TotalRevenue)-refoldRevenue) > 1e-9 {
		t.Errorf("ciro artımı %v, defter katlaması %v", got.TotalRevenue-base.TotalRevenue, refoldRevenue)
	}
	if got.TotalSales-base.TotalSales != refoldSales {
		t.Errorf("adet artımı %d, defter katlaması %d", got.TotalSales-base.TotalSales, refoldSales)
	}
	if math.Abs((got.TotalBuy-base.TotalBuy)-refoldBuy) > 1e-9 {
		t.Errorf("maliyet artımı %v, defter katlaması %v", got.TotalBuy-base.TotalBuy, refoldBuy)
	}
}

package store

import (
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/Sakibhasan202/Walkin/internal/models"

	"github.com/google/uuid"
)

// App - uygulamanın tüm durumu. Kalıcı katman yok; süreç yeniden başlayınca
// her şey sıfırlanır.
var App *State

// State - katalog, defter, KPI ve kullanıcıları tek çatı altında tutar.
// HTTP handler'ları eşzamanlı çalıştığı için tüm mutasyonlar tek mutex
// arkasından geçer. KPI snapshot'ına sadece CommitSale ve Restock dokunur;
// başka bir yoldan güncellenirse defterle tutarlılığı bozulur.
type State struct {
	mu sync.Mutex

	items  []models.InventoryItem // en yeni başta
	ledger []models.Transaction   // sadece sona eklenir, kayıtlar değişmez
	stats  models.KPIStats

	users map[string]models.User        // id -> kullanıcı
	carts map[string][]models.CartLine  // kullanıcı id -> sepet
}

func New() *State {
	return &State{
		users: make(map[string]models.User),
		carts: make(map[string][]models.CartLine),
	}
}

func Init() {
	App = New()
	App.Seed()
	log.Println("Bellek içi durum hazırlandı. Katalog:", len(App.Items("", false)), "ürün")
}

// round2 - para tutarlarını kuruşa yuvarlar. Kayıt oluşturma anında bir kez
// uygulanır, ara hesaplar float64 kalır.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// --- Katalog ---

type ItemUpdate struct {
	Name     *string
	Type     *string
	Price    *float64
	Stock    *int
	ImageURL *string
}

// AddItem - yeni ürünü listenin başına ekler. İsim tekilliği kontrol edilmez,
// aynı isimle birden fazla ürün olabilir.
func (s *State) AddItem(name, itemType string, price float64, stock int, imageURL string) models.InventoryItem {
	item := models.InventoryItem{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      itemType,
		Price:     price,
		Stock:     stock,
		ImageURL:  imageURL,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.InventoryItem{item}, s.items...)
	return item
}

// UpdateItem - dolu gelen alanları mevcut ürünle birleştirir.
func (s *State) UpdateItem(id string, upd ItemUpdate) (models.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if upd.Name != nil {
			s.items[i].Name = *upd.Name
		}
		if upd.Type != nil {
			s.items[i].Type = *upd.Type
		}
		if upd.Price != nil {
			s.items[i].Price = *upd.Price
		}
		if upd.Stock != nil {
			s.items[i].Stock = *upd.Stock
		}
		if upd.ImageURL != nil {
			s.items[i].ImageURL = *upd.ImageURL
		}
		return s.items[i], true
	}
	return models.InventoryItem{}, false
}

// DeleteItem - ürün yoksa sessizce geçer. Defterdeki geçmiş kayıtlar
// etkilenmez, onlar işlem anındaki kopyayı taşıyor.
func (s *State) DeleteItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Items - ekleme sırasıyla kopya döndürür. search, isim veya kategoride
// büyük/küçük harf duyarsız alt dizi araması yapar. inStockOnly POS
// ekranının stok filtresi için.
func (s *State) Items(search string, inStockOnly bool) []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(search))
	res := make([]models.InventoryItem, 0, len(s.items))
	for _, it := range s.items {
		if inStockOnly && it.Stock <= 0 {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(it.Name), q) &&
			!strings.Contains(strings.ToLower(it.Type), q) {
			continue
		}
		res = append(res, it)
	}
	return res
}

func (s *State) ItemByID(id string) (models.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemByIDLocked(id)
}

func (s *State) itemByIDLocked(id string) (models.InventoryItem, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.InventoryItem{}, false
}

// --- Defter & KPI ---

// Transactions - defterin kopyası, ekleme sırasıyla. Görüntüleme sırası
// (en yeni üstte) sunum katmanının işi.
func (s *State) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]models.Transaction, len(s.ledger))
	for i, tx := range s.ledger {
		res[i] = copyTransaction(tx)
	}
	return res
}

func (s *State) KPI() models.KPIStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func copyTransaction(tx models.Transaction) models.Transaction {
	lines := make([]models.TransactionLine, len(tx.Items))
	copy(lines, tx.Items)
	tx.Items = lines
	return tx
}

// --- Kullanıcılar ---

func (s *State) CreateUser(name, email, passwordHash string, role models.UserRole) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, ErrEmailTaken
		}
	}

	u := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	s.users[u.ID] = u
	return u, nil
}

func (s *State) UserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *State) UserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *State) CountByRole(role models.UserRole) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, u := range s.users {
		if u.Role == role {
			n++
		}
	}
	return n
}

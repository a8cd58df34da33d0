package store

import "github.com/Sakibhasan202/Walkin/internal/models"

// Sepetler kullanıcı başına tutulur. Satırlar ürün alanlarının eklenme
// anındaki kopyasını taşır; stok kontrolü her mutasyonda canlı katalogdan
// yapılır.

func (s *State) Cart(userID string) []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]models.CartLine, len(s.carts[userID]))
	copy(lines, s.carts[userID])
	return lines
}

// AddToCart - ürün sepette varsa adedi 1 artırır, yoksa 1 adetlik yeni satır
// açar. Artış mevcut stoğu aşacaksa ErrStockExceeded döner ve sepet değişmez.
func (s *State) AddToCart(userID, itemID string) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.itemByIDLocked(itemID)
	if !ok {
		return nil, ErrItemNotFound
	}

	cart := s.carts[userID]
	for i := range cart {
		if cart[i].ItemID != itemID {
			continue
		}
		if cart[i].Quantity >= item.Stock {
			return nil, ErrStockExceeded
		}
		cart[i].Quantity++
		return s.cartCopyLocked(userID), nil
	}

	if item.Stock < 1 {
		return nil, ErrStockExceeded
	}

	s.carts[userID] = append(cart, models.CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Type:     item.Type,
		Price:    item.Price,
		ImageURL: item.ImageURL,
		Quantity: 1,
	})
	return s.cartCopyLocked(userID), nil
}

// UpdateCartQuantity - adedi delta kadar oynatır. Sonuç 0 veya altına inerse
// satır tamamen silinir. Ürün hala katalogdaysa ve yeni adet stoğu aşıyorsa
// ErrStockExceeded döner, satır olduğu gibi kalır. Ürün bu arada katalogdan
// silindiyse stok sınırı uygulanmaz; satır ödeme anına kadar sepette kalabilir.
func (s *State) UpdateCartQuantity(userID, itemID string, delta int) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	for i := range cart {
		if cart[i].ItemID != itemID {
			continue
		}

		newQty := cart[i].Quantity + delta
		if newQty <= 0 {
			s.carts[userID] = append(cart[:i], cart[i+1:]...)
			return s.cartCopyLocked(userID), nil
		}
		if item, ok := s.itemByIDLocked(itemID); ok && newQty > item.Stock {
			return nil, ErrStockExceeded
		}
		cart[i].Quantity = newQty
		return s.cartCopyLocked(userID), nil
	}
	return nil, ErrLineNotFound
}

func (s *State) RemoveFromCart(userID, itemID string) []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	for i := range cart {
		if cart[i].ItemID == itemID {
			s.carts[userID] = append(cart[:i], cart[i+1:]...)
			break
		}
	}
	return s.cartCopyLocked(userID)
}

func (s *State) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func (s *State) cartCopyLocked(userID string) []models.CartLine {
	lines := make([]models.CartLine, len(s.carts[userID]))
	copy(lines, s.carts[userID])
	return lines
}

// CartSubtotal - vergi öncesi ara toplam.
func CartSubtotal(lines []models.CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}

package store

import "errors"

// Bu hatalarda durum hiç değişmez; handler'lar uygun HTTP koduna çevirir.
var (
	ErrItemNotFound  = errors.New("ürün bulunamadı")
	ErrLineNotFound  = errors.New("sepette böyle bir satır yok")
	ErrStockExceeded = errors.New("istenen adet mevcut stoğu aşıyor")
	ErrEmptyCart     = errors.New("sepet boş")
	ErrEmailTaken    = errors.New("bu email zaten kayıtlı")
)

package pos

import (
	"context"
	"time"

	"github.com/Sakibhasan202/Walkin/internal/models"
)

// PaymentProcessor - ödeme tahsilatı. Gerçek bir gateway entegrasyonu kapsam
// dışı; arayüz testlerde başarısız işlemciyle failed yolunu çalıştırmak için
// de kullanılıyor.
type PaymentProcessor interface {
	Process(ctx context.Context, amount float64, method models.PaymentMethod) error
}

// Simulator - sabit gecikmeden sonra koşulsuz başarı.
type Simulator struct {
	Delay time.Duration
}

func NewSimulator() Simulator {
	return Simulator{Delay: 1500 * time.Millisecond}
}

func (s Simulator) Process(ctx context.Context, amount float64, method models.PaymentMethod) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.Delay):
		return nil
	}
}

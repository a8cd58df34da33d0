package pos

import (
	"errors"
	"sync"
)

// Checkout oturumu durum makinesi:
//
//	idle -> awaiting_payment -> processing -> success -> idle
//	                 ^                |
//	                 +---- failed <---+
//
// Ödeme reddedilirse sepet korunur ve oturum failed üzerinden ödeme
// ekranına döner; kasiyer tekrar deneyebilir.
type CheckoutState string

const (
	StateIdle            CheckoutState = "idle"
	StateAwaitingPayment CheckoutState = "awaiting_payment"
	StateProcessing      CheckoutState = "processing"
	StateSuccess         CheckoutState = "success"
	StateFailed          CheckoutState = "failed"
)

var ErrInvalidTransition = errors.New("bu durumda geçersiz işlem")

var allowed = map[CheckoutState][]CheckoutState{
	StateIdle:            {StateAwaitingPayment},
	StateAwaitingPayment: {StateProcessing, StateIdle},
	StateProcessing:      {StateSuccess, StateFailed},
	StateSuccess:         {StateIdle},
	StateFailed:          {StateAwaitingPayment},
}

// SessionManager - kullanıcı başına checkout durumu. Kayıt yoksa oturum
// idle kabul edilir; idle'a dönen oturum silinir.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]CheckoutState
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]CheckoutState)}
}

func (m *SessionManager) State(userID string) CheckoutState {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s
	}
	return StateIdle
}

// Transition - geçiş tablosuna uymayan her istek ErrInvalidTransition ile
// reddedilir; eşzamanlı iki confirm'den sadece ilki processing'e geçebilir.
func (m *SessionManager) Transition(userID string, to CheckoutState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := StateIdle
	if s, ok := m.sessions[userID]; ok {
		from = s
	}

	for _, t := range allowed[from] {
		if t == to {
			if to == StateIdle {
				delete(m.sessions, userID)
			} else {
				m.sessions[userID] = to
			}
			return nil
		}
	}
	return ErrInvalidTransition
}

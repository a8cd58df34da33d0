package pos

import "testing"

func TestSession_HappyPath(t *testing.T) {
	m := NewSessionManager()

	steps := []CheckoutState{StateAwaitingPayment, StateProcessing, StateSuccess, StateIdle}
	for _, to := range steps {
		if err := m.Transition("u1", to); err != nil {
			t.Fatalf("%s geçişi reddedildi: %v", to, err)
		}
	}
	if m.State("u1") != StateIdle {
		t.Errorf("akış sonunda idle beklenirdi, %s", m.State("u1"))
	}
}

func TestSession_ConfirmWithoutBegin(t *testing.T) {
	m := NewSessionManager()
	if err := m.Transition("u1", StateProcessing); err != ErrInvalidTransition {
		t.Errorf("idle'dan processing'e geçilememeli, %v geldi", err)
	}
}

func TestSession_DoubleProcessing(t *testing.T) {
	m := NewSessionManager()
	m.Transition("u1", StateAwaitingPayment)
	m.Transition("u1", StateProcessing)

	// İkinci confirm aynı anda gelirse reddedilir
	if err := m.Transition("u1", StateProcessing); err != ErrInvalidTransition {
		t.Errorf("processing'te ikinci confirm reddedilmeli, %v geldi", err)
	}
}

func TestSession_FailureReturnsToAwaitingPayment(t *testing.T) {
	m := NewSessionManager()
	m.Transition("u1", StateAwaitingPayment)
	m.Transition("u1", StateProcessing)

	if err := m.Transition("u1", StateFailed); err != nil {
		t.Fatalf("failed geçişi reddedildi: %v", err)
	}
	if err := m.Transition("u1", StateAwaitingPayment); err != nil {
		t.Fatalf("failed'dan ödeme ekranına dönüş reddedildi: %v", err)
	}
	// tekrar denenebilmeli
	if err := m.Transition("u1", StateProcessing); err != nil {
		t.Errorf("başarısız ödeme sonrası tekrar deneme reddedildi: %v", err)
	}
}

func TestSession_CancelKeepsIdlePerUser(t *testing.T) {
	m := NewSessionManager()
	m.Transition("u1", StateAwaitingPayment)

	if err := m.Transition("u1", StateIdle); err != nil {
		t.Fatalf("iptal reddedildi: %v", err)
	}
	if m.State("u1") != StateIdle {
		t.Error("iptal sonrası idle beklenirdi")
	}
	// başka kullanıcının oturumu etkilenmez
	if m.State("u2") != StateIdle {
		t.Error("tanımsız oturum idle sayılmalı")
	}
}

package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestSignatureVerifier(t *testing.T) {
	secret := "rzp_test_secret"
	v := NewSignatureVerifier(secret)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("order_abc|pay_xyz"))
	good := hex.EncodeToString(mac.Sum(nil))

	if !v.Verify("order_abc", "pay_xyz", good) {
		t.Fatal("valid signature rejected")
	}

	// Любой измененный символ — отказ
	for i := 0; i < len(good); i++ {
		bad := []byte(good)
		if bad[i] == '0' {
			bad[i] = '1'
		} else {
			bad[i] = '0'
		}
		if v.Verify("order_abc", "pay_xyz", string(bad)) {
			t.Fatalf("tampered signature accepted at position %d", i)
		}
	}

	if v.Verify("order_abc", "pay_other", good) {
		t.Fatal("signature for different payment accepted")
	}
	if v.Verify("order_abc", "pay_xyz", "") {
		t.Fatal("empty signature accepted")
	}
}

func TestResetTokenHashing(t *testing.T) {
	t1, err := NewResetToken()
	if err != nil {
		t.Fatal(err)
	}
	t2, err := NewResetToken()
	if err != nil {
		t.Fatal(err)
	}

	if len(t1) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(t1))
	}
	if t1 == t2 {
		t.Error("two tokens must not collide")
	}
	if HashResetToken(t1) == t1 {
		t.Error("hash must differ from the raw token")
	}
	if HashResetToken(t1) != HashResetToken(t1) {
		t.Error("hash must be deterministic")
	}
}

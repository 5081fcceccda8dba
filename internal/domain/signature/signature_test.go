package signature

import "testing"

func TestSign_KnownVector(t *testing.T) {
	got := Sign("order_1", "pay_1", "secret")
	want := "52115a0d3400de9e86aade1f1b6eba9e8974604f4e267a9e9a16633a4c8dd2cb"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestVerify(t *testing.T) {
	secret := "s3cr3t"
	sig := Sign("order_abc", "pay_xyz", secret)

	t.Run("valid signature", func(t *testing.T) {
		if !Verify("order_abc", "pay_xyz", sig, secret) {
			t.Fatalf("expected valid signature")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			if !Verify("order_abc", "pay_xyz", sig, secret) {
				t.Fatalf("expected repeated verification to pass (iteration %d)", i)
			}
			if Sign("order_abc", "pay_xyz", secret) != sig {
				t.Fatalf("expected same signature (iteration %d)", i)
			}
		}
	})

	t.Run("any single character change fails", func(t *testing.T) {
		for i := range sig {
			b := []byte(sig)
			if b[i] == 'a' {
				b[i] = 'b'
			} else {
				b[i] = 'a'
			}
			if Verify("order_abc", "pay_xyz", string(b), secret) {
				t.Fatalf("expected mismatch when char %d changed: %s", i, b)
			}
		}
	})

	t.Run("prefix is not accepted", func(t *testing.T) {
		if Verify("order_abc", "pay_xyz", sig[:32], secret) {
			t.Fatalf("expected partial signature to fail")
		}
	})

	t.Run("uppercase hex is rejected", func(t *testing.T) {
		upper := []byte(sig)
		changed := false
		for i, c := range upper {
			if c >= 'a' && c <= 'f' {
				upper[i] = c - 'a' + 'A'
				changed = true
			}
		}
		if changed && Verify("order_abc", "pay_xyz", string(upper), secret) {
			t.Fatalf("expected uppercase signature to fail byte comparison")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		if Verify("order_abc", "pay_xyz", sig, "other") {
			t.Fatalf("expected mismatch for wrong secret")
		}
	})

	t.Run("swapped ids", func(t *testing.T) {
		if Verify("pay_xyz", "order_abc", sig, secret) {
			t.Fatalf("expected mismatch for swapped ids")
		}
	})

	t.Run("empty inputs never panic", func(t *testing.T) {
		if Verify("", "", "", "") {
			t.Fatalf("expected empty signature to fail")
		}
	})
}

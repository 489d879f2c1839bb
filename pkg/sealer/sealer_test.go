package sealer

import "testing"

func TestManageTokenRoundTrip(t *testing.T) {
	token, err := CreateManageToken("ref-123", "+84912345678")
	if err != nil {
		t.Fatalf("CreateManageToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	reference, phone, err := ParseManageToken(token)
	if err != nil {
		t.Fatalf("ParseManageToken: %v", err)
	}
	if reference != "ref-123" {
		t.Errorf("reference = %q, want ref-123", reference)
	}
	if phone != "+84912345678" {
		t.Errorf("phone = %q, want +84912345678", phone)
	}
}

func TestManageTokensAreUnique(t *testing.T) {
	first, err := CreateManageToken("ref-123", "+84912345678")
	if err != nil {
		t.Fatalf("CreateManageToken: %v", err)
	}
	second, err := CreateManageToken("ref-123", "+84912345678")
	if err != nil {
		t.Fatalf("CreateManageToken: %v", err)
	}
	if first == second {
		t.Error("tokens must differ per issuance, nonce looks reused")
	}
}

func TestParseManageTokenRejectsGarbage(t *testing.T) {
	if _, _, err := ParseManageToken("not-a-token"); err == nil {
		t.Error("garbage token must fail")
	}
	if _, _, err := ParseManageToken(""); err == nil {
		t.Error("empty token must fail")
	}
}

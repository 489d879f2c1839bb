package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func TestInferCountryFromPhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		wantCode string
		wantNil  bool
	}{
		{
			name:     "Vietnam phone",
			phone:    "+84912345678",
			wantCode: "VN",
		},
		{
			name:     "Vietnam phone without plus",
			phone:    "84912345678",
			wantCode: "VN",
		},
		{
			name:     "US phone",
			phone:    "+12125550123",
			wantCode: "US",
		},
		{
			name:    "unknown country",
			phone:   "+442071234567",
			wantNil: true,
		},
		{
			name:    "empty",
			phone:   "",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferCountryFromPhone(tt.phone)
			if tt.wantNil {
				if got != nil {
					t.Errorf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a country, got nil")
			}
			if got.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}
}

func TestInferLanguageFromPhone(t *testing.T) {
	if got := InferLanguageFromPhone("+84912345678"); got != language.Vietnamese {
		t.Errorf("VN phone language = %v, want Vietnamese", got)
	}
	if got := InferLanguageFromPhone("+442071234567"); got != language.English {
		t.Errorf("unknown phone language = %v, want English", got)
	}
}

package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "user@example.com", false},
		{"valid with plus", "user+tag@example.com", false},
		{"missing at", "userexample.com", true},
		{"missing domain dot", "user@example", true},
		{"contains space", "us er@example.com", true},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 250) + "@e.com", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 129)))
}

func TestMissingOnboardingFields(t *testing.T) {
	t.Run("all present", func(t *testing.T) {
		missing := MissingOnboardingFields("Ana", "bio", "Spanish", "English", "Madrid")
		assert.Empty(t, missing)
	})

	t.Run("single missing", func(t *testing.T) {
		missing := MissingOnboardingFields("Ana", "", "Spanish", "English", "Madrid")
		assert.Equal(t, []string{"bio"}, missing)
	})

	t.Run("all missing in stable order", func(t *testing.T) {
		missing := MissingOnboardingFields("", "", "", "", "")
		assert.Equal(t,
			[]string{"fullName", "bio", "nativeLanguage", "learningLanguage", "location"},
			missing)
	})
}

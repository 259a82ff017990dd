package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	valid := []string{"771234567", "+221771234567", "221771234567", "338234567"}
	for _, p := range valid {
		assert.True(t, ValidPhone(p), p)
	}

	invalid := []string{"77123456", "7712345678", "+33771234567", "77-12-34-56", ""}
	for _, p := range invalid {
		assert.False(t, ValidPhone(p), p)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"pharmacien@fadjma.sn", "a.b_c%d+e@mail.example.com"}
	for _, e := range valid {
		assert.True(t, ValidEmail(e), e)
	}

	// uppercase is rejected on purpose
	invalid := []string{"Pharmacien@fadjma.sn", "user@MAIL.sn", "user@mail", "user mail@x.sn", ""}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), e)
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"Modou Fall", "Aïssatou Bâ", "N'Diaye", "Jean-Pierre"}
	for _, n := range valid {
		assert.True(t, ValidName(n), n)
	}

	invalid := []string{"Fall123", "user@name", ""}
	for _, n := range invalid {
		assert.False(t, ValidName(n), n)
	}
}

package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-06-15"))
	assert.True(t, IsValidDate("2024-02-29"))

	assert.False(t, IsValidDate("2023-02-29"))
	assert.False(t, IsValidDate("2024-13-40"))
	assert.False(t, IsValidDate("2024-6-15"))
	assert.False(t, IsValidDate("15/06/2024"))
	assert.False(t, IsValidDate(""))
}

func TestCheckTime(t *testing.T) {
	assert.Empty(t, CheckTime("10:00"))
	assert.Empty(t, CheckTime("18:30"))

	assert.Equal(t, MsgInvalidTime, CheckTime("9:00"))
	assert.Equal(t, MsgInvalidTime, CheckTime(""))
	assert.Equal(t, MsgTimeNotInSlots, CheckTime("10:15"))
	assert.Equal(t, MsgTimeNotInSlots, CheckTime("19:00"))
	assert.Equal(t, MsgTimeNotInSlots, CheckTime("09:30"))
}

func TestCheckContacts(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) string
		value string
		want  string
	}{
		{"name ok", CheckName, "Ana", ""},
		{"name two runes", CheckName, "Йо", ""},
		{"name trimmed too short", CheckName, "  A  ", MsgInvalidName},
		{"last name empty", CheckLastName, "", MsgInvalidLastName},
		{"phone ok", CheckPhone, "+7 (900) 123-45-67", ""},
		{"phone short", CheckPhone, "1234567", MsgInvalidPhone},
		{"phone letters", CheckPhone, "12345678a", MsgInvalidPhone},
		{"email empty", CheckEmail, "", ""},
		{"email ok", CheckEmail, " ana@example.com ", ""},
		{"email bad", CheckEmail, "ana@example", MsgInvalidEmail},
		{"email spaces", CheckEmail, "an a@example.com", MsgInvalidEmail},
		{"name at column size", CheckName, strings.Repeat("Я", MaxNameLength), ""},
		{"name too long", CheckName, strings.Repeat("Ab", 60), MsgNameTooLong},
		{"last name too long", CheckLastName, strings.Repeat("x", MaxNameLength+1), MsgLastNameTooLong},
		{"phone at column size", CheckPhone, strings.Repeat("1", MaxPhoneLength), ""},
		{"phone too long", CheckPhone, strings.Repeat("1", 40), MsgPhoneTooLong},
		{"email too long", CheckEmail, strings.Repeat("a", 300) + "@x.io", MsgEmailTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.value))
		})
	}
}

func TestValidationError(t *testing.T) {
	verr := &ValidationError{}
	verr.Add("")
	require.NoError(t, verr.OrNil())

	verr.Add(MsgInvalidDate)
	verr.Add(MsgInvalidPhone)
	err := verr.OrNil()
	require.Error(t, err)

	var target *ValidationError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, []string{MsgInvalidDate, MsgInvalidPhone}, target.Details)
	assert.Contains(t, err.Error(), MsgInvalidPhone)
}

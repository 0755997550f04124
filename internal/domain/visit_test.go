package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnums(t *testing.T) {
	t.Run("valid_values", func(t *testing.T) {
		for _, k := range Kinds {
			assert.True(t, k.Valid(), k)
		}
		for _, g := range Genders {
			assert.True(t, g.Valid(), g)
		}
		assert.Len(t, AgeBrackets, 8)
		for _, a := range AgeBrackets {
			assert.True(t, a.Valid(), a)
		}
	})

	t.Run("invalid_values", func(t *testing.T) {
		assert.False(t, Kind("passage").Valid())
		assert.False(t, Gender("x").Valid())
		assert.False(t, AgeBracket("75-+").Valid())
	})

	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "Passage", KindInPerson.Label())
		assert.Equal(t, "Téléphone", KindPhone.Label())
		assert.Equal(t, "Email", KindMail.Label())
		assert.Equal(t, "Homme", GenderMale.Label())
		assert.Equal(t, "Femme", GenderFemale.Label())
		assert.Equal(t, "Autre", GenderOther.Label())
		assert.Equal(t, "0 à 14 ans", Age0To14.Label())
		assert.Equal(t, "75 ans et plus", Age75AndOver.Label())
	})
}

func TestCandidate_Complete(t *testing.T) {
	now := time.Date(2021, 6, 30, 10, 0, 0, 0, time.UTC)

	full := NewCandidate(KindPhone, GenderMale, Age25To34, "c1", now)
	assert.True(t, full.Complete())

	partial := full
	partial.Age = nil
	assert.False(t, partial.Complete())
	assert.False(t, Candidate{}.Complete())
}

func TestFormatDisplayDate(t *testing.T) {
	ts := time.Date(2021, 6, 30, 8, 5, 59, 0, time.UTC)
	assert.Equal(t, "2021-06-30 08:05", FormatDisplayDate(ts, nil))

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	assert.Equal(t, "2021-06-30 10:05", FormatDisplayDate(ts, paris))
}

func TestValidPostCode(t *testing.T) {
	assert.True(t, ValidPostCode("12140"))
	assert.False(t, ValidPostCode("1214"))
	assert.False(t, ValidPostCode("12a40"))
	assert.False(t, ValidPostCode(""))
}

func TestAppError(t *testing.T) {
	err := ErrValidationMeta("invalid query param", map[string]string{"from": "must be YYYY-MM-DD"})
	assert.Contains(t, err.Error(), "validation_error: invalid query param")
	assert.Equal(t, "not_found: city not found", ErrNotFound("city not found").Error())
}

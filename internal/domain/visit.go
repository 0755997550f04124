package domain

import "time"

type Kind string

const (
	KindInPerson Kind = "in-person"
	KindPhone    Kind = "phone"
	KindMail     Kind = "mail"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindInPerson, KindPhone, KindMail}

func (k Kind) Valid() bool {
	return k == KindInPerson || k == KindPhone || k == KindMail
}

func (k Kind) Label() string {
	switch k {
	case KindInPerson:
		return "Passage"
	case KindPhone:
		return "Téléphone"
	case KindMail:
		return "Email"
	}
	return string(k)
}

type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

var Genders = []Gender{GenderFemale, GenderMale, GenderOther}

func (g Gender) Valid() bool {
	return g == GenderFemale || g == GenderMale || g == GenderOther
}

func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Homme"
	case GenderFemale:
		return "Femme"
	case GenderOther:
		return "Autre"
	}
	return string(g)
}

type AgeBracket string

const (
	Age0To14     AgeBracket = "0-14"
	Age15To24    AgeBracket = "15-24"
	Age25To34    AgeBracket = "25-34"
	Age35To44    AgeBracket = "35-44"
	Age45To54    AgeBracket = "45-54"
	Age55To64    AgeBracket = "55-64"
	Age65To74    AgeBracket = "65-74"
	Age75AndOver AgeBracket = "75-plus"
)

// AgeBrackets lists the brackets youngest first.
var AgeBrackets = []AgeBracket{
	Age0To14, Age15To24, Age25To34, Age35To44,
	Age45To54, Age55To64, Age65To74, Age75AndOver,
}

var ageLabels = map[AgeBracket]string{
	Age0To14:     "0 à 14 ans",
	Age15To24:    "15 à 24 ans",
	Age25To34:    "25 à 34 ans",
	Age35To44:    "35 à 44 ans",
	Age45To54:    "45 à 54 ans",
	Age55To64:    "55 à 64 ans",
	Age65To74:    "65 à 74 ans",
	Age75AndOver: "75 ans et plus",
}

func (a AgeBracket) Valid() bool {
	_, ok := ageLabels[a]
	return ok
}

func (a AgeBracket) Label() string {
	if l, ok := ageLabels[a]; ok {
		return l
	}
	return string(a)
}

// Event is a committed visit. Never mutated once stored.
type Event struct {
	ID     string     `json:"id"`
	Kind   Kind       `json:"kind"`
	Gender Gender     `json:"gender"`
	Age    AgeBracket `json:"age"`
	CityID string     `json:"city"`
	Date   time.Time  `json:"date"`
}

// Candidate is an event under construction. Nil fields are unset.
type Candidate struct {
	Kind   *Kind
	Gender *Gender
	Age    *AgeBracket
	CityID *string
	Date   *time.Time
}

// Complete reports whether every field is set.
func (c Candidate) Complete() bool {
	return c.Kind != nil && c.Gender != nil && c.Age != nil && c.CityID != nil && c.Date != nil
}

// NewCandidate builds a fully populated candidate.
func NewCandidate(kind Kind, gender Gender, age AgeBracket, cityID string, date time.Time) Candidate {
	return Candidate{Kind: &kind, Gender: &gender, Age: &age, CityID: &cityID, Date: &date}
}

// FormatDisplayDate renders t as "YYYY-MM-DD HH:MM" in loc.
func FormatDisplayDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02 15:04")
}

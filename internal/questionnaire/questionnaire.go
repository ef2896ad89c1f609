package questionnaire

// Type identifies one of the two questionnaires in the study.
type Type string

const (
	SWLS Type = "SWLS"
	PHQ9 Type = "PHQ9"
)

// Definition is the static description of a questionnaire: ordered prompts,
// the valid rating domain, and the labels shown next to each rating value.
// Definitions are fixed at compile time and never mutated.
type Definition struct {
	Type        Type
	Name        string
	Prompts     []string // Prompts[i] is question number i+1
	RatingMin   int
	RatingMax   int
	ScaleLabels map[int]string
}

// QuestionCount returns N, the number of questions (1..N).
func (d Definition) QuestionCount() int {
	return len(d.Prompts)
}

// ValidQuestionNumber reports whether n is within 1..N.
func (d Definition) ValidQuestionNumber(n int) bool {
	return n >= 1 && n <= len(d.Prompts)
}

// ValidRating reports whether r is within the questionnaire's rating domain.
func (d Definition) ValidRating(r int) bool {
	return r >= d.RatingMin && r <= d.RatingMax
}

var swls = Definition{
	Type: SWLS,
	Name: "Satisfaction With Life Scale",
	Prompts: []string{
		"In most ways my life is close to my ideal.",
		"The conditions of my life are excellent.",
		"I am satisfied with my life.",
		"So far I have gotten the important things I want in life.",
		"If I could live my life over, I would change almost nothing.",
	},
	RatingMin: 1,
	RatingMax: 7,
	ScaleLabels: map[int]string{
		1: "Strongly Disagree",
		2: "Disagree",
		3: "Slightly Disagree",
		4: "Neither Agree nor Disagree",
		5: "Slightly Agree",
		6: "Agree",
		7: "Strongly Agree",
	},
}

var phq9 = Definition{
	Type: PHQ9,
	Name: "Patient Health Questionnaire-9",
	Prompts: []string{
		"Little interest or pleasure in doing things",
		"Feeling down, depressed, or hopeless",
		"Trouble falling or staying asleep, or sleeping too much",
		"Feeling tired or having little energy",
		"Poor appetite or overeating",
		"Feeling bad about yourself - or that you are a failure or have let yourself or your family down",
		"Trouble concentrating on things, such as reading the newspaper or watching television",
		"Moving or speaking so slowly that other people could have noticed. Or the opposite - being so fidgety or restless that you have been moving around a lot more than usual",
		"Thoughts that you would be better off dead, or of hurting yourself in some way",
	},
	RatingMin: 0,
	RatingMax: 3,
	ScaleLabels: map[int]string{
		0: "Not at all",
		1: "Several days",
		2: "More than half the days",
		3: "Nearly every day",
	},
}

// Get returns the definition for t, or ok=false for anything outside the
// closed enumeration.
func Get(t Type) (Definition, bool) {
	switch t {
	case SWLS:
		return swls, true
	case PHQ9:
		return phq9, true
	}
	return Definition{}, false
}

// All returns every known definition, SWLS first.
func All() []Definition {
	return []Definition{swls, phq9}
}

// Parse maps a request path/query value onto the closed enumeration.
func Parse(s string) (Type, bool) {
	switch s {
	case "SWLS", "swls":
		return SWLS, true
	case "PHQ9", "phq9":
		return PHQ9, true
	}
	return "", false
}

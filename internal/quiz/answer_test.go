package quiz

import "testing"

func TestCheckAnswer(t *testing.T) {
	mc := Question{Type: TypeMultipleChoice, Options: []string{"Paris", "Lyon", "Nice"}, CorrectAnswer: "Paris"}
	tf := Question{Type: TypeTrueFalse, Options: []string{"True", "False"}, CorrectAnswer: "False"}
	sa := Question{Type: TypeShortAnswer, CorrectAnswer: "The Pacific Ocean"}
	num := Question{Type: TypeMultipleChoice, Options: []string{"2", "4", "6", "8"}, CorrectAnswer: "4"}

	tests := []struct {
		name  string
		q     Question
		given string
		want  bool
	}{
		{"mc text", mc, "Paris", true},
		{"mc text case", mc, "  paris ", true},
		{"mc index", mc, "1", true},
		{"mc wrong index", mc, "2", false},
		{"mc index out of range", mc, "4", false},
		{"mc letter", mc, "a", true},
		{"mc wrong letter", mc, "B", false},
		{"mc letter out of range", mc, "D", false},
		{"mc wrong text", mc, "Lyon", false},
		{"empty", mc, "   ", false},

		{"numeric option text", num, "4", true},
		{"numeric option text padded", num, " 4 ", true},
		{"numeric wrong option text", num, "2", false},
		{"numeric letter", num, "b", true},
		{"numeric non-option index", num, "3", false},

		{"tf false", tf, "false", true},
		{"tf f", tf, "F", true},
		{"tf no", tf, "no", true},
		{"tf n", tf, "n", true},
		{"tf true", tf, "True", false},
		{"tf yes", tf, "yes", false},
		{"tf garbage", tf, "nope", false},

		{"sa exact", sa, "The Pacific Ocean", true},
		{"sa no article", sa, "pacific ocean", true},
		{"sa punctuation", sa, "Pacific   Ocean!", true},
		{"sa wrong", sa, "Atlantic Ocean", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.q, tt.given); got != tt.want {
				t.Errorf("CheckAnswer(%q) = %v, want %v", tt.given, got, tt.want)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	tests := map[string]string{
		"The  Quick, Brown fox.": "quick brown fox",
		"an apple":               "apple",
		"the":                    "the",
		"  Go!  ":                "go",
	}
	for in, want := range tests {
		if got := normalizeText(in); got != want {
			t.Errorf("normalizeText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGrade(t *testing.T) {
	q := validQuiz()
	res := Grade(q, map[int]string{
		1: "a",
		2: "no",
	})
	if res.Total != 3 {
		t.Fatalf("total = %d, want 3", res.Total)
	}
	if res.Correct != 1 {
		t.Fatalf("correct = %d, want 1", res.Correct)
	}
	if res.Answers[0].Given != "Paris" {
		t.Errorf("letter answer should resolve to option text, got %q", res.Answers[0].Given)
	}
	missed := res.Missed()
	if len(missed) != 2 || missed[0].QuestionID != 2 || missed[1].QuestionID != 3 {
		t.Fatalf("unexpected missed: %+v", missed)
	}
	if missed[1].Given != "" || missed[1].Expected != "Tokyo" {
		t.Errorf("unanswered question should be wrong with expected answer, got %+v", missed[1])
	}
	if p := res.Percent(); p < 33.3 || p > 33.4 {
		t.Errorf("percent = %f", p)
	}
}

func TestGrade_NumericOptions(t *testing.T) {
	q := &Quiz{Questions: []Question{
		{ID: 1, Question: "2+2?", Type: TypeMultipleChoice, Options: []string{"2", "4", "6", "8"}, CorrectAnswer: "4"},
		{ID: 2, Question: "3+3?", Type: TypeMultipleChoice, Options: []string{"2", "4", "6", "8"}, CorrectAnswer: "6"},
	}}
	res := Grade(q, map[int]string{1: "4", 2: "2"})
	if res.Correct != 1 {
		t.Fatalf("correct = %d, want 1", res.Correct)
	}
	if res.Answers[0].Given != "4" || res.Answers[1].Given != "2" {
		t.Errorf("given should keep the chosen option text, got %q and %q", res.Answers[0].Given, res.Answers[1].Given)
	}
}

func TestGrade_Empty(t *testing.T) {
	res := Grade(&Quiz{}, nil)
	if res.Total != 0 || res.Percent() != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res := Grade(nil, nil); res.Total != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

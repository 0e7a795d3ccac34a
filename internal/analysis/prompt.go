package analysis

import (
	"strings"
	"text/template"
)

const systemPrompt = `You are a study coach reviewing a learner's quiz history.

Rules:
- Base every statement on the attempts provided. Do not invent results.
- Strengths are topics or question styles with consistently high scores.
- Weaknesses are topics or concepts behind repeated misses. Quote the concept, not the question number.
- Recommendations are specific: name a topic, a difficulty and a format to practice next.
- Give between 1 and 6 items per list. Keep each item to one sentence.
- If there is little data, say so in the summary and keep the lists short.`

var historyTmpl = template.Must(template.New("history").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(
	`Quiz history ({{len .Attempts}} attempts, oldest first):
{{range $i, $a := .Attempts}}
{{inc $i}}. {{$a.Title}} | topic: {{$a.Topic}} | {{$a.Difficulty}} {{$a.Format}} | score {{$a.Correct}}/{{$a.Total}} ({{$a.Percent}}%) | {{$a.CompletedAt.Format "2006-01-02"}}
{{- range $a.Missed}}
   - missed: {{.Question}} (answered {{printf "%q" .Given}}, expected {{printf "%q" .Expected}})
{{- end}}
{{end}}`))

// buildUserMessage renders the compacted history for the model.
func buildUserMessage(h History) (string, error) {
	var b strings.Builder
	if err := historyTmpl.Execute(&b, h); err != nil {
		return "", err
	}
	return b.String(), nil
}

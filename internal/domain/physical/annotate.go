package physical

import "github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/outcome"

// Annotate left-joins results onto summaries by round. Summaries without
// a result are marked unknown.
func Annotate(summaries []RoundSummary, results []outcome.Result) []RoundSummary {
	idx := outcome.Index(results)
	out := make([]RoundSummary, len(summaries))
	for i, s := range summaries {
		s.OpponentCode = ""
		s.Outcome = outcome.Unknown
		if r, ok := idx[s.Round]; ok {
			s.OpponentCode = r.OpponentCode
			s.Outcome = outcome.Normalize(string(r.Outcome))
		}
		out[i] = s
	}
	return out
}

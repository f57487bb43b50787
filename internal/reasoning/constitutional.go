package reasoning

// PrincipleCheck is one entry in a constitutional checklist.
type PrincipleCheck struct {
	Principle string `json:"principle"`
	Applied   bool   `json:"applied"`
}

// ConstitutionalCheck produces a checklist marking every catalog principle
// as applied to the recommendation.
//
// This is a structural echo, not a verifier: it always marks every principle
// as satisfied regardless of the recommendation's content. Callers wanting
// real policy verification must provide it themselves.
func (e *Engine) ConstitutionalCheck(recommendation string) []PrincipleCheck {
	_ = recommendation

	checks := make([]PrincipleCheck, len(e.principles))
	for i, principle := range e.principles {
		checks[i] = PrincipleCheck{Principle: principle, Applied: true}
	}
	return checks
}

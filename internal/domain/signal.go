package domain

// TextSignal is the natural-language analysis of one piece of text.
// It is produced fresh per validation call and never persisted.
type TextSignal struct {
	SentimentScore     float64
	SentimentMagnitude float64
	Entities           []Entity
	Sentences          []Sentence
	Tokens             []Token

	// Neutral marks signals that did not come from a real analysis
	// (disabled provider). Semantic rules pass trivially on neutral signals.
	Neutral bool
}

// Entity is a named entity detected in text.
type Entity struct {
	Name     string
	Type     EntityType
	Salience float64
}

// Sentence is one sentence of analyzed text.
type Sentence struct {
	Text string
}

// Token is one syntactic token of analyzed text.
type Token struct {
	Text string
}

// NeutralSignal returns the signal used when analysis is disabled.
func NeutralSignal() TextSignal {
	return TextSignal{Neutral: true}
}

// HasEntity reports whether at least one entity of the given type is present.
func (s TextSignal) HasEntity(t EntityType) bool {
	for _, e := range s.Entities {
		if e.Type == t {
			return true
		}
	}
	return false
}

// EntityNames returns entity names in detection order.
func (s TextSignal) EntityNames() []string {
	names := make([]string, 0, len(s.Entities))
	for _, e := range s.Entities {
		names = append(names, e.Name)
	}
	return names
}

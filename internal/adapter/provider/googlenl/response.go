package googlenl

// Request and response shapes of the Cloud Natural Language v1 REST API.

type apiDocument struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	Language string `json:"language,omitempty"`
}

type apiRequest struct {
	Document     apiDocument `json:"document"`
	EncodingType string      `json:"encodingType"`
}

type apiSentiment struct {
	Score     float64 `json:"score"`
	Magnitude float64 `json:"magnitude"`
}

type apiTextSpan struct {
	Content     string `json:"content"`
	BeginOffset int    `json:"beginOffset"`
}

type apiSentence struct {
	Text apiTextSpan `json:"text"`
}

type apiToken struct {
	Text  apiTextSpan `json:"text"`
	Lemma string      `json:"lemma"`
}

type apiEntity struct {
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata"`
	Salience float64           `json:"salience"`
}

type apiSentimentResponse struct {
	DocumentSentiment *apiSentiment `json:"documentSentiment"`
	Language          string        `json:"language"`
}

type apiEntitiesResponse struct {
	Entities []apiEntity `json:"entities"`
	Language string      `json:"language"`
}

type apiSyntaxResponse struct {
	Sentences []apiSentence `json:"sentences"`
	Tokens    []apiToken    `json:"tokens"`
	Language  string        `json:"language"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

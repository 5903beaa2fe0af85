package models

// ParseRowRequest is the body of POST /rows/parse.
type ParseRowRequest struct {
	Line string `json:"line"`
	// Owner is used for rows that omit the owner name.
	Owner string `json:"owner,omitempty"`
	// Origin overrides the configured origin for this request.
	Origin string `json:"origin,omitempty"`
}

// ParseBatchRequest is the body of POST /rows/parse-batch.
type ParseBatchRequest struct {
	Lines  []string `json:"lines" binding:"required"`
	Owner  string   `json:"owner,omitempty"`
	Origin string   `json:"origin,omitempty"`
}

// Row mirrors zone.Row. Absent fields are omitted.
type Row struct {
	Name  *string `json:"name,omitempty"`
	TTL   *uint32 `json:"ttl,omitempty"`
	Class *string `json:"class,omitempty"`
	Type  string  `json:"type"`
	RData string  `json:"rdata"`
	Text  string  `json:"text"`
}

// ParseRowResponse is returned for a row that parsed.
type ParseRowResponse struct {
	Row Row `json:"row"`
	// RR is the fully qualified presentation form, when conversion succeeded.
	RR string `json:"rr,omitempty"`
	// Wire is the hex-encoded uncompressed wire form of RR.
	Wire    string `json:"wire,omitempty"`
	RRError string `json:"rr_error,omitempty"`
	CheckID string `json:"check_id,omitempty"`
}

// TraceEntry mirrors zone.TraceEntry.
type TraceEntry struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Found    string `json:"found,omitempty"`
	AtEnd    bool   `json:"at_end,omitempty"`
	Expected string `json:"expected,omitempty"`
	Context  string `json:"context,omitempty"`
	Cause    string `json:"cause,omitempty"`
}

// ParseErrorResponse is returned with 422 for a row that did not parse.
type ParseErrorResponse struct {
	Error      string       `json:"error"`
	Kind       string       `json:"kind"` // tokenize, syntax, incomplete or residual
	Diagnostic string       `json:"diagnostic"`
	Trace      []TraceEntry `json:"trace"`
	CheckID    string       `json:"check_id,omitempty"`
}

// BatchResult is the outcome for one line of a batch.
type BatchResult struct {
	Index  int                 `json:"index"`
	OK     bool                `json:"ok"`
	Result *ParseRowResponse   `json:"result,omitempty"`
	Error  *ParseErrorResponse `json:"error,omitempty"`
}

// ParseBatchResponse is returned by POST /rows/parse-batch.
type ParseBatchResponse struct {
	Results  []BatchResult `json:"results"`
	Accepted int           `json:"accepted"`
	Rejected int           `json:"rejected"`
}

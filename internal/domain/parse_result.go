package domain

type ParseResult struct {
	Filename string
	Result   *ExtractedResult // filled in case of a success
	Error    error            // filled in case of an error
	ResultID string           // set by the writer once the result is persisted
}

package quote

import "volscan/pkg/types"

// Outcome is the result of a single fetch attempt: Success when Err is nil,
// a retryable failure otherwise.
type Outcome struct {
	Records []types.RawRecord
	Err     *FetchError
}

func success(records []types.RawRecord) Outcome {
	if records == nil {
		records = []types.RawRecord{}
	}
	return Outcome{Records: records}
}

func failure(err *FetchError) Outcome {
	return Outcome{Err: err}
}

func (o Outcome) Ok() bool {
	return o.Err == nil
}

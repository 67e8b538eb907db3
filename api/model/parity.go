package model

// SelectRequest is decoded with json.Decoder.UseNumber, so numeric values
// arrive as json.Number and keep their exact textual form.
type SelectRequest struct {
	Values []interface{} `json:"Values"`
}

type SelectResponse struct {
	Values []int64 `json:"Values"`
}

type ErrorResponse struct {
	Error string `json:"Error"`
	Index *int   `json:"Index,omitempty"`
}

package commander

import "github.com/shopspring/decimal"

// ConvertCommand asks worker to convert product handles into variants.
// When ScanURL is set, handles listed under it are converted after handles from Input.
type ConvertCommand struct {
	Input   string `json:"input"`
	ScanURL string `json:"scanUrl,omitempty"`
}

// ConvertReply is worker's reply to ConvertCommand.
type ConvertReply struct {
	ID       string    `json:"id,omitempty"`
	Variants []Variant `json:"variants"`
	Failures []Failure `json:"failures"`
	Error    string    `json:"error,omitempty"`
}

// Variant is purchasable product variant.
type Variant struct {
	ID           int64            `json:"id"`
	ProductTitle string           `json:"productTitle"`
	Title        string           `json:"title"`
	IsPreorder   bool             `json:"isPreorder"`
	IsAvailable  bool             `json:"isAvailable"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
}

// Failure is product handle which couldn't be resolved.
type Failure struct {
	Handle string `json:"handle"`
	Reason string `json:"reason"`
}

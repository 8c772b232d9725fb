package models

// Requests for the analytics HTTP endpoints. Defined in domain for consistency
// and reuse between handlers.

type ExtremaRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	From   string `query:"from" json:"from"`
	To     string `query:"to" json:"to"`
	Stride int    `query:"stride" json:"stride" validate:"omitempty,gte=1,lte=60"`
}

type ForecastRequest struct {
	Symbol   string `query:"symbol" json:"symbol" validate:"required"`
	Date     string `query:"date" json:"date"`
	Horizons []int  `query:"horizons" json:"horizons" validate:"omitempty,max=12,dive,gte=1,lte=2520"`
}

type RecentForecastsRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	Limit  int    `query:"limit" json:"limit" default:"10" validate:"gte=1,lte=100"`
}

type BriefingRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	Query  string `query:"q" json:"q"`
	Days   int    `query:"days" json:"days" default:"7" validate:"gte=1,lte=90"`
}

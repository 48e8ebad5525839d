package models

// Rate is the body of GET /rates.
type Rate struct {
	ID          int64   `json:"id,omitempty"`
	VehicleType string  `json:"vehicleType,omitempty"`
	WashLevel   string  `json:"washLevel,omitempty"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency,omitempty"`
}

// RateSelection is the vehicle and wash choice a price is quoted for.
type RateSelection struct {
	VehicleType string `json:"vehicleType" form:"vehicleType"`
	WashType    string `json:"washType" form:"washType"`
	WaterOption string `json:"waterOption" form:"waterOption"`
}

// RateQuote is the derived price for a selection. A missing rate is never a zero price.
type RateQuote struct {
	Selection  RateSelection `json:"selection"`
	Found      bool          `json:"found"`
	RateAmount *float64      `json:"rateAmount,omitempty"`
	FinalPrice *float64      `json:"finalPrice,omitempty"`
	Currency   string        `json:"currency,omitempty"`
	Display    string        `json:"display"`
	Message    string        `json:"message,omitempty"`
}

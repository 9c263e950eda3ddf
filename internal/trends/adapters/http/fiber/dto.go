package fiber

import (
	"bytes"
	"encoding/json"
)

type KeywordResponse struct {
	Keyword string `json:"keyword" example:"shoes"`
	Color   string `json:"color" example:"#a855f7"`
}

// KeywordValues serializes as a JSON object whose keys keep keyword order.
type KeywordValues struct {
	keys   []string
	values map[string]float64
}

func (kv KeywordValues) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range kv.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(kv.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type AlignedRowResponse struct {
	Date   string        `json:"date" example:"2024-01-01"`
	Values KeywordValues `json:"values" swaggertype:"object,number"`
}

type GrowthResponse struct {
	Keyword       string  `json:"keyword" example:"shoes"`
	FirstValue    float64 `json:"first_value" example:"10"`
	LastValue     float64 `json:"last_value" example:"30"`
	GrowthPercent float64 `json:"growth_percent" example:"200"`
	GrowthLabel   string  `json:"growth_label" example:"+200.0%"`
	Trend         string  `json:"trend" example:"rising" enums:"rising,declining,stable"`
	Color         string  `json:"color" example:"#a855f7"`
}

type TrendComparisonResponse struct {
	Keywords []KeywordResponse    `json:"keywords"`
	Rows     []AlignedRowResponse `json:"rows"`
	Growth   []GrowthResponse     `json:"growth"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message" example:"at least one keyword is required"`
}

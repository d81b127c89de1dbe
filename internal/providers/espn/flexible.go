package espn

import (
	"bytes"
	"strconv"

	"github.com/bytedance/sonic"
)

// Score holds a competitor score, which upstream sends as a string, a number
// or an object with value/displayValue depending on the endpoint.
type Score struct {
	Value   string
	Present bool
}

func (s *Score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = Score{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var str string
		if err := sonic.Unmarshal(data, &str); err != nil {
			return err
		}
		s.Value, s.Present = str, str != ""
	case '{':
		var obj struct {
			Value        *float64 `json:"value"`
			DisplayValue string   `json:"displayValue"`
		}
		if err := sonic.Unmarshal(data, &obj); err != nil {
			return err
		}
		switch {
		case obj.DisplayValue != "":
			s.Value, s.Present = obj.DisplayValue, true
		case obj.Value != nil:
			s.Value, s.Present = formatNumber(*obj.Value), true
		}
	default:
		var num float64
		if err := sonic.Unmarshal(data, &num); err != nil {
			return err
		}
		s.Value, s.Present = formatNumber(num), true
	}
	return nil
}

// Or returns the score or fallback when upstream sent none.
func (s Score) Or(fallback string) string {
	if !s.Present {
		return fallback
	}
	return s.Value
}

// Headshot is a URL that upstream sends either bare or as {"href": ...}.
type Headshot struct {
	Href string
}

func (h *Headshot) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*h = Headshot{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return sonic.Unmarshal(data, &h.Href)
	}
	var obj struct {
		Href string `json:"href"`
	}
	if err := sonic.Unmarshal(data, &obj); err != nil {
		return err
	}
	h.Href = obj.Href
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

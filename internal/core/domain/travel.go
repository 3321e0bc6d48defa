package domain

import "strings"

type TravelArea struct {
	Name        string   `json:"name"`
	PostalCodes []string `json:"postalCodes"`
	Fee         int64    `json:"fee"`
}

// Postal codes are matched exactly. Neighbouring codes that are not listed
// resolve to no area even when they sit numerically between listed ones.
var travelAreas = []TravelArea{
	{Name: "Stellenbosch", PostalCodes: []string{"7600", "7599", "7602", "7604", "7613"}, Fee: 0},
	{Name: "Franschhoek", PostalCodes: []string{"7690"}, Fee: 450},
	{Name: "Paarl", PostalCodes: []string{"7646", "7620", "7624", "7625"}, Fee: 400},
	{Name: "Wellington", PostalCodes: []string{"7655", "7654"}, Fee: 500},
	{Name: "Somerset West", PostalCodes: []string{"7130", "7129", "7135"}, Fee: 400},
	{Name: "Strand", PostalCodes: []string{"7140", "7139"}, Fee: 450},
	{Name: "Kuils River", PostalCodes: []string{"7580", "7579"}, Fee: 550},
	{Name: "Durbanville", PostalCodes: []string{"7550", "7551"}, Fee: 650},
	{Name: "Bellville", PostalCodes: []string{"7530", "7535"}, Fee: 750},
	{Name: "Cape Town", PostalCodes: []string{"8001", "8005", "8000"}, Fee: 950},
}

// TravelAreas returns a copy of the service-area table.
func TravelAreas() []TravelArea {
	out := make([]TravelArea, len(travelAreas))
	for i, a := range travelAreas {
		codes := make([]string, len(a.PostalCodes))
		copy(codes, a.PostalCodes)
		out[i] = TravelArea{Name: a.Name, PostalCodes: codes, Fee: a.Fee}
	}
	return out
}

func lookupArea(code string) (TravelArea, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return TravelArea{}, false
	}
	for _, a := range travelAreas {
		for _, pc := range a.PostalCodes {
			if pc == code {
				return a, true
			}
		}
	}
	return TravelArea{}, false
}

func AreaNameByPostalCode(code string) (string, bool) {
	a, ok := lookupArea(code)
	if !ok {
		return "", false
	}
	return a.Name, true
}

func TravelFee(code string) (int64, bool) {
	a, ok := lookupArea(code)
	if !ok {
		return 0, false
	}
	return a.Fee, true
}

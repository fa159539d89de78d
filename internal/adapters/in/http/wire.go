package http

import (
	"fmt"

	"shield/internal/core/ports"
)

// Wire shapes of the JSON replies and request bodies. Field names are part of
// the protocol and must not change.

type identityResponse struct {
	Postcode    string `json:"postcode"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	PhoneNumber string `json:"phoneNumber"`
}

type itemResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type foodBoxResponse struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Diet        string         `json:"diet"`
	DeliveredBy string         `json:"delivered_by"`
	Contents    []itemResponse `json:"contents"`
}

type catererResponse struct {
	Name     string `json:"name"`
	Postcode string `json:"postcode"`
}

type orderBodyRequest struct {
	Contents []itemResponse `json:"contents"`
}

func toItemResponses(items []ports.ItemRecord) []itemResponse {
	response := make([]itemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, itemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}
	return response
}

// sampleIdentity derives a deterministic identity record from a CHI, standing
// in for the census data a production deployment would hold.
func sampleIdentity(chi string) ports.IndividualRecord {
	firstNames := [...]string{"Alice", "Brian", "Cara", "Daniel", "Elena", "Fergus", "Grace", "Hamish", "Isla", "James"}
	surnames := [...]string{"Anderson", "Brown", "Campbell", "Davidson", "Evans", "Fraser", "Gray", "Hunter", "Irvine", "Johnston"}

	d := func(i int) int { return int(chi[i] - '0') }

	return ports.IndividualRecord{
		CHI:         chi,
		Postcode:    fmt.Sprintf("EH%d_%d%dA%c", d(6), d(7), d(8), 'A'+byte(d(9))),
		Name:        firstNames[d(8)],
		Surname:     surnames[d(9)],
		PhoneNumber: "0131" + chi[4:],
	}
}

// postcodeDistance derives a deterministic metre distance from two postcodes.
// It keeps the triangle-friendly properties the clients rely on: zero for
// identical postcodes and symmetry in its arguments.
func postcodeDistance(from string, to string) float64 {
	if from == to {
		return 0
	}

	diff := 0
	for i := 0; i < len(from) || i < len(to); i++ {
		var a, b byte
		if i < len(from) {
			a = from[i]
		}
		if i < len(to) {
			b = to[i]
		}
		if a > b {
			diff += int(a - b)
		} else {
			diff += int(b - a)
		}
	}
	return float64(diff) * 75.5
}

package clients

import (
	"encoding/json"
	"fmt"
	"strings"

	"shield/internal/core/domain/model/foodbox"
	"shield/internal/pkg/errs"
)

// Exact registration vocabulary of the coordination service.
const (
	responseRegisteredNew     = "registered new"
	responseAlreadyRegistered = "already registered"
)

// isAffirmative reports whether a boolean-style reply means success.
// The service is case-loose about it, so the match is case-insensitive.
func isAffirmative(response string) bool {
	return strings.EqualFold(response, "true")
}

// contentContract is the wire shape of a single item line, shared by the
// food-box catalog and order bodies.
type contentContract struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// foodBoxContract is the wire shape of one catalog entry.
type foodBoxContract struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Diet        string            `json:"diet"`
	DeliveredBy string            `json:"delivered_by"`
	Contents    []contentContract `json:"contents"`
}

// companyContract is the wire shape of one catering company catalog entry.
type companyContract struct {
	Name     string `json:"name"`
	Postcode string `json:"postcode"`
}

// identityContract is the wire shape of the identity record the service
// returns on a fresh individual registration.
type identityContract struct {
	Postcode    string `json:"postcode"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	PhoneNumber string `json:"phoneNumber"`
}

// orderBodyContract is the POST body for placing and editing orders.
type orderBodyContract struct {
	Contents []contentContract `json:"contents"`
}

// unmarshalStrict decodes a complete JSON value and rejects trailing data, so
// vocabulary replies such as "already registered" never half-parse as records.
func unmarshalStrict(response string, target any) error {
	decoder := json.NewDecoder(strings.NewReader(response))
	if err := decoder.Decode(target); err != nil {
		return err
	}
	if decoder.More() {
		return fmt.Errorf("trailing data after JSON value")
	}
	return nil
}

func toContentContracts(contents []foodbox.Content) []contentContract {
	wire := make([]contentContract, 0, len(contents))
	for _, content := range contents {
		wire = append(wire, contentContract{
			ID:       content.ID(),
			Name:     content.Name(),
			Quantity: content.Quantity(),
		})
	}
	return wire
}

func fromContentContracts(wire []contentContract) ([]foodbox.Content, error) {
	contents := make([]foodbox.Content, 0, len(wire))
	for _, item := range wire {
		content, err := foodbox.NewContent(item.ID, item.Name, item.Quantity)
		if err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}
	return contents, nil
}

func marshalOrderBody(contents []foodbox.Content) (string, error) {
	body, err := json.Marshal(orderBodyContract{Contents: toContentContracts(contents)})
	if err != nil {
		return "", fmt.Errorf("marshal order contents: %w", err)
	}
	return string(body), nil
}

func unmarshalFoodBoxes(operation string, response string) ([]*foodbox.FoodBox, error) {
	var wire []foodBoxContract
	if err := json.Unmarshal([]byte(response), &wire); err != nil {
		return nil, errs.NewUnexpectedResponseErrorWithCause(operation, response, err)
	}

	boxes := make([]*foodbox.FoodBox, 0, len(wire))
	for _, entry := range wire {
		diet, err := foodbox.ParseDiet(entry.Diet)
		if err != nil {
			return nil, errs.NewUnexpectedResponseErrorWithCause(operation, response, err)
		}

		contents, err := fromContentContracts(entry.Contents)
		if err != nil {
			return nil, errs.NewUnexpectedResponseErrorWithCause(operation, response, err)
		}

		box, err := foodbox.NewFoodBox(entry.ID, entry.Name, diet, entry.DeliveredBy, contents)
		if err != nil {
			return nil, errs.NewUnexpectedResponseErrorWithCause(operation, response, err)
		}

		boxes = append(boxes, box)
	}

	return boxes, nil
}

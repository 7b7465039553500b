package entities

import "strings"

// CustomerAddress is the postal address collected at checkout. The core only
// forwards it; lookup/validation happens in the storefront.
type CustomerAddress struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type Customer struct {
	Name    string          `json:"name"`
	CPF     string          `json:"cpf"`
	Phone   string          `json:"phone"`
	Email   string          `json:"email,omitempty"`
	Address CustomerAddress `json:"address"`
}

// DocumentDigits returns the national id stripped to digits, the only form the
// gateway and the attribution service accept.
func (c Customer) DocumentDigits() string {
	return digitsOnly(c.CPF)
}

// PhoneDigits returns the phone stripped of mask characters.
func (c Customer) PhoneDigits() string {
	return digitsOnly(c.Phone)
}

// ContactEmail returns the supplied email, or a synthetic placeholder derived
// from the stripped document when none was given. The gateway rejects empty
// emails, so this fallback is not optional.
func (c Customer) ContactEmail() string {
	if v := strings.TrimSpace(c.Email); v != "" {
		return v
	}
	return c.DocumentDigits() + "@cliente.temp"
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// ProductItem is the primary product line of a checkout.
type ProductItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// BumpItem is an add-on offer accepted during checkout (quantity is always 1).
type BumpItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ShippingOption struct {
	OptionID int     `json:"optionId"`
	Price    float64 `json:"price"`
}

// CheckoutRequest is the canonical checkout submission.
//
// Total is the caller-computed grand total and is charged as-is; the core does
// not re-derive it from the line items. See DESIGN.md for the integrity note.
type CheckoutRequest struct {
	Customer Customer           `json:"customer"`
	Product  ProductItem        `json:"product"`
	Shipping ShippingOption     `json:"shipping"`
	Bumps    []BumpItem         `json:"bumps"`
	Total    float64            `json:"total"`
	Tracking TrackingParameters `json:"trackingParameters"`
}

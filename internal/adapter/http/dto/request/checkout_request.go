package request

import "storefront_checkout/internal/domain/entities"

type AddressRequest struct {
	CEP          string `json:"cep" binding:"required"`
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
}

type CustomerRequest struct {
	Name    string         `json:"name" binding:"required"`
	CPF     string         `json:"cpf" binding:"required"`
	Phone   string         `json:"phone" binding:"required"`
	Email   string         `json:"email"`
	Address AddressRequest `json:"address" binding:"required"`
}

// Price carries no required binding: zero is a valid free line, and gin's
// required rejects numeric zero. Line validity is checked in the usecase.
type ProductRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" binding:"required"`
}

type BumpRequest struct {
	ID    string  `json:"id" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

// ShippingRequest has no required bindings: a zero price is a valid free
// shipping option.
type ShippingRequest struct {
	OptionID int     `json:"optionId"`
	Price    float64 `json:"price"`
}

// CheckoutRequest is the checkout submission body. Total is the caller's
// pre-computed grand total; it is charged as given, zero included, so it
// carries no required binding.
type CheckoutRequest struct {
	Customer CustomerRequest             `json:"customer" binding:"required"`
	Product  ProductRequest              `json:"product" binding:"required"`
	Shipping ShippingRequest             `json:"shipping"`
	Bumps    []BumpRequest               `json:"bumps"`
	Total    float64                     `json:"total"`
	Tracking entities.TrackingParameters `json:"trackingParameters"`
}

func (r CheckoutRequest) ToEntity() entities.CheckoutRequest {
	bumps := make([]entities.BumpItem, 0, len(r.Bumps))
	for _, b := range r.Bumps {
		bumps = append(bumps, entities.BumpItem{ID: b.ID, Name: b.Name, Price: b.Price})
	}

	return entities.CheckoutRequest{
		Customer: entities.Customer{
			Name:  r.Customer.Name,
			CPF:   r.Customer.CPF,
			Phone: r.Customer.Phone,
			Email: r.Customer.Email,
			Address: entities.CustomerAddress{
				CEP:          r.Customer.Address.CEP,
				Street:       r.Customer.Address.Street,
				Number:       r.Customer.Address.Number,
				Complement:   r.Customer.Address.Complement,
				Neighborhood: r.Customer.Address.Neighborhood,
				City:         r.Customer.Address.City,
				State:        r.Customer.Address.State,
			},
		},
		Product: entities.ProductItem{
			ID:       r.Product.ID,
			Name:     r.Product.Name,
			Price:    r.Product.Price,
			Quantity: r.Product.Quantity,
		},
		Shipping: entities.ShippingOption{
			OptionID: r.Shipping.OptionID,
			Price:    r.Shipping.Price,
		},
		Bumps:    bumps,
		Total:    r.Total,
		Tracking: r.Tracking.Clone(),
	}
}

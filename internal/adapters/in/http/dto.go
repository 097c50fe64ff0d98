package http

import "github.com/shopspring/decimal"

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewProduct struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	TaxPercentage decimal.Decimal `json:"taxPercentage"`
}

type Product struct {
	Name          string `json:"name"`
	Price         string `json:"price"`
	Category      string `json:"category"`
	TaxPercentage string `json:"taxPercentage"`
}

type NewOrder struct {
	Items []NewOrderItem `json:"items"`
}

type NewOrderItem struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

type OrderCreated struct {
	ID int64 `json:"id"`
}

type Order struct {
	ID       int64       `json:"id"`
	Status   string      `json:"status"`
	Currency string      `json:"currency"`
	Total    string      `json:"total"`
	Tax      string      `json:"tax"`
	Items    []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	TaxedAmount string `json:"taxedAmount"`
	TaxAmount   string `json:"taxAmount"`
}

type Approval struct {
	Decision string `json:"decision"`
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName string `gorm:"size:100;not null" json:"customerName"`
	UserID       *uint  `json:"userId"`

	Total  int    `gorm:"not null" json:"total"` // centavos
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Snapshot dos itens no momento da compra (não referencia products).
	Items OrderItems `gorm:"type:jsonb;not null" json:"items"`

	PaymentURL string `gorm:"size:512" json:"paymentUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OrderItem struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"` // centavos, preço unitário no momento da compra
	Quantity  int    `json:"quantity"`
}

type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *OrderItems) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return errors.New("unsupported type for OrderItems")
	}
}

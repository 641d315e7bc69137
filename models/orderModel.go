package models

import "encoding/json"

type OrderStatus string

const (
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
)

type OrderItem struct {
	ItemID    string   `json:"item_id" bson:"item_id" validate:"required"`
	Title     string   `json:"title" bson:"title" validate:"required"`
	Quantity  int      `json:"quantity" bson:"quantity" validate:"gte=1"`
	BasePrice *float64 `json:"base_price" bson:"base_price" validate:"required"`
	Size      *Size    `json:"size" bson:"size" validate:"omitempty,oneof=S M L"`
	Addons    []AddOn  `json:"addons" bson:"addons" validate:"dive"`
	Subtotal  *float64 `json:"subtotal" bson:"subtotal" validate:"required,gte=0"` // caller-computed
}

func (i *OrderItem) Normalize() {
	if i.Addons == nil {
		i.Addons = []AddOn{}
	}
}

// Order is stored as submitted: Total and item subtotals are never
// recomputed and item ids are not checked against the menu.
type Order struct {
	Items        []OrderItem `json:"items" bson:"items" validate:"required,min=1,dive"`
	CustomerName *string     `json:"customer_name" bson:"customer_name"`
	Notes        *string     `json:"notes" bson:"notes"`
	Total        *float64    `json:"total" bson:"total" validate:"required,gte=0"`
	Status       OrderStatus `json:"status" bson:"status" validate:"oneof=received preparing ready completed"`
}

// UnmarshalJSON defaults status to received only when the key is absent.
// An explicit "" or null is kept as empty and fails validation.
func (o *Order) UnmarshalJSON(data []byte) error {
	type order Order
	var aux order
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	if _, ok := keys["status"]; !ok {
		aux.Status = OrderStatusReceived
	}
	*o = Order(aux)
	return nil
}

func (o *Order) Normalize() {
	for i := range o.Items {
		o.Items[i].Normalize()
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus represents the fulfilment status of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
	OrderRefunded   OrderStatus = "REFUNDED"
)

// PaymentStatus represents the status of an order or registration payment.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentCompleted  PaymentStatus = "COMPLETED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentCancelled  PaymentStatus = "CANCELLED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentStripe       PaymentMethod = "STRIPE"
	PaymentMpesa        PaymentMethod = "MPESA"
	PaymentPesapal      PaymentMethod = "PESAPAL"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// ShippingMethod is how the order reaches the customer.
type ShippingMethod string

const (
	ShippingStandard   ShippingMethod = "STANDARD"
	ShippingExpress    ShippingMethod = "EXPRESS"
	ShippingOvernight  ShippingMethod = "OVERNIGHT"
	ShippingPickup     ShippingMethod = "PICKUP"
	ShippingWhiteGlove ShippingMethod = "WHITE_GLOVE"
)

// ReservationType says whether an item is paid in full or held with a deposit.
type ReservationType string

const (
	ReservationDeposit     ReservationType = "DEPOSIT"
	ReservationFullPayment ReservationType = "FULL_PAYMENT"
)

// Address is a postal address stored inline on an order.
type Address struct {
	FirstName    string `json:"firstName" gorm:"size:100"`
	LastName     string `json:"lastName" gorm:"size:100"`
	Company      string `json:"company,omitempty" gorm:"size:255"`
	AddressLine1 string `json:"addressLine1" gorm:"size:255"`
	AddressLine2 string `json:"addressLine2,omitempty" gorm:"size:255"`
	City         string `json:"city" gorm:"size:100"`
	State        string `json:"state,omitempty" gorm:"size:100"`
	PostalCode   string `json:"postalCode" gorm:"size:20"`
	Country      string `json:"country" gorm:"size:100"`
	Phone        string `json:"phone,omitempty" gorm:"size:30"`
}

// Order is a placed checkout.
type Order struct {
	ID               uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OrderNumber      string          `json:"orderNumber" gorm:"size:20;not null;uniqueIndex"`
	Email            string          `json:"email" gorm:"size:255;not null;index"`
	CustomerName     string          `json:"customerName" gorm:"size:255;not null"`
	Status           OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod" gorm:"type:varchar(20);not null"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaymentReference string          `json:"paymentReference,omitempty" gorm:"size:255"`
	ShippingMethod   ShippingMethod  `json:"shippingMethod" gorm:"type:varchar(20);not null"`
	ShippingAddress  Address         `json:"shippingAddress" gorm:"embedded;embeddedPrefix:shipping_"`
	BillingAddress   Address         `json:"billingAddress" gorm:"embedded;embeddedPrefix:billing_"`
	Currency         string          `json:"currency" gorm:"size:3;not null;default:'USD'"`
	Subtotal         decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
	ShippingCost     decimal.Decimal `json:"shippingCost" gorm:"type:decimal(12,2);not null"`
	DiscountAmount   decimal.Decimal `json:"discountAmount" gorm:"type:decimal(12,2);not null"`
	DiscountCode     string          `json:"discountCode,omitempty" gorm:"size:50"`
	TotalAmount      decimal.Decimal `json:"totalAmount" gorm:"type:decimal(12,2);not null;index"`
	AmountDue        decimal.Decimal `json:"amountDue" gorm:"type:decimal(12,2);not null"`
	Notes            string          `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem is one artwork line of an order.
type OrderItem struct {
	ID                   uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OrderID              uuid.UUID       `json:"orderId" gorm:"type:char(36);not null;index"`
	ArtworkID            uuid.UUID       `json:"artworkId" gorm:"type:char(36);not null;index"`
	Quantity             int             `json:"quantity" gorm:"not null"`
	UnitPrice            decimal.Decimal `json:"unitPrice" gorm:"type:decimal(12,2);not null"`
	TotalPrice           decimal.Decimal `json:"totalPrice" gorm:"type:decimal(12,2);not null"`
	ReservationType      ReservationType `json:"reservationType" gorm:"type:varchar(20);not null"`
	ReservationExpiresAt *time.Time      `json:"reservationExpiresAt,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`

	// Relations
	Artwork *Artwork `json:"artwork,omitempty" gorm:"foreignKey:ArtworkID"`
}

// BeforeCreate sets UUID before creating the record.
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

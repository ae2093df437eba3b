package domain

import (
	"time"

	"github.com/google/uuid"
)

type RestaurantStatus string

const (
	RestaurantOpen   RestaurantStatus = "open"
	RestaurantClosed RestaurantStatus = "closed"
	RestaurantBusy   RestaurantStatus = "busy"
)

type Restaurant struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Address         string           `json:"address"`
	Latitude        float64          `json:"latitude"`
	Longitude       float64          `json:"longitude"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email"`
	Status          RestaurantStatus `json:"status"`
	CuisineType     string           `json:"cuisine_type"`
	BannerImageURL  string           `json:"banner_image_url"`
	LogoURL         string           `json:"logo_url"`
	Rating          float64          `json:"rating"`
	TotalRatings    int              `json:"total_ratings"`
	AveragePrepTime int              `json:"average_prep_time"`
	MinimumOrder    float64          `json:"minimum_order"`
	DeliveryFee     float64          `json:"delivery_fee"`
	BusinessHours   BusinessHours    `json:"business_hours"`
	Trending        bool             `json:"trending"`
	CreatedAt       time.Time        `json:"created_at"`
}

type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type SpecialHours struct {
	Date  string   `json:"date"`
	Hours DayHours `json:"hours"`
}

type BusinessHours struct {
	Regular map[string]DayHours `json:"regular"`
	Special []SpecialHours      `json:"special,omitempty"`
}

type NutritionalInfo struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Fiber    *float64 `json:"fiber"`
}

type MenuItem struct {
	ID                   uuid.UUID       `json:"id"`
	RestaurantID         uuid.UUID       `json:"restaurant_id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Price                float64         `json:"price"`
	ImageURL             string          `json:"image_url"`
	Category             string          `json:"category"`
	Available            bool            `json:"available"`
	Ingredients          []string        `json:"ingredients"`
	Allergens            []string        `json:"allergens"`
	DietaryPreferences   []string        `json:"dietary_preferences"`
	CustomizationOptions map[string]any  `json:"customization_options"`
	NutritionalInfo      NutritionalInfo `json:"nutritional_info"`
	Rating               float64         `json:"rating"`
	PreparationTime      int             `json:"preparation_time"`
	PopularityScore      float64         `json:"popularity_score"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// RestaurantRow is the raw shape scanned from the restaurants table before
// normalization. Nullable columns are pointers, JSON blobs stay raw bytes.
type RestaurantRow struct {
	ID              uuid.UUID
	Name            *string
	Description     *string
	Address         *string
	Latitude        *float64
	Longitude       *float64
	Phone           *string
	Email           *string
	Status          *string
	CuisineType     *string
	BannerImageURL  *string
	LogoURL         *string
	Rating          *float64
	TotalRatings    *int
	AveragePrepTime *int
	MinimumOrder    *float64
	DeliveryFee     *float64
	BusinessHours   []byte
	Trending        *bool
	CreatedAt       time.Time
}

// MenuItemRow is the raw shape scanned from the menu_items table.
type MenuItemRow struct {
	ID                   uuid.UUID
	RestaurantID         uuid.UUID
	Name                 string
	Description          *string
	Price                float64
	ImageURL             *string
	Category             *string
	Available            *bool
	Ingredients          []string
	Allergens            []string
	DietaryPreferences   []string
	CustomizationOptions []byte
	NutritionalInfo      []byte
	Rating               *float64
	PreparationTime      *int
	PopularityScore      *float64
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

type CartItem struct {
	MenuItemID     uuid.UUID      `json:"menu_item_id"`
	Name           string         `json:"name"`
	Price          float64        `json:"price"`
	Quantity       int            `json:"quantity"`
	Customizations map[string]any `json:"customizations"`
}

type CartLine struct {
	CartItem
	LineTotal float64 `json:"line_total"`
}

type Order struct {
	ID                  uuid.UUID      `json:"id"`
	UserID              uuid.UUID      `json:"user_id"`
	RestaurantID        uuid.UUID      `json:"restaurant_id"`
	Status              OrderStatus    `json:"status"`
	PaymentStatus       PaymentStatus  `json:"payment_status"`
	DeliveryStatus      DeliveryStatus `json:"delivery_status"`
	TotalAmount         float64        `json:"total_amount"`
	DeliveryAddress     string         `json:"delivery_address"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
	QRCode              string         `json:"qr_code,omitempty"`
	Items               []OrderItem    `json:"items"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

type OrderItem struct {
	ID             uuid.UUID      `json:"id"`
	OrderID        uuid.UUID      `json:"order_id"`
	MenuItemID     uuid.UUID      `json:"menu_item_id"`
	Name           string         `json:"name"`
	Quantity       int            `json:"quantity"`
	Price          float64        `json:"price"`
	Customizations map[string]any `json:"customizations,omitempty"`
}

type Operator string

const (
	OperatorMTN    Operator = "mtn"
	OperatorAirtel Operator = "airtel"
)

type Payment struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	OrderID     *uuid.UUID    `json:"order_id,omitempty"`
	Amount      float64       `json:"amount"`
	Method      string        `json:"method"`
	Status      PaymentStatus `json:"status"`
	Description string        `json:"description,omitempty"`
	PhoneNumber string        `json:"phone_number"`
	Operator    Operator      `json:"operator"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type Rating struct {
	ID         uuid.UUID `json:"id"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	UserID     uuid.UUID `json:"user_id"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}

// Recommendation is a menu item joined with the mean of its ratings.
type Recommendation struct {
	MenuItem
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Event is the message published to Kafka on order and payment activity.
type Event struct {
	Type         string    `json:"type"`
	OrderID      uuid.UUID `json:"order_id,omitempty"`
	PaymentID    uuid.UUID `json:"payment_id,omitempty"`
	UserID       uuid.UUID `json:"user_id,omitempty"`
	RestaurantID uuid.UUID `json:"restaurant_id,omitempty"`
	Amount       float64   `json:"amount,omitempty"`
	Status       string    `json:"status,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

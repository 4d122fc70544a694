package validation

// SignupRequest — POST /api/auth/signup
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"required,role"`
}

// LoginRequest — POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileRequest — PUT /api/auth/profile ; patch partiel, au moins un champ
type ProfileRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// AddToCartRequest — POST /api/cart
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// UpdateQuantityRequest — PUT /api/cart/:id
// Quantité nulle ou négative : la ligne est retirée du panier.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest — POST /api/checkout
type CheckoutRequest struct {
	Address       string `json:"address" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=cod card upi"`
}

// CreateProductRequest — POST /api/products
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Unit        string  `json:"unit" validate:"required"`
	Stock       *int    `json:"stock" validate:"omitempty,gte=0"`
	ImageURL    string  `json:"imageUrl"`
}

// AdvanceStatusRequest — PATCH /api/orders/:id/status
type AdvanceStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

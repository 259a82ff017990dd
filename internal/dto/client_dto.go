package dto

type CreateClientRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100,person_name"`
	LastName  string `json:"last_name"  validate:"required,max=100,person_name"`
	Gender    string `json:"gender"     validate:"required,oneof=M F"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Phone     string `json:"phone"      validate:"required,sn_phone"`
	Email     string `json:"email"      validate:"omitempty,lower_email"`
	Address   string `json:"address"`
}

type UpdateClientRequest struct {
	FirstName string  `json:"first_name" validate:"omitempty,max=100,person_name"`
	LastName  string  `json:"last_name"  validate:"omitempty,max=100,person_name"`
	Gender    string  `json:"gender"     validate:"omitempty,oneof=M F"`
	BirthDate *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Phone     string  `json:"phone"      validate:"omitempty,sn_phone"`
	Email     string  `json:"email"      validate:"omitempty,lower_email"`
	Address   *string `json:"address"`
}

type ClientFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ClientResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	Gender         string  `json:"gender"`
	BirthDate      *string `json:"birth_date,omitempty"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email,omitempty"`
	Address        string  `json:"address,omitempty"`
	PurchasesCount int64   `json:"purchases_count"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type ClientListResponse struct {
	Data  []ClientResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

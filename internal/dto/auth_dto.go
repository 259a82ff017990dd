package dto

// ─── Requests ────────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Email     string `json:"email"      validate:"required,lower_email"`
	Password  string `json:"password"   validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=150,person_name"`
	LastName  string `json:"last_name"  validate:"required,max=150,person_name"`
	Gender    string `json:"gender"     validate:"omitempty,oneof=M F"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Phone     string `json:"phone"      validate:"omitempty,sn_phone"`
	Role      string `json:"role"       validate:"omitempty,oneof=user admin pharmacist"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,lower_email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName string  `json:"first_name" validate:"omitempty,max=150,person_name"`
	LastName  string  `json:"last_name"  validate:"omitempty,max=150,person_name"`
	Gender    string  `json:"gender"     validate:"omitempty,oneof=M F"`
	BirthDate *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Phone     *string `json:"phone"      validate:"omitempty,sn_phone"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	FullName  string  `json:"full_name"`
	Gender    string  `json:"gender,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"is_active"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}

package models

type User struct {
	ID        string `json:"_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	DOB       string `json:"dob,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Role      string `json:"role"`
	Status    string `json:"status,omitempty"`
}

type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupData struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	DOB       string `json:"dob"`
	Gender    string `json:"gender"`
	Role      string `json:"role"`
}

type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

package model

// CreateUserDTO is the request body for registering a user
type CreateUserDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
}

// UpdateUserDTO is the request body for updating a user. Password is
// optional; when empty the stored hash is kept.
type UpdateUserDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	FullName string `json:"fullName,omitempty"`
}

// DeleteUserResponse is the confirmation body returned after a delete
type DeleteUserResponse struct {
	Message string `json:"message"`
}

package entity

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FullName     string `json:"fullName,omitempty"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"createdDate"`
	UpdatedAt    string `json:"updatedDate"`
}

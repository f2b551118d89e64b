package user

// Roles stored on the profile row. Admin unlocks the management panel routes.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents a storefront account and maps to the `profiles` table.
type User struct {
	ID        int     `json:"userId"`
	Email     string  `json:"email"`
	Password  string  `json:"password,omitempty"`
	FullName  string  `json:"fullName"`
	Phone     string  `json:"phone"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

package user

// UserResponse represents user data in API responses
type UserResponse struct {
	ID            string       `json:"id"`
	Email         string       `json:"email"`
	FullName      string       `json:"full_name"`
	Role          string       `json:"role"`
	OAuthProvider *string      `json:"oauth_provider,omitempty"`
	Permissions   []Permission `json:"permissions"`
	CreatedAt     string       `json:"created_at"`
	UpdatedAt     string       `json:"updated_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.DisplayName(),
		Role:          string(u.Role),
		OAuthProvider: u.OAuthProvider,
		Permissions:   Permissions(u.Role),
		CreatedAt:     u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     u.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// PermissionCheckResponse answers whether the caller holds a permission.
type PermissionCheckResponse struct {
	Permission Permission `json:"permission"`
	Role       string     `json:"role"`
	Allowed    bool       `json:"allowed"`
}

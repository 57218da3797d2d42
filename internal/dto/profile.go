package dto

type ProfileResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	FullName    string  `json:"full_name"`
	FarmName    string  `json:"farm_name"`
	Location    string  `json:"location"`
	TotalLand   float64 `json:"total_land"`
	MemberSince string  `json:"member_since"`
}

// UpdateProfileRequest changes only the fields that are set.
type UpdateProfileRequest struct {
	Email     *string  `json:"email"`
	Phone     *string  `json:"phone"`
	FullName  *string  `json:"full_name"`
	FarmName  *string  `json:"farm_name"`
	Location  *string  `json:"location"`
	TotalLand *float64 `json:"total_land"`
}

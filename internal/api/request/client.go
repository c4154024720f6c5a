package request

// CreateClientRequest represents the request body for registering a client
type CreateClientRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

package entity

// CompanyInfo datos del emisor de la cotización.
type CompanyInfo struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	BusinessNumber string `json:"businessNumber"` // número de registro comercial
	Notes          string `json:"notes"`
}

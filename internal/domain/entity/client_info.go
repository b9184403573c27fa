package entity

// DateLayout formato de QuoteDate y ValidUntil.
const DateLayout = "2006-01-02"

// ClientInfo datos del cliente capturados en el formulario.
type ClientInfo struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	ProjectName   string `json:"projectName"`
	QuoteDate     string `json:"quoteDate"` // YYYY-MM-DD
	Notes         string `json:"notes"`
}

// QuoteClient ClientInfo congelado en la cotización, con la vigencia calculada.
type QuoteClient struct {
	ClientInfo
	ValidUntil string `json:"validUntil"`
}

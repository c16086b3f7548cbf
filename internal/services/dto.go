package services

// Request and response shapes for the invoice API. Dates travel as plain
// YYYY-MM-DD strings end to end.

type InvoiceItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type InvoiceCreateRequest struct {
	ClientID  uint                 `json:"client_id"`
	IssueDate string               `json:"issue_date"`
	DueDate   string               `json:"due_date"`
	Tax       float64              `json:"tax"`
	Items     []InvoiceItemRequest `json:"items"`
}

type ClientResponse struct {
	ID                    uint   `json:"id"`
	Name                  string `json:"name"`
	Address               string `json:"address"`
	CompanyRegistrationNo string `json:"company_registration_no"`
}

type InvoiceItemResponse struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// InvoiceResponse is the fully denormalized nested shape returned by create
// and get. Address is the invoice's own snapshot; Client.Address is the
// client's current address, which may have diverged since.
type InvoiceResponse struct {
	ID        uint                  `json:"id"`
	InvoiceNo string                `json:"invoice_no"`
	IssueDate string                `json:"issue_date"`
	DueDate   string                `json:"due_date"`
	Client    ClientResponse        `json:"client"`
	Address   string                `json:"address"`
	Items     []InvoiceItemResponse `json:"items"`
	Tax       float64               `json:"tax"`
	Total     float64               `json:"total"`
}

type InvoiceSummary struct {
	ID         uint    `json:"id"`
	InvoiceNo  string  `json:"invoice_no"`
	IssueDate  string  `json:"issue_date"`
	DueDate    string  `json:"due_date"`
	ClientName string  `json:"client_name"`
	Total      float64 `json:"total"`
}

package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/diewo77/invoicing-api/internal/models"
)

// InvoiceService encapsulates invoice business logic: validation, number
// generation, total computation and transactional persistence.
type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService { return &InvoiceService{DB: db} }

// Create validates the request, assigns the next invoice number, snapshots
// the client address and product prices, persists invoice plus items and
// returns the re-read nested invoice. Everything runs in one transaction, so
// a failure at any step leaves nothing behind.
func (s *InvoiceService) Create(req InvoiceCreateRequest) (*InvoiceResponse, error) {
	var resp *InvoiceResponse
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := validateCreate(tx, req); err != nil {
			return err
		}
		var client models.Client
		if err := tx.First(&client, req.ClientID).Error; err != nil {
			return err
		}
		invoiceNo, err := nextInvoiceNumber(tx)
		if err != nil {
			return err
		}
		var subtotal float64
		for _, item := range req.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				return err
			}
			subtotal += product.Price * float64(item.Quantity)
		}
		inv := models.Invoice{
			InvoiceNo: invoiceNo,
			IssueDate: req.IssueDate,
			DueDate:   req.DueDate,
			ClientID:  req.ClientID,
			Address:   client.Address,
			Tax:       req.Tax,
			Total:     subtotal + req.Tax,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		// Items are inserted one by one so their ids preserve request order,
		// which is also the order the nested read returns them in. The price
		// is looked up again on the same transaction, so it matches the value
		// already folded into the total.
		for _, item := range req.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				return err
			}
			row := models.InvoiceItem{
				InvoiceID: inv.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
				Subtotal:  product.Price * float64(item.Quantity),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		resp, err = loadInvoice(tx, inv.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Get returns the full nested invoice or ErrInvoiceNotFound.
func (s *InvoiceService) Get(id uint) (*InvoiceResponse, error) {
	return loadInvoice(s.DB, id)
}

// List returns summary rows for all invoices, newest id first.
func (s *InvoiceService) List() ([]InvoiceSummary, error) {
	rows := []InvoiceSummary{}
	err := s.DB.Model(&models.Invoice{}).
		Select("invoices.id, invoices.invoice_no, invoices.issue_date, invoices.due_date, clients.name AS client_name, invoices.total").
		Joins("JOIN clients ON clients.id = invoices.client_id").
		Order("invoices.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes the invoice and its items, children first so engines that
// enforce the foreign key stay happy. Unknown id returns ErrInvoiceNotFound.
func (s *InvoiceService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var inv models.Invoice
		if err := tx.Select("id").First(&inv, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Invoice{}, id).Error
	})
}

func loadInvoice(tx *gorm.DB, id uint) (*InvoiceResponse, error) {
	var inv models.Invoice
	err := tx.Preload("Client").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("invoice_items.id") }).
		Preload("Items.Product").
		First(&inv, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, InvoiceItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	return &InvoiceResponse{
		ID:        inv.ID,
		InvoiceNo: inv.InvoiceNo,
		IssueDate: inv.IssueDate,
		DueDate:   inv.DueDate,
		Client: ClientResponse{
			ID:                    inv.Client.ID,
			Name:                  inv.Client.Name,
			Address:               inv.Client.Address,
			CompanyRegistrationNo: inv.Client.CompanyRegistrationNo,
		},
		Address: inv.Address,
		Items:   items,
		Tax:     inv.Tax,
		Total:   inv.Total,
	}, nil
}

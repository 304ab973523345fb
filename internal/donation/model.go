package donation

import (
	"time"

	"gorm.io/datatypes"
)

// Payment statuses as stored and printed.
const (
	StatusPaid    = "Paid"
	StatusPending = "Pending"
	StatusFailed  = "Failed"
)

// Donor types printed on documents.
const (
	DonorRegistered = "Registered User"
	DonorGuest      = "Guest User"
)

// UserRef is the linked account of a registered donor.
type UserRef struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Category struct {
	Name string `json:"name"`
}

// PaymentDetails are the gateway fields returned for a settled payment.
type PaymentDetails struct {
	MihPayID   string `json:"mihpayid,omitempty"`
	Mode       string `json:"mode,omitempty"`
	BankRefNum string `json:"bank_ref_num,omitempty"`
}

// IsZero reports whether no gateway field is set.
func (p PaymentDetails) IsZero() bool {
	return p == PaymentDetails{}
}

// Record is one donation as handed to the document renderers. Amount is the
// authoritative total; the base/extra breakdown is informational only.
type Record struct {
	TransactionID  string          `json:"transactionId,omitempty"`
	User           *UserRef        `json:"userId,omitempty"`
	DonorName      string          `json:"donorName,omitempty"`
	DonorEmail     string          `json:"donorEmail,omitempty"`
	DonorPhone     string          `json:"donorPhone,omitempty"`
	Category       *Category       `json:"category,omitempty"`
	Item           string          `json:"item,omitempty"`
	Quantity       int             `json:"quantity,omitempty"`
	Date           time.Time       `json:"date"`
	BaseAmount     *float64        `json:"baseAmount,omitempty"`
	ExtraAmount    *float64        `json:"extraAmount,omitempty"`
	Amount         float64         `json:"amount"`
	PaymentStatus  string          `json:"paymentStatus,omitempty"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
}

// Name is the linked user's name, then the donor name given at checkout.
func (r Record) Name() string {
	if r.User != nil && r.User.Name != "" {
		return r.User.Name
	}
	return r.DonorName
}

func (r Record) Email() string {
	if r.User != nil && r.User.Email != "" {
		return r.User.Email
	}
	return r.DonorEmail
}

func (r Record) DonorType() string {
	if r.User != nil {
		return DonorRegistered
	}
	return DonorGuest
}

func (r Record) CategoryName() string {
	if r.Category == nil {
		return ""
	}
	return r.Category.Name
}

// Units is the quantity with the default of one applied.
func (r Record) Units() int {
	if r.Quantity <= 0 {
		return 1
	}
	return r.Quantity
}

// UserInfo identifies the donor a report is about.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

// DonorGroup is one donor's donations with pre-computed totals. The totals
// are printed as given and never reconciled with Donations.
type DonorGroup struct {
	UserInfo       UserInfo `json:"userInfo"`
	TotalDonations int      `json:"totalDonations"`
	TotalAmount    float64  `json:"totalAmount"`
	PaidAmount     float64  `json:"paidAmount"`
	PendingAmount  float64  `json:"pendingAmount"`
	Donations      []Record `json:"donations"`
}

// Donation is the donations table row.
type Donation struct {
	ID             uint                               `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionID  string                             `gorm:"size:64;uniqueIndex" json:"transaction_id"`
	UserID         *uint                              `gorm:"index" json:"user_id"`
	UserName       string                             `gorm:"size:150" json:"user_name"`
	UserEmail      string                             `gorm:"size:150;index" json:"user_email"`
	DonorName      string                             `gorm:"size:150" json:"donor_name"`
	DonorEmail     string                             `gorm:"size:150;index" json:"donor_email"`
	DonorPhone     string                             `gorm:"size:20" json:"donor_phone"`
	CategoryName   string                             `gorm:"size:100" json:"category_name"`
	Item           string                             `gorm:"size:150" json:"item"`
	Quantity       int                                `gorm:"default:1" json:"quantity"`
	BaseAmount     *float64                           `gorm:"type:decimal(12,2)" json:"base_amount"`
	ExtraAmount    *float64                           `gorm:"type:decimal(12,2)" json:"extra_amount"`
	Amount         float64                            `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentStatus  string                             `gorm:"size:20;index" json:"payment_status"`
	PaymentDetails datatypes.JSONType[PaymentDetails] `gorm:"type:jsonb" json:"payment_details"`
	DonatedAt      time.Time                          `gorm:"index" json:"donated_at"`
	CreatedAt      time.Time                          `json:"created_at"`
	UpdatedAt      time.Time                          `json:"updated_at"`
}

func (Donation) TableName() string {
	return "donations"
}

// Record converts the row into the renderer input.
func (d Donation) Record() Record {
	r := Record{
		TransactionID: d.TransactionID,
		DonorName:     d.DonorName,
		DonorEmail:    d.DonorEmail,
		DonorPhone:    d.DonorPhone,
		Item:          d.Item,
		Quantity:      d.Quantity,
		Date:          d.DonatedAt,
		BaseAmount:    d.BaseAmount,
		ExtraAmount:   d.ExtraAmount,
		Amount:        d.Amount,
		PaymentStatus: d.PaymentStatus,
	}
	if d.UserID != nil {
		r.User = &UserRef{Name: d.UserName, Email: d.UserEmail}
	}
	if d.CategoryName != "" {
		r.Category = &Category{Name: d.CategoryName}
	}
	if pd := d.PaymentDetails.Data(); !pd.IsZero() {
		r.PaymentDetails = &pd
	}
	return r
}

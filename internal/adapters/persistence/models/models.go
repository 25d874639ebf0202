package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Identity tables
// ============================================================

// Administrator represents administrator table
type Administrator struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Administrator) TableName() string {
	return "administrator"
}

// Worker represents worker table. Role is the worker's trade, not an access role.
type Worker struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;index" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:50" json:"role"`
	SSN       string    `gorm:"column:ssn;size:20" json:"-"`
	Image     []byte    `gorm:"type:longblob" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Worker) TableName() string {
	return "worker"
}

// WorkerResponse DTO
type WorkerResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Image []byte `json:"image"`
}

func (w *Worker) ToResponse() *WorkerResponse {
	return &WorkerResponse{
		ID:    w.ID,
		Name:  w.Name,
		Email: w.Email,
		Role:  w.Role,
		Image: w.Image,
	}
}

// WorkerCard is the public directory entry for a worker
type WorkerCard struct {
	Name  string `json:"name"`
	Image []byte `json:"image"`
}

// Client represents client table
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	SSN       string    `gorm:"column:ssn;size:20" json:"-"`
	Image     []byte    `gorm:"type:longblob" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Client) TableName() string {
	return "client"
}

// ClientResponse DTO
type ClientResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image []byte `json:"image"`
}

func (c *Client) ToResponse() *ClientResponse {
	return &ClientResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Image: c.Image,
	}
}

// ============================================================
// Assets
// ============================================================

// Asset represents asset table
type Asset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Status    string    `gorm:"size:50;not null" json:"status"`
	Image     []byte    `gorm:"type:longblob" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Asset) TableName() string {
	return "asset"
}

// ============================================================
// Workflow tables
// ============================================================

// WorkOrder represents worker_orders table.
// Images are stored as a JSON array of base64 strings.
type WorkOrder struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	WorkerID    uint       `gorm:"not null;index" json:"worker_id"`
	AssetID     uint       `gorm:"not null;index" json:"asset_id"`
	Name        string     `gorm:"size:150;not null" json:"name"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date;index" json:"end_date"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:50;not null;default:'open';index" json:"status"`
	Images      [][]byte   `gorm:"type:longtext;serializer:json" json:"images"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Worker *Worker `gorm:"foreignKey:WorkerID;constraint:OnDelete:RESTRICT" json:"-"`
	Asset  *Asset  `gorm:"foreignKey:AssetID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (WorkOrder) TableName() string {
	return "worker_orders"
}

// IsClosed reports whether the order reached its terminal state
func (w *WorkOrder) IsClosed() bool {
	return w.Status == "closed"
}

// WorkOrderView is the admin listing row joined with worker and asset names
type WorkOrderView struct {
	ID          uint   `json:"id"`
	WorkerID    uint   `json:"worker_id"`
	AssetID     uint   `json:"asset_id"`
	Name        string `json:"name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
	Status      string `json:"status"`
	AssignedTo  string `json:"assigned_to"`
	AssetName   string `json:"asset_name"`
}

// ToView converts an order with preloaded relations to its listing row
func (w *WorkOrder) ToView() *WorkOrderView {
	v := &WorkOrderView{
		ID:          w.ID,
		WorkerID:    w.WorkerID,
		AssetID:     w.AssetID,
		Name:        w.Name,
		StartDate:   FormatDate(w.StartDate),
		EndDate:     FormatDate(w.EndDate),
		Description: w.Description,
		Status:      w.Status,
	}
	if w.Worker != nil {
		v.AssignedTo = w.Worker.Name
	}
	if w.Asset != nil {
		v.AssetName = w.Asset.Name
	}
	return v
}

// WorkRequest represents work_request table
type WorkRequest struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ClientID    uint       `gorm:"not null;index" json:"client_id"`
	Site        string     `gorm:"size:150" json:"site"`
	AssetID     uint       `gorm:"not null;index" json:"asset_id"`
	DateOfFault *time.Time `gorm:"type:date" json:"date_of_fault"`
	Description string     `gorm:"type:text" json:"description"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Client *Client `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT" json:"-"`
	Asset  *Asset  `gorm:"foreignKey:AssetID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (WorkRequest) TableName() string {
	return "work_request"
}

// WorkRequestView is the admin listing row joined with client and asset names
type WorkRequestView struct {
	ID          uint   `json:"id"`
	ClientID    uint   `json:"client_id"`
	Site        string `json:"site"`
	AssetID     uint   `json:"asset_id"`
	DateOfFault string `json:"date_of_fault"`
	Description string `json:"description"`
	ClientName  string `json:"client_name"`
	AssetName   string `json:"asset_name"`
}

func (r *WorkRequest) ToView() *WorkRequestView {
	v := &WorkRequestView{
		ID:          r.ID,
		ClientID:    r.ClientID,
		Site:        r.Site,
		AssetID:     r.AssetID,
		DateOfFault: FormatDate(r.DateOfFault),
		Description: r.Description,
	}
	if r.Client != nil {
		v.ClientName = r.Client.Name
	}
	if r.Asset != nil {
		v.AssetName = r.Asset.Name
	}
	return v
}

// Report represents reports table. One row per work order at most.
type Report struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	WorkerID    uint      `gorm:"not null;index" json:"worker_id"`
	WorkOrderID uint      `gorm:"not null;uniqueIndex" json:"work_order_id"`
	Answer1     string    `gorm:"column:answer_1;type:text" json:"-"`
	Answer2     string    `gorm:"column:answer_2;type:text" json:"-"`
	Answer3     string    `gorm:"column:answer_3;type:text" json:"-"`
	Answer4     string    `gorm:"column:answer_4;type:text" json:"-"`
	Answer5     string    `gorm:"column:answer_5;type:text" json:"-"`
	Answer6     string    `gorm:"column:answer_6;type:text" json:"-"`
	Pictures    [][]byte  `gorm:"type:longtext;serializer:json" json:"pictures"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Worker    *Worker    `gorm:"foreignKey:WorkerID;constraint:OnDelete:RESTRICT" json:"-"`
	WorkOrder *WorkOrder `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Report) TableName() string {
	return "reports"
}

// Answers returns the six answers in order
func (r *Report) Answers() []string {
	return []string{r.Answer1, r.Answer2, r.Answer3, r.Answer4, r.Answer5, r.Answer6}
}

// SetAnswers copies up to six answers onto the report
func (r *Report) SetAnswers(answers []string) {
	fields := []*string{&r.Answer1, &r.Answer2, &r.Answer3, &r.Answer4, &r.Answer5, &r.Answer6}
	for i := range fields {
		if i < len(answers) {
			*fields[i] = answers[i]
		}
	}
}

// ReportResponse DTO
type ReportResponse struct {
	ID          uint      `json:"id"`
	WorkerID    uint      `json:"worker_id"`
	WorkerName  string    `json:"worker_name"`
	WorkOrderID uint      `json:"work_order_id"`
	Answers     []string  `json:"answers"`
	Pictures    [][]byte  `json:"pictures"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *Report) ToResponse() *ReportResponse {
	resp := &ReportResponse{
		ID:          r.ID,
		WorkerID:    r.WorkerID,
		WorkOrderID: r.WorkOrderID,
		Answers:     r.Answers(),
		Pictures:    r.Pictures,
		CreatedAt:   r.CreatedAt,
	}
	if r.Worker != nil {
		resp.WorkerName = r.Worker.Name
	}
	return resp
}

// ============================================================
// Helpers
// ============================================================

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// FormatDate renders a nullable date column, empty when unset
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Administrator{},
		&Worker{},
		&Client{},
		&Asset{},
		&WorkOrder{},
		&WorkRequest{},
		&Report{},
	)
}

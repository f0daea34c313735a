package db

// ContactInfo is one office shown on the contact page.
type ContactInfo struct {
	Model
	Ordering
	Title        string `gorm:"size:150;not null" json:"title" validate:"required,max=150"`
	Address      string `gorm:"type:text;not null" json:"address" validate:"required"`
	City         string `gorm:"size:100;not null" json:"city" validate:"required,max=100"`
	State        string `gorm:"size:100" json:"state"`
	ZipCode      string `gorm:"size:20" json:"zipCode"`
	Country      string `gorm:"size:100;not null" json:"country"`
	Phone        string `gorm:"size:50;not null" json:"phone" validate:"required,max=50"`
	Email        string `gorm:"size:255;not null" json:"email" validate:"required,contact_email"`
	Fax          string `gorm:"size:50" json:"fax"`
	Website      string `gorm:"size:255" json:"website" validate:"omitempty,url"`
	WorkingHours string `gorm:"type:text;not null" json:"workingHours" validate:"required"`
	MapEmbedURL  string `gorm:"size:1000" json:"mapEmbedUrl"`
	Description  string `gorm:"type:text" json:"description"`
}

// Submission statuses.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// Submission priorities.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ContactSubmission 访客通过联系表单提交的留言。
type ContactSubmission struct {
	Model
	Reference   string `gorm:"size:36;not null;uniqueIndex" json:"reference"`
	FirstName   string `gorm:"size:100;not null" json:"firstName" validate:"required,max=100"`
	LastName    string `gorm:"size:100;not null" json:"lastName" validate:"required,max=100"`
	Email       string `gorm:"size:255;not null;index" json:"email" validate:"required,contact_email"`
	Phone       string `gorm:"size:50" json:"phone" validate:"max=50"`
	Subject     string `gorm:"size:255;not null" json:"subject" validate:"required,max=255"`
	Message     string `gorm:"type:text;not null" json:"message" validate:"required"`
	InquiryType string `gorm:"size:50;not null;default:general" json:"inquiryType" validate:"max=50"`
	Priority    string `gorm:"size:20;not null;default:normal" json:"priority" validate:"oneof=low normal high urgent"`
	Status      string `gorm:"size:20;not null;default:new;index" json:"status" validate:"oneof=new in_progress resolved closed"`
	IsRead      bool   `gorm:"not null;index" json:"isRead"`
	IsReplied   bool   `gorm:"not null" json:"isReplied"`
	AdminNotes  string `gorm:"type:text" json:"adminNotes"`
}

// FullName joins first and last name.
func (s ContactSubmission) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

package db

// AcademicKind 区分课程表、教学大纲与课程设置三类资源。
type AcademicKind string

const (
	KindCurriculum AcademicKind = "curriculum"
	KindSyllabus   AcademicKind = "syllabus"
	KindRoutine    AcademicKind = "routine"
)

// AcademicKinds lists every supported kind.
var AcademicKinds = []AcademicKind{KindCurriculum, KindSyllabus, KindRoutine}

// ParseAcademicKind maps a route segment to a kind.
func ParseAcademicKind(raw string) (AcademicKind, bool) {
	switch AcademicKind(raw) {
	case KindCurriculum, KindSyllabus, KindRoutine:
		return AcademicKind(raw), true
	case "classroutine":
		return KindRoutine, true
	}
	return "", false
}

// AcademicClass groups downloadable items for one class of one kind.
type AcademicClass struct {
	Model
	Ordering
	Kind        AcademicKind   `gorm:"size:20;not null;index" json:"kind"`
	Name        string         `gorm:"size:150;not null" json:"name" validate:"required,max=150"`
	Description string         `gorm:"type:text" json:"description"`
	Items       []AcademicItem `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE" json:"items,omitempty" validate:"-"`
}

// AcademicItem is a PDF or image resource attached to a class.
type AcademicItem struct {
	Model
	Ordering
	ClassID     uint   `gorm:"not null;index" json:"classId" validate:"required"`
	Title       string `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Description string `gorm:"type:text" json:"description"`
	PdfURL      string `gorm:"size:500" json:"pdfUrl"`
	ImageURL    string `gorm:"size:500" json:"imageUrl"`
	FileName    string `gorm:"size:255" json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	UploadedBy  string `gorm:"size:100" json:"uploadedBy"`
}

// HasPreview reports whether the item carries a preview image.
func (i AcademicItem) HasPreview() bool {
	return i.ImageURL != ""
}

// HasPdf reports whether the item carries a PDF.
func (i AcademicItem) HasPdf() bool {
	return i.PdfURL != ""
}

package db

// AboutUsPage holds the free text of the About Us page. Single row, id 1.
type AboutUsPage struct {
	Model
	HeroTitle       string `gorm:"size:200" json:"heroTitle" validate:"required,max=200"`
	HeroSubtitle    string `gorm:"type:text" json:"heroSubtitle"`
	HistoryTitle    string `gorm:"size:200" json:"historyTitle"`
	HistoryContent1 string `gorm:"type:text" json:"historyContent1"`
	HistoryContent2 string `gorm:"type:text" json:"historyContent2"`
	CtaTitle        string `gorm:"size:200" json:"ctaTitle"`
	CtaSubtitle     string `gorm:"type:text" json:"ctaSubtitle"`
	CtaButton1Text  string `gorm:"size:100" json:"ctaButton1Text"`
	CtaButton1Link  string `gorm:"size:255" json:"ctaButton1Link"`
	CtaButton2Text  string `gorm:"size:100" json:"ctaButton2Text"`
	CtaButton2Link  string `gorm:"size:255" json:"ctaButton2Link"`
}

// AboutSection is the short mission/vision block with headline figures.
type AboutSection struct {
	Model
	Mission           string `gorm:"type:text" json:"mission" validate:"required"`
	Vision            string `gorm:"type:text" json:"vision" validate:"required"`
	Description       string `gorm:"type:text" json:"description"`
	YearEstablished   string `gorm:"size:20" json:"yearEstablished"`
	TotalStudents     string `gorm:"size:20" json:"totalStudents"`
	GraduatedStudents string `gorm:"size:20" json:"graduatedStudents"`
	QualifiedTeachers string `gorm:"size:20" json:"qualifiedTeachers"`
}

// AboutStatistic is one figure in the statistics strip.
type AboutStatistic struct {
	Model
	Ordering
	Title    string `gorm:"size:100;not null" json:"title" validate:"required,max=100"`
	Value    string `gorm:"size:50;not null" json:"value" validate:"required,max=50"`
	IconType string `gorm:"size:50" json:"iconType"`
	Color    string `gorm:"size:30" json:"color"`
}

// CoreValue is one card in the core values grid.
type CoreValue struct {
	Model
	Ordering
	Title       string `gorm:"size:150;not null" json:"title" validate:"required,max=150"`
	Description string `gorm:"type:text;not null" json:"description" validate:"required"`
	IconType    string `gorm:"size:50" json:"iconType"`
}

// LeadershipMember is a person in the leadership team.
type LeadershipMember struct {
	Model
	Ordering
	Name        string `gorm:"size:150;not null" json:"name" validate:"required,max=150"`
	Position    string `gorm:"size:150;not null" json:"position" validate:"required,max=150"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:500" json:"imageUrl"`
	Email       string `gorm:"size:255" json:"email" validate:"omitempty,email"`
	Phone       string `gorm:"size:50" json:"phone"`
}

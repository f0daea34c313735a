package db

// MissionVision holds the Mission & Vision page. Single row, id 1.
type MissionVision struct {
	Model
	HeroTitle      string `gorm:"size:200" json:"heroTitle" validate:"required,max=200"`
	HeroSubtitle   string `gorm:"type:text" json:"heroSubtitle"`
	MissionTitle   string `gorm:"size:200" json:"missionTitle"`
	MissionContent string `gorm:"type:text" json:"missionContent"`
	VisionTitle    string `gorm:"size:200" json:"visionTitle"`
	VisionContent  string `gorm:"type:text" json:"visionContent"`
	GoalTitle      string `gorm:"size:200" json:"goalTitle"`
	GoalContent    string `gorm:"type:text" json:"goalContent"`
	CtaTitle       string `gorm:"size:200" json:"ctaTitle"`
	CtaSubtitle    string `gorm:"type:text" json:"ctaSubtitle"`
	CtaButtonText  string `gorm:"size:100" json:"ctaButtonText"`
	CtaButtonLink  string `gorm:"size:255" json:"ctaButtonLink"`
}

// ChairmanMessage holds the Chairman's Message page. Single row, id 1.
// MessageContent is markdown.
type ChairmanMessage struct {
	Model
	HeroTitle           string `gorm:"size:200" json:"heroTitle" validate:"required,max=200"`
	HeroSubtitle        string `gorm:"type:text" json:"heroSubtitle"`
	ChairmanName        string `gorm:"size:150" json:"chairmanName" validate:"required,max=150"`
	ChairmanTitle       string `gorm:"size:150" json:"chairmanTitle"`
	ChairmanImage       string `gorm:"size:500" json:"chairmanImage"`
	MessageTitle        string `gorm:"size:200" json:"messageTitle"`
	MessageContent      string `gorm:"type:text" json:"messageContent"`
	VisionTitle         string `gorm:"size:200" json:"visionTitle"`
	VisionContent       string `gorm:"type:text" json:"visionContent"`
	AchievementsTitle   string `gorm:"size:200" json:"achievementsTitle"`
	AchievementsContent string `gorm:"type:text" json:"achievementsContent"`
	ClosingMessage      string `gorm:"type:text" json:"closingMessage"`
	Signature           string `gorm:"size:150" json:"signature"`
}

// AdvisoryCommittee holds the Advisory Committee page text. Single row, id 1.
type AdvisoryCommittee struct {
	Model
	HeroTitle     string `gorm:"size:200" json:"heroTitle" validate:"required,max=200"`
	HeroSubtitle  string `gorm:"type:text" json:"heroSubtitle"`
	IntroTitle    string `gorm:"size:200" json:"introTitle"`
	IntroContent  string `gorm:"type:text" json:"introContent"`
	RolesTitle    string `gorm:"size:200" json:"rolesTitle"`
	RolesContent  string `gorm:"type:text" json:"rolesContent"`
	CtaTitle      string `gorm:"size:200" json:"ctaTitle"`
	CtaSubtitle   string `gorm:"type:text" json:"ctaSubtitle"`
	CtaButtonText string `gorm:"size:100" json:"ctaButtonText"`
	CtaButtonLink string `gorm:"size:255" json:"ctaButtonLink"`
}

// CommitteeMember is one advisory committee member.
type CommitteeMember struct {
	Model
	Ordering
	Name        string `gorm:"size:150;not null" json:"name" validate:"required,max=150"`
	Position    string `gorm:"size:150;not null" json:"position" validate:"required,max=150"`
	Expertise   string `gorm:"size:200" json:"expertise"`
	Bio         string `gorm:"type:text" json:"bio"`
	ImageURL    string `gorm:"size:500" json:"imageUrl"`
	Email       string `gorm:"size:255" json:"email" validate:"omitempty,email"`
	Phone       string `gorm:"size:50" json:"phone"`
	LinkedinURL string `gorm:"size:500" json:"linkedinUrl" validate:"omitempty,url"`
}

package db

// 默认内容：既用于 seed 命令写入初始数据，也用于公共页面在数据缺失时的回退展示。
// 每个函数都返回新值，调用方可以随意修改。

// DefaultAboutUsPage returns the About Us page shown before an admin saves one.
func DefaultAboutUsPage() AboutUsPage {
	return AboutUsPage{
		HeroTitle:       "About Our Madrasa",
		HeroSubtitle:    "Dedicated to providing exceptional Islamic education that nurtures both spiritual growth and academic excellence, preparing students for success in this world and the hereafter.",
		HistoryTitle:    "Our History",
		HistoryContent1: "Established in 2010 with a vision to blend traditional Islamic teachings with modern educational methods, our madrasa has been serving the community for over a decade. We pride ourselves on creating an environment where students can grow academically, spiritually, and socially.",
		HistoryContent2: "From humble beginnings with just 50 students, we have grown to become one of the most respected Islamic educational institutions in the region, maintaining our commitment to quality education and character development.",
		CtaTitle:        "Join Our Community",
		CtaSubtitle:     "Become part of our educational family and experience the transformative power of quality Islamic education in a nurturing environment.",
		CtaButton1Text:  "Apply for Admission",
		CtaButton1Link:  "/admissions/apply",
		CtaButton2Text:  "Contact Us",
		CtaButton2Link:  "/contact",
	}
}

// DefaultAboutSection returns the default mission/vision block.
func DefaultAboutSection() AboutSection {
	return AboutSection{
		Mission:           "Our mission is to provide exceptional Islamic education that nurtures both spiritual growth and academic excellence, preparing students to become responsible citizens and leaders in their communities while maintaining strong Islamic values and principles.",
		Vision:            "To be a leading institution in Islamic education, recognized for our commitment to excellence, innovation, and the holistic development of our students, creating future leaders who will contribute positively to society.",
		Description:       "Established with a vision to blend traditional Islamic teachings with modern educational methods, our madrasa has been serving the community for years. We pride ourselves on creating an environment where students can grow academically, spiritually, and socially.",
		YearEstablished:   "2010",
		TotalStudents:     "500+",
		GraduatedStudents: "1200+",
		QualifiedTeachers: "25",
	}
}

func ordered(order int) Ordering {
	return Ordering{DisplayOrder: order, IsActive: true}
}

// DefaultAboutStatistics returns the default statistics strip.
func DefaultAboutStatistics() []AboutStatistic {
	return []AboutStatistic{
		{Ordering: ordered(1), Title: "Years of Excellence", Value: "15+", IconType: "calendar", Color: "blue"},
		{Ordering: ordered(2), Title: "Current Students", Value: "500+", IconType: "students", Color: "green"},
		{Ordering: ordered(3), Title: "Graduates", Value: "1200+", IconType: "graduation", Color: "purple"},
		{Ordering: ordered(4), Title: "Qualified Teachers", Value: "25", IconType: "teachers", Color: "yellow"},
	}
}

// DefaultCoreValues returns the default core value cards.
func DefaultCoreValues() []CoreValue {
	return []CoreValue{
		{
			Ordering:    ordered(1),
			Title:       "Excellence in Education",
			Description: "We strive for the highest standards in Islamic education, combining traditional teachings with modern pedagogical methods to ensure comprehensive learning.",
			IconType:    "excellence",
		},
		{
			Ordering:    ordered(2),
			Title:       "Character Development",
			Description: "Building strong moral character and ethical values based on Islamic principles, preparing students to be responsible members of society.",
			IconType:    "compassion",
		},
		{
			Ordering:    ordered(3),
			Title:       "Community Service",
			Description: "Encouraging active participation in community development and social welfare, fostering a spirit of service and compassion.",
			IconType:    "community",
		},
	}
}

// DefaultLeadership returns the default leadership team.
func DefaultLeadership() []LeadershipMember {
	return []LeadershipMember{
		{
			Ordering:    ordered(1),
			Name:        "Dr. Muhammad Abdullah",
			Position:    "Principal & Chief Administrator",
			Description: "With over 20 years of experience in Islamic education, Dr. Abdullah leads our institution with wisdom and dedication to academic excellence and character development.",
			Email:       "principal@madrasa.edu",
			Phone:       "+1 (555) 123-4567",
		},
		{
			Ordering:    ordered(2),
			Name:        "Ustadh Ahmad Hassan",
			Position:    "Academic Director",
			Description: "A renowned scholar specializing in Quranic studies and Arabic literature, overseeing our comprehensive academic programs and curriculum development.",
			Email:       "academic@madrasa.edu",
			Phone:       "+1 (555) 123-4568",
		},
		{
			Ordering:    ordered(3),
			Name:        "Sister Fatima Al-Zahra",
			Position:    "Student Affairs Coordinator",
			Description: "Dedicated to student welfare and development, ensuring a supportive learning environment that promotes both academic success and personal growth.",
			Email:       "student.affairs@madrasa.edu",
			Phone:       "+1 (555) 123-4569",
		},
	}
}

// DefaultMissionVision returns the default Mission & Vision page.
func DefaultMissionVision() MissionVision {
	return MissionVision{
		HeroTitle:      "Our Mission & Vision",
		HeroSubtitle:   "Discover the driving force behind our commitment to excellence in Islamic education and our vision for the future.",
		MissionTitle:   "Our Mission",
		MissionContent: "To provide exceptional Islamic education that nurtures both spiritual growth and academic excellence, preparing students to become responsible citizens and leaders in their communities while maintaining strong Islamic values and principles.",
		VisionTitle:    "Our Vision",
		VisionContent:  "To be a leading institution in Islamic education, recognized for our commitment to excellence, innovation, and the holistic development of our students, creating future leaders who will contribute positively to society.",
		GoalTitle:      "Our Goals",
		GoalContent:    "We strive to create an environment where students excel academically while developing strong moral character, critical thinking skills, and a deep understanding of Islamic principles that will guide them throughout their lives.",
		CtaTitle:       "Join Our Journey",
		CtaSubtitle:    "Be part of our mission to transform lives through quality Islamic education",
		CtaButtonText:  "Get Involved",
		CtaButtonLink:  "/contact",
	}
}

// DefaultAdvisoryCommittee returns the default Advisory Committee page text.
func DefaultAdvisoryCommittee() AdvisoryCommittee {
	return AdvisoryCommittee{
		HeroTitle:     "Advisory Committee",
		HeroSubtitle:  "Distinguished leaders and experts guiding our institution towards excellence in Islamic education and community development.",
		IntroTitle:    "Our Advisory Board",
		IntroContent:  "Our Advisory Committee comprises distinguished professionals, scholars, and community leaders who provide strategic guidance and oversight to ensure our institution maintains the highest standards of Islamic education while adapting to contemporary educational needs.",
		RolesTitle:    "Committee Roles & Responsibilities",
		RolesContent:  "The Advisory Committee plays a crucial role in shaping our institution's strategic direction, reviewing academic programs, ensuring compliance with educational standards, and fostering community partnerships that enhance our students' learning experience.",
		CtaTitle:      "Join Our Advisory Network",
		CtaSubtitle:   "We welcome qualified professionals and community leaders to contribute to our mission",
		CtaButtonText: "Get Involved",
		CtaButtonLink: "/contact",
	}
}

// DefaultCommitteeMembers returns the default committee roster.
func DefaultCommitteeMembers() []CommitteeMember {
	return []CommitteeMember{
		{
			Ordering:    ordered(1),
			Name:        "Dr. Ahmed Hassan",
			Position:    "Chairman",
			Expertise:   "Islamic Studies & Educational Leadership",
			Bio:         "Dr. Ahmed Hassan brings over 25 years of experience in Islamic education and institutional leadership. He holds a PhD in Islamic Studies and has served as an educational consultant for numerous Islamic institutions worldwide.",
			Email:       "ahmed.hassan@example.com",
			Phone:       "+1-555-0101",
			LinkedinURL: "https://linkedin.com/in/ahmed-hassan",
		},
		{
			Ordering:    ordered(2),
			Name:        "Prof. Fatima Al-Zahra",
			Position:    "Vice Chairwoman",
			Expertise:   "Curriculum Development & Pedagogy",
			Bio:         "Professor Fatima Al-Zahra is a renowned expert in Islamic curriculum development with over 20 years of experience in educational design and implementation. She has authored several books on modern Islamic pedagogy.",
			Email:       "fatima.alzahra@example.com",
			Phone:       "+1-555-0102",
			LinkedinURL: "https://linkedin.com/in/fatima-alzahra",
		},
		{
			Ordering:    ordered(3),
			Name:        "Dr. Omar Malik",
			Position:    "Academic Advisor",
			Expertise:   "Higher Education & Research",
			Bio:         "Dr. Omar Malik is a distinguished academic with expertise in higher education administration and Islamic research methodologies. He has published extensively on contemporary issues in Islamic education.",
			Email:       "omar.malik@example.com",
			Phone:       "+1-555-0103",
			LinkedinURL: "https://linkedin.com/in/omar-malik",
		},
		{
			Ordering:    ordered(4),
			Name:        "Mrs. Aisha Rahman",
			Position:    "Community Relations Advisor",
			Expertise:   "Community Engagement & Outreach",
			Bio:         "Mrs. Aisha Rahman has dedicated her career to building bridges between educational institutions and communities. She brings valuable insights into community needs and engagement strategies.",
			Email:       "aisha.rahman@example.com",
			Phone:       "+1-555-0104",
			LinkedinURL: "https://linkedin.com/in/aisha-rahman",
		},
		{
			Ordering:    ordered(5),
			Name:        "Dr. Yusuf Ibrahim",
			Position:    "Technology & Innovation Advisor",
			Expertise:   "Educational Technology & Digital Learning",
			Bio:         "Dr. Yusuf Ibrahim is a pioneer in educational technology with a focus on integrating modern digital tools with traditional Islamic education methods. He advises on our digital transformation initiatives.",
			Email:       "yusuf.ibrahim@example.com",
			Phone:       "+1-555-0105",
			LinkedinURL: "https://linkedin.com/in/yusuf-ibrahim",
		},
		{
			Ordering:    ordered(6),
			Name:        "Prof. Khadija Nasir",
			Position:    "Student Affairs Advisor",
			Expertise:   "Student Development & Counseling",
			Bio:         "Professor Khadija Nasir specializes in student development and Islamic counseling. She ensures our advisory committee maintains a student-centered approach in all decision-making processes.",
			Email:       "khadija.nasir@example.com",
			Phone:       "+1-555-0106",
			LinkedinURL: "https://linkedin.com/in/khadija-nasir",
		},
	}
}

// DefaultChairmanMessage returns the default Chairman's Message page.
func DefaultChairmanMessage() ChairmanMessage {
	return ChairmanMessage{
		HeroTitle:           "Chairman's Message",
		HeroSubtitle:        "A message from our esteemed Chairman about our vision, mission, and commitment to excellence in Islamic education and community development.",
		ChairmanName:        "Dr. Muhammad Al-Rashid",
		ChairmanTitle:       "Chairman of the Board",
		ChairmanImage:       "/static/images/chairman-placeholder.jpg",
		MessageTitle:        "Welcome to Our Institution",
		MessageContent:      "Assalamu Alaikum wa Rahmatullahi wa Barakatuh. It is with great pleasure and humility that I welcome you to our esteemed institution. As Chairman of the Board, I am honored to lead an organization that has been at the forefront of Islamic education for decades. Our commitment to excellence in both religious and academic education remains unwavering, as we strive to nurture the next generation of Muslim leaders who will contribute positively to society while maintaining their Islamic identity and values.",
		VisionTitle:         "Our Vision for the Future",
		VisionContent:       "We envision a future where our graduates become beacons of knowledge, wisdom, and moral excellence in their communities. Our institution serves as a bridge between traditional Islamic scholarship and contemporary educational needs, ensuring that our students are well-equipped to face the challenges of the modern world while remaining firmly rooted in their faith. We are committed to fostering an environment of intellectual curiosity, spiritual growth, and character development.",
		AchievementsTitle:   "Our Achievements and Milestones",
		AchievementsContent: "Over the years, we have achieved remarkable milestones that reflect our dedication to educational excellence. Our graduates have gone on to become successful professionals, scholars, and community leaders across various fields. We have established partnerships with renowned institutions worldwide, expanded our academic programs, and continuously improved our facilities to provide the best learning environment for our students.",
		ClosingMessage:      "I invite you to join us in this noble journey of education and character building. Together, we can create a brighter future for our community and contribute to the betterment of society as a whole. May Allah bless our efforts and guide us on the path of righteousness.",
		Signature:           "Dr. Muhammad Al-Rashid",
	}
}

// 联系页在没有任何联系信息时的占位文字。
const (
	DefaultContactCountry = "Bangladesh"
	ContactPhoneFallback  = "Phone number coming soon"
	ContactEmailFallback  = "Email coming soon"
	ContactInfoFallback   = "Contact information will be available soon."
)

// 新闻分类的默认颜色。
const DefaultNewsCategoryColor = "blue"

// DefaultSiteName is used until an admin sets one.
const DefaultSiteName = "Madrasa"

package contact

// Recipients holds the configured officer addresses.
// President and VPExternal are accepted but not routed to by any category.
type Recipients struct {
	President        string `env:"PRESIDENT_EMAIL"`
	VPOperations     string `env:"VP_OPERATIONS_EMAIL"`
	VPEquity         string `env:"VP_EQUITY_EMAIL"`
	VPCommunications string `env:"VP_COMMUNICATIONS_EMAIL"`
	VPExternal       string `env:"VP_EXTERNAL_EMAIL"`
	VPStudentLife    string `env:"VP_STUDENT_LIFE_EMAIL"`
	VPFinance        string `env:"VP_FINANCE_EMAIL"`
	VPAcademics      string `env:"VP_ACADEMICS_EMAIL"`

	// TechCommittee is also the fixed From address of every notification.
	TechCommittee string `env:"TECH_COMMITTEE_EMAIL,required"`
}

type Config struct {
	Recipients

	OriginURL     string `env:"ORIGIN_URL,required"`
	SubjectPrefix string `env:"SUBJECT_PREFIX" envDefault:"[usstm.ca Contact Form] - "`
	Tag           string `env:"POSTMARK_TAG" envDefault:"contact-form"`

	// StrictCategories rejects unknown categories with 400 instead of
	// attempting a send without a recipient.
	StrictCategories bool `env:"STRICT_CATEGORIES" envDefault:"false"`
}

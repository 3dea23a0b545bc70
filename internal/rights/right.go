package rights

// Sentinel values used inside categorical criteria lists to mean "no
// restriction". Catalog entries use both spellings.
const (
	SentinelAll     = "כל"
	SentinelGeneral = "כללי"
)

// Right is a single catalog entry describing a benefit and the criteria an
// individual must satisfy to be entitled to it. Records are read-only once
// loaded.
type Right struct {
	ID                string    `json:"id" mapstructure:"id"`
	Name              string    `json:"name" mapstructure:"name"`
	Description       string    `json:"description,omitempty" mapstructure:"description"`
	Category          string    `json:"category,omitempty" mapstructure:"category"`
	Subcategory       string    `json:"subcategory,omitempty" mapstructure:"subcategory"`
	Eligibility       *Criteria `json:"eligibility_criteria,omitempty" mapstructure:"eligibility_criteria"`
	Priority          string    `json:"priority,omitempty" mapstructure:"priority"`
	AmountEstimation  string    `json:"amount_estimation,omitempty" mapstructure:"amount_estimation"`
	ApplicationMethod string    `json:"application_method,omitempty" mapstructure:"application_method"`
	RequiredDocuments []string  `json:"required_documents,omitempty" mapstructure:"required_documents"`
	ProcessingTime    string    `json:"processing_time,omitempty" mapstructure:"processing_time"`
	ContactInfo       string    `json:"contact_info,omitempty" mapstructure:"contact_info"`
	WebsiteURL        string    `json:"website_url,omitempty" mapstructure:"website_url"`
	Keywords          []string  `json:"keywords,omitempty" mapstructure:"keywords"`
	RelatedRights     []string  `json:"related_rights,omitempty" mapstructure:"related_rights"`
	LastUpdated       string    `json:"last_updated,omitempty" mapstructure:"last_updated"`
}

// Criteria holds the eligibility dimensions of a Right. A nil pointer or an
// empty/sentinel list means the dimension is unrestricted. Catalog data is
// known to be incomplete; absence of a criterion is a valid state, not an
// error.
type Criteria struct {
	AgeMin               *int `json:"age_min,omitempty" mapstructure:"age_min"`
	AgeMax               *int `json:"age_max,omitempty" mapstructure:"age_max"`
	IncomeMax            *int `json:"income_max,omitempty" mapstructure:"income_max"`
	DisabilityPercentage *int `json:"disability_percentage,omitempty" mapstructure:"disability_percentage"`
	ServiceLengthYears   *int `json:"service_length_years,omitempty" mapstructure:"service_length_years"`
	WorkExperienceYears  *int `json:"work_experience_years,omitempty" mapstructure:"work_experience_years"`

	Gender             []string `json:"gender,omitempty" mapstructure:"gender"`
	MaritalStatus      []string `json:"marital_status,omitempty" mapstructure:"marital_status"`
	EmploymentStatus   []string `json:"employment_status,omitempty" mapstructure:"employment_status"`
	MilitaryService    []string `json:"military_service,omitempty" mapstructure:"military_service"`
	Sector             []string `json:"sector,omitempty" mapstructure:"sector"`
	HousingStatus      []string `json:"housing_status,omitempty" mapstructure:"housing_status"`
	Education          []string `json:"education,omitempty" mapstructure:"education"`
	DisabilityType     []string `json:"disability_type,omitempty" mapstructure:"disability_type"`
	ChildrenSchoolType []string `json:"children_school_type,omitempty" mapstructure:"children_school_type"`

	HasChildren          *bool `json:"has_children,omitempty" mapstructure:"has_children"`
	ChildrenUnder18      *bool `json:"children_under_18,omitempty" mapstructure:"children_under_18"`
	RecognizedDisability *bool `json:"recognized_disability,omitempty" mapstructure:"recognized_disability"`
	HealthIssue          *bool `json:"health_issue,omitempty" mapstructure:"health_issue"`
	ChildSpecialNeeds    *bool `json:"child_special_needs,omitempty" mapstructure:"child_special_needs"`
	IsNewImmigrant       *bool `json:"is_new_immigrant,omitempty" mapstructure:"is_new_immigrant"`
	NeedDailyAssistance  *bool `json:"need_daily_assistance,omitempty" mapstructure:"need_daily_assistance"`
	FiledDisabilityClaim *bool `json:"filed_disability_claim,omitempty" mapstructure:"filed_disability_claim"`
	ReceivingBenefit     *bool `json:"receiving_benefit,omitempty" mapstructure:"receiving_benefit"`
	InjuredInService     *bool `json:"injured_in_service,omitempty" mapstructure:"injured_in_service"`
	IncomeDrop           *bool `json:"income_drop,omitempty" mapstructure:"income_drop"`
	PaidIncomeTax        *bool `json:"paid_income_tax,omitempty" mapstructure:"paid_income_tax"`
	HadWorkAccident      *bool `json:"had_work_accident,omitempty" mapstructure:"had_work_accident"`
}

// Restricts reports whether the list actually constrains anything. An empty
// list or one containing a sentinel entry is unrestricted.
func Restricts(list []string) bool {
	if len(list) == 0 {
		return false
	}
	for _, v := range list {
		if v == SentinelAll || v == SentinelGeneral {
			return false
		}
	}
	return true
}

// MeaningfulCount returns the number of criteria that carry discriminating
// power: set booleans and restricting categorical lists of fewer than five
// entries. Numeric bounds are deliberately not counted, matching how the
// catalog was curated.
func (c *Criteria) MeaningfulCount() int {
	if c == nil {
		return 0
	}

	count := 0
	for _, b := range []*bool{
		c.HasChildren, c.ChildrenUnder18, c.RecognizedDisability, c.HealthIssue,
		c.ChildSpecialNeeds, c.IsNewImmigrant, c.NeedDailyAssistance,
		c.FiledDisabilityClaim, c.ReceivingBenefit, c.InjuredInService,
		c.IncomeDrop, c.PaidIncomeTax, c.HadWorkAccident,
	} {
		if b != nil {
			count++
		}
	}

	for _, list := range [][]string{
		c.Gender, c.MaritalStatus, c.EmploymentStatus, c.MilitaryService,
		c.Sector, c.HousingStatus, c.Education, c.DisabilityType,
		c.ChildrenSchoolType,
	} {
		if Restricts(list) && len(list) < 5 {
			count++
		}
	}

	return count
}

// Rights is an ordered collection of catalog entries.
type Rights struct {
	Items []*Right
}

func (r *Rights) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Items)
}

func (r *Rights) FindByID(id string) *Right {
	for _, right := range r.Items {
		if right.ID == id {
			return right
		}
	}
	return nil
}

func (r *Rights) Names() []string {
	names := make([]string, 0, r.Len())
	for _, right := range r.Items {
		names = append(names, right.Name)
	}
	return names
}

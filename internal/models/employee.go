package models

// CompanyName is stamped on every generated record.
const CompanyName = "DRC Systems"

// Employee is one fabricated record. Pointer and slice fields are nil when the
// null policy dropped them and serialize as JSON null.
type Employee struct {
	EmployeeID    string   `json:"Employee_ID"`
	Name          *string  `json:"Name"`
	Age           *int     `json:"Age"`
	Gender        *string  `json:"Gender"`
	TeamName      *string  `json:"Team_Name"`
	Degree        *string  `json:"Degree"`
	YearOfPassing *int     `json:"Year_of_Passing"`
	DateOfJoining *string  `json:"Date_of_Joining"`
	Skills        []string `json:"Skills"`
	MobileNumber  *string  `json:"Mobile_Number"`
	EmailID       *string  `json:"Email_ID"`
	EmployeeGrade *string  `json:"Employee_Grade"`
	CompanyName   string   `json:"Company_Name"`
}

// Field names as they appear in JSON, used for per-field null accounting.
const (
	FieldName          = "Name"
	FieldAge           = "Age"
	FieldGender        = "Gender"
	FieldTeamName      = "Team_Name"
	FieldDegree        = "Degree"
	FieldYearOfPassing = "Year_of_Passing"
	FieldDateOfJoining = "Date_of_Joining"
	FieldSkills        = "Skills"
	FieldMobileNumber  = "Mobile_Number"
	FieldEmailID       = "Email_ID"
	FieldEmployeeGrade = "Employee_Grade"
)

// NullableFields lists every display field subject to the null policy, in JSON order.
var NullableFields = []string{
	FieldName, FieldAge, FieldGender, FieldTeamName, FieldDegree, FieldYearOfPassing,
	FieldDateOfJoining, FieldSkills, FieldMobileNumber, FieldEmailID, FieldEmployeeGrade,
}

var (
	Teams   = []string{"AI/ML", "Web Development", "Mobile", "Data Science", "QA", "DevOps"}
	Genders = []string{"Male", "Female", "Other"}
	Degrees = []string{"B.Tech", "M.Tech", "B.Sc", "MCA", "MBA", "PhD"}
	Grades  = []string{"Intern", "Junior", "Mid-Level", "Senior", "Lead", "Manager"}
	Skills  = []string{"Python", "AI", "ML", "React", "Node.js", "Docker", "SQL", "AWS"}
)

const (
	MinAge           = 21
	MaxAge           = 60
	MinYearOfPassing = 2010
	MaxYearOfPassing = 2025
	SkillsPerRecord  = 3

	// JoinWindowYears is how far back Date_of_Joining may reach from today.
	JoinWindowYears = 10
	DateLayout      = "2006-01-02"
)

// IsNull reports whether the named display field was dropped by the null policy.
func (e Employee) IsNull(field string) bool {
	switch field {
	case FieldName:
		return e.Name == nil
	case FieldAge:
		return e.Age == nil
	case FieldGender:
		return e.Gender == nil
	case FieldTeamName:
		return e.TeamName == nil
	case FieldDegree:
		return e.Degree == nil
	case FieldYearOfPassing:
		return e.YearOfPassing == nil
	case FieldDateOfJoining:
		return e.DateOfJoining == nil
	case FieldSkills:
		return e.Skills == nil
	case FieldMobileNumber:
		return e.MobileNumber == nil
	case FieldEmailID:
		return e.EmailID == nil
	case FieldEmployeeGrade:
		return e.EmployeeGrade == nil
	default:
		return false
	}
}

// Package synth fabricates employee records.
//
// A Synthesizer owns a single random source for the life of the process. The
// source only advances; there is no reset. Every record is produced under one
// lock so concurrent callers never interleave draws inside a record, although
// the records they receive come from a shared stream in no particular order.
package synth

import (
	"iter"
	"math/rand"
	"sync"
	"time"

	"github.com/jaswdr/faker"

	"smart-employee-api/internal/models"
	"smart-employee-api/internal/smartid"
)

type Synthesizer struct {
	mu              sync.Mutex
	fake            faker.Faker
	rng             *rand.Rand
	ids             *smartid.Builder
	seed            int64
	now             func() time.Time
	nullProbability float64
	observer        Observer
}

func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		now:             time.Now,
		nullProbability: DefaultNullProbability,
	}
	for _, opt := range opts {
		opt(s)
	}
	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))
	s.fake = faker.Faker{Generator: s.rng}
	s.ids = smartid.NewBuilder(s.rng)
	return s
}

// Next produces one record.
func (s *Synthesizer) Next() models.Employee {
	s.mu.Lock()
	emp, nulled := s.next()
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.RecordGenerated(nulled)
	}
	return emp
}

// Take produces exactly n records. n <= 0 yields an empty, non-nil slice.
func (s *Synthesizer) Take(n int) []models.Employee {
	if n <= 0 {
		return []models.Employee{}
	}
	out := make([]models.Employee, 0, n)
	for emp := range s.All() {
		out = append(out, emp)
		if len(out) == n {
			break
		}
	}
	return out
}

// All is the unbounded record stream. It ends only when the consumer stops.
func (s *Synthesizer) All() iter.Seq[models.Employee] {
	return func(yield func(models.Employee) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}

func (s *Synthesizer) next() (models.Employee, []string) {
	// Team and joining date are drawn first and never nulled for the ID.
	rawDate := s.joinDate()
	rawTeam := s.pick(models.Teams)

	emp := models.Employee{
		EmployeeID:  s.ids.New(&rawDate, &rawTeam),
		CompanyName: models.CompanyName,
	}
	var nulled []string
	keep := func(field string) bool {
		if s.rng.Float64() < s.nullProbability {
			nulled = append(nulled, field)
			return false
		}
		return true
	}

	name := s.fake.Person().Name()
	if keep(models.FieldName) {
		emp.Name = &name
	}
	age := s.between(models.MinAge, models.MaxAge)
	if keep(models.FieldAge) {
		emp.Age = &age
	}
	gender := s.pick(models.Genders)
	if keep(models.FieldGender) {
		emp.Gender = &gender
	}
	if keep(models.FieldTeamName) {
		team := rawTeam
		emp.TeamName = &team
	}
	degree := s.pick(models.Degrees)
	if keep(models.FieldDegree) {
		emp.Degree = &degree
	}
	year := s.between(models.MinYearOfPassing, models.MaxYearOfPassing)
	if keep(models.FieldYearOfPassing) {
		emp.YearOfPassing = &year
	}
	if keep(models.FieldDateOfJoining) {
		date := rawDate
		emp.DateOfJoining = &date
	}
	skills := s.sample(models.Skills, models.SkillsPerRecord)
	if keep(models.FieldSkills) {
		emp.Skills = skills
	}
	phone := s.fake.Phone().Number()
	if keep(models.FieldMobileNumber) {
		emp.MobileNumber = &phone
	}
	email := s.fake.Internet().Email()
	if keep(models.FieldEmailID) {
		emp.EmailID = &email
	}
	grade := s.pick(models.Grades)
	if keep(models.FieldEmployeeGrade) {
		emp.EmployeeGrade = &grade
	}
	return emp, nulled
}

// joinDate draws a whole day uniformly from the last JoinWindowYears up to today.
func (s *Synthesizer) joinDate() string {
	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	start := today.AddDate(-models.JoinWindowYears, 0, 0)
	days := int(today.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, s.rng.Intn(days+1)).Format(models.DateLayout)
}

// between is inclusive on both ends.
func (s *Synthesizer) between(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *Synthesizer) pick(items []string) string {
	return items[s.rng.Intn(len(items))]
}

// sample draws k distinct items without replacement.
func (s *Synthesizer) sample(items []string, k int) []string {
	perm := s.rng.Perm(len(items))
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = items[perm[i]]
	}
	return out
}

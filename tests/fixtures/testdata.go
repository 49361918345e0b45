package fixtures

import (
	"encoding/base64"
	"time"

	"github.com/vcas-web/vcas-backend/internal/models"
)

// ContactBuilder creates test ContactSubmission instances with fluent API
type ContactBuilder struct {
	contact models.ContactSubmission
}

// NewContactBuilder creates a new ContactBuilder with sensible defaults
func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{
		contact: models.ContactSubmission{
			ID:        "11111111-1111-1111-1111-111111111111",
			Name:      "Jane Smith",
			Email:     "jane.smith@example.com",
			Phone:     "+1 555 0100",
			Subject:   "Partnership inquiry",
			Message:   "I would like to discuss a partnership opportunity.",
			CreatedAt: time.Now(),
		},
	}
}

// WithID sets the contact ID
func (b *ContactBuilder) WithID(id string) *ContactBuilder {
	b.contact.ID = id
	return b
}

// WithName sets the submitter name
func (b *ContactBuilder) WithName(name string) *ContactBuilder {
	b.contact.Name = name
	return b
}

// WithEmail sets the submitter email
func (b *ContactBuilder) WithEmail(email string) *ContactBuilder {
	b.contact.Email = email
	return b
}

// WithPhone sets the submitter phone number
func (b *ContactBuilder) WithPhone(phone string) *ContactBuilder {
	b.contact.Phone = phone
	return b
}

// WithSubject sets the inquiry subject
func (b *ContactBuilder) WithSubject(subject string) *ContactBuilder {
	b.contact.Subject = subject
	return b
}

// WithMessage sets the inquiry message
func (b *ContactBuilder) WithMessage(message string) *ContactBuilder {
	b.contact.Message = message
	return b
}

// WithCreatedAt sets the created timestamp
func (b *ContactBuilder) WithCreatedAt(t time.Time) *ContactBuilder {
	b.contact.CreatedAt = t
	return b
}

// Build returns the constructed ContactSubmission
func (b *ContactBuilder) Build() *models.ContactSubmission {
	return &b.contact
}

// BuildValue returns the constructed ContactSubmission as a value (not pointer)
func (b *ContactBuilder) BuildValue() models.ContactSubmission {
	return b.contact
}

// ApplicationBuilder creates test ApplicationSubmission instances with fluent API
type ApplicationBuilder struct {
	application models.ApplicationSubmission
}

// NewApplicationBuilder creates a new ApplicationBuilder with sensible defaults
func NewApplicationBuilder() *ApplicationBuilder {
	return &ApplicationBuilder{
		application: models.ApplicationSubmission{
			ID:          "22222222-2222-2222-2222-222222222222",
			Name:        "John Doe",
			Email:       "john.doe@example.com",
			Phone:       "+1 555 0101",
			Position:    "Backend Engineer",
			Experience:  "5 years building web services",
			Education:   "BSc Computer Science",
			Skills:      models.StringList{"Go", "PostgreSQL", "Docker"},
			CoverLetter: "I am excited to apply for this role.",
			CreatedAt:   time.Now(),
		},
	}
}

// WithID sets the application ID
func (b *ApplicationBuilder) WithID(id string) *ApplicationBuilder {
	b.application.ID = id
	return b
}

// WithName sets the applicant name
func (b *ApplicationBuilder) WithName(name string) *ApplicationBuilder {
	b.application.Name = name
	return b
}

// WithEmail sets the applicant email
func (b *ApplicationBuilder) WithEmail(email string) *ApplicationBuilder {
	b.application.Email = email
	return b
}

// WithPhone sets the applicant phone number
func (b *ApplicationBuilder) WithPhone(phone string) *ApplicationBuilder {
	b.application.Phone = phone
	return b
}

// WithPosition sets the position applied for
func (b *ApplicationBuilder) WithPosition(position string) *ApplicationBuilder {
	b.application.Position = position
	return b
}

// WithExperience sets the experience summary
func (b *ApplicationBuilder) WithExperience(experience string) *ApplicationBuilder {
	b.application.Experience = experience
	return b
}

// WithEducation sets the education summary
func (b *ApplicationBuilder) WithEducation(education string) *ApplicationBuilder {
	b.application.Education = education
	return b
}

// WithSkills sets the skills list
func (b *ApplicationBuilder) WithSkills(skills ...string) *ApplicationBuilder {
	b.application.Skills = models.StringList(skills)
	return b
}

// WithCoverLetter sets the cover letter
func (b *ApplicationBuilder) WithCoverLetter(coverLetter string) *ApplicationBuilder {
	b.application.CoverLetter = coverLetter
	return b
}

// WithResume attaches raw resume bytes, base64-encoded the way the
// upload handler stores them
func (b *ApplicationBuilder) WithResume(data []byte) *ApplicationBuilder {
	b.application.ResumeFile = base64.StdEncoding.EncodeToString(data)
	return b
}

// WithoutResume clears the resume file
func (b *ApplicationBuilder) WithoutResume() *ApplicationBuilder {
	b.application.ResumeFile = ""
	return b
}

// WithCreatedAt sets the created timestamp
func (b *ApplicationBuilder) WithCreatedAt(t time.Time) *ApplicationBuilder {
	b.application.CreatedAt = t
	return b
}

// Build returns the constructed ApplicationSubmission
func (b *ApplicationBuilder) Build() *models.ApplicationSubmission {
	return &b.application
}

// BuildValue returns the constructed ApplicationSubmission as a value (not pointer)
func (b *ApplicationBuilder) BuildValue() models.ApplicationSubmission {
	return b.application
}

// CreateContacts creates a slice of contact submissions with distinct IDs
// and strictly decreasing timestamps (index 0 is the newest)
func CreateContacts(count int) []models.ContactSubmission {
	base := time.Now()
	contacts := make([]models.ContactSubmission, count)
	for i := 0; i < count; i++ {
		contacts[i] = NewContactBuilder().
			WithID(sequentialID(i)).
			WithSubject(generateSubject(i)).
			WithCreatedAt(base.Add(-time.Duration(i) * time.Hour)).
			BuildValue()
	}
	return contacts
}

// CreateApplications creates a slice of application submissions with distinct
// IDs and strictly decreasing timestamps (index 0 is the newest)
func CreateApplications(count int) []models.ApplicationSubmission {
	base := time.Now()
	applications := make([]models.ApplicationSubmission, count)
	for i := 0; i < count; i++ {
		applications[i] = NewApplicationBuilder().
			WithID(sequentialID(i)).
			WithPosition(generatePosition(i)).
			WithCreatedAt(base.Add(-time.Duration(i) * time.Hour)).
			BuildValue()
	}
	return applications
}

func sequentialID(index int) string {
	digit := byte('0' + index%10)
	id := []byte("00000000-0000-0000-0000-000000000000")
	id[len(id)-1] = digit
	id[len(id)-2] = byte('0' + (index/10)%10)
	return string(id)
}

func generateSubject(index int) string {
	subjects := []string{
		"Partnership inquiry",
		"Question about services",
		"Press request",
		"General feedback",
		"Support request",
	}
	return subjects[index%len(subjects)]
}

func generatePosition(index int) string {
	positions := []string{
		"Backend Engineer",
		"Frontend Engineer",
		"Product Designer",
		"HR Coordinator",
		"Marketing Manager",
	}
	return positions[index%len(positions)]
}

package dbmodels

type FileStorage struct {
	BaseModel
	Name        string
	ApplicantID string `gorm:"type:varchar(36);index"`
	Type        FileType
	ContentType string
}

type FileType string

const (
	ApplicantResume FileType = "applicant_resume"
	ApplicantDoc    FileType = "applicant_doc"
)

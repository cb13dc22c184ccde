package dbmodels

// Application заявка кандидата на вакансию, одна на пару (кандидат, период вакансии).
// StatusID — денормализованная проекция журнала этапов, пересчитывается
// движком переходов внутри той же транзакции и отдельно не обновляется.
type Application struct {
	BaseModel
	ApplicantID string     `gorm:"type:varchar(36);index:idx_application_unique,unique"`
	Applicant   *Applicant `gorm:"foreignKey:ApplicantID"`
	VacancyID   string     `gorm:"type:varchar(36);index:idx_application_unique,unique"`
	Vacancy     *Vacancy   `gorm:"foreignKey:VacancyID"`
	StatusID    string     `gorm:"type:varchar(36)"`
	Status      *Status    `gorm:"foreignKey:StatusID"`
}

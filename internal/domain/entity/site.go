package entity

// SitePayload is everything a theme needs to render one public page. It is
// only assembled for published configs; cases arrive date-descending with
// undated cases last, specialties name-ascending.
type SitePayload struct {
	Account     *Account
	Config      *PublicationConfig
	Cases       []CaseStudy
	Specialties []Specialty
}

package postgres

import (
	"lexsite/internal/domain/entity"
	"lexsite/internal/infra/persistence/model"
)

// Mapping between persistence models and domain entities. Repositories hand
// out entities only; GORM models never cross the repository boundary.

func toAccountDomain(m *model.AccountModel) *entity.Account {
	if m == nil {
		return nil
	}

	account := &entity.Account{
		ID:           m.ID,
		ExternalID:   m.ExternalID,
		Email:        m.Email,
		Name:         m.Name,
		Title:        m.Title,
		LicenseNo:    m.LicenseNo,
		Organization: m.Organization,
		Phone:        m.Phone,
		ContactQR:    m.ContactQR,
		Bio:          m.Bio,
		AvatarURL:    m.AvatarURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Publication:  toPublicationDomain(m.Publication),
	}

	for i := range m.Cases {
		account.Cases = append(account.Cases, *toCaseStudyDomain(&m.Cases[i]))
	}
	for i := range m.Specialties {
		account.Specialties = append(account.Specialties, *toSpecialtyDomain(&m.Specialties[i]))
	}

	return account
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           a.ID,
		ExternalID:   a.ExternalID,
		Email:        a.Email,
		Name:         a.Name,
		Title:        a.Title,
		LicenseNo:    a.LicenseNo,
		Organization: a.Organization,
		Phone:        a.Phone,
		ContactQR:    a.ContactQR,
		Bio:          a.Bio,
		AvatarURL:    a.AvatarURL,
	}
}

func toPublicationDomain(m *model.PublicationConfigModel) *entity.PublicationConfig {
	if m == nil {
		return nil
	}

	return &entity.PublicationConfig{
		AccountID:    m.AccountID,
		Slug:         m.Slug,
		ThemeID:      m.ThemeID,
		PrimaryColor: m.PrimaryColor,
		Published:    m.Published,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromPublicationDomain(c *entity.PublicationConfig) *model.PublicationConfigModel {
	return &model.PublicationConfigModel{
		AccountID:    c.AccountID,
		Slug:         c.Slug,
		ThemeID:      c.ThemeID,
		PrimaryColor: c.PrimaryColor,
		Published:    c.Published,
	}
}

func toCaseStudyDomain(m *model.CaseStudyModel) *entity.CaseStudy {
	if m == nil {
		return nil
	}

	return &entity.CaseStudy{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Title:       m.Title,
		Description: m.Description,
		Result:      m.Result,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromCaseStudyDomain(cs *entity.CaseStudy) *model.CaseStudyModel {
	return &model.CaseStudyModel{
		ID:          cs.ID,
		AccountID:   cs.AccountID,
		Title:       cs.Title,
		Description: cs.Description,
		Result:      cs.Result,
		Date:        cs.Date,
	}
}

func toSpecialtyDomain(m *model.SpecialtyModel) *entity.Specialty {
	if m == nil {
		return nil
	}

	return &entity.Specialty{
		ID:        m.ID,
		AccountID: m.AccountID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

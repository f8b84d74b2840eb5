package theme

import (
	"testing"
	"time"

	"lexsite/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload(themeID string) *entity.SitePayload {
	date := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)

	return &entity.SitePayload{
		Account: &entity.Account{
			Name:         "张伟",
			Title:        "高级合伙人",
			Organization: "某某律师事务所",
			Bio:          "<p>十年执业经验</p>",
		},
		Config: &entity.PublicationConfig{
			Slug:         "zhang-wei",
			ThemeID:      themeID,
			PrimaryColor: "#1e40af",
			Published:    true,
		},
		Cases: []entity.CaseStudy{
			{Title: "合同纠纷胜诉", Description: "代理原告", Result: "全额支持", Date: &date},
			{Title: "未注明日期的案例", Description: "描述"},
		},
		Specialties: []entity.Specialty{{Name: "刑事辩护"}},
	}
}

func TestRegistry_RenderClassic(t *testing.T) {
	renderer, err := NewRegistry()
	require.NoError(t, err)

	html, err := renderer.Render(testPayload(entity.ThemeClassic))
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, "张伟")
	assert.Contains(t, page, "高级合伙人")
	assert.Contains(t, page, "#1e40af")
	assert.Contains(t, page, "合同纠纷胜诉")
	assert.Contains(t, page, "刑事辩护")
	assert.Contains(t, page, "2025年03月18日")
}

func TestRegistry_RenderModern(t *testing.T) {
	renderer, err := NewRegistry()
	require.NoError(t, err)

	html, err := renderer.Render(testPayload(entity.ThemeModern))
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, "张伟")
	assert.Contains(t, page, "hero")
}

func TestRegistry_UnknownThemeFallsBackToClassic(t *testing.T) {
	renderer, err := NewRegistry()
	require.NoError(t, err)

	unknown, err := renderer.Render(testPayload("neon"))
	require.NoError(t, err)

	classic, err := renderer.Render(testPayload(entity.ThemeClassic))
	require.NoError(t, err)

	assert.Equal(t, string(classic), string(unknown))
}

func TestRegistry_SanitizesBio(t *testing.T) {
	renderer, err := NewRegistry()
	require.NoError(t, err)

	payload := testPayload(entity.ThemeClassic)
	payload.Account.Bio = `<p>正当内容</p><script>alert("x")</script>`

	html, err := renderer.Render(payload)
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, "正当内容")
	assert.NotContains(t, page, "<script>")
}

func TestRegistry_EmptyNameUsesPlaceholder(t *testing.T) {
	renderer, err := NewRegistry()
	require.NoError(t, err)

	payload := testPayload(entity.ThemeClassic)
	payload.Account.Name = ""

	html, err := renderer.Render(payload)
	require.NoError(t, err)

	assert.Contains(t, string(html), "律师主页")
}

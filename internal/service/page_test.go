package service

import (
	"encoding/json"
	"testing"

	"github.com/ibrahimsaleh8/qahwajige-backend/internal/database/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPublicPageEmptyProject(t *testing.T) {
	page := BuildPublicPage(&models.Project{}, false)

	assert.Nil(t, page.Hero)
	assert.Nil(t, page.About)
	assert.Nil(t, page.Services)
	assert.Nil(t, page.WhyUs)
	assert.Nil(t, page.Contact)
	assert.Empty(t, page.Header.BrandName)
	assert.Equal(t, 0, page.Rating.TotalRatings)
	assert.Zero(t, page.Rating.AverageRating)

	// absent sections serialize as null, list sections as []
	raw, err := json.Marshal(page)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "null", string(decoded["hero"]))
	assert.Equal(t, "null", string(decoded["about"]))
	assert.Equal(t, "null", string(decoded["contact"]))
	assert.Equal(t, "[]", string(decoded["gallery"]))
	assert.Equal(t, "[]", string(decoded["packages"]))
	_, hasKeywords := decoded["keywords"]
	assert.False(t, hasKeywords)
}

func TestBuildPublicPageFullProject(t *testing.T) {
	alt := "Venue setup"
	image := "https://res.cloudinary.com/demo/image/upload/v1/projects/qahwa/about.jpg"
	project := &models.Project{
		Name: "Qahwa Cart",
		SiteSettings: &models.SiteSettings{
			BrandName:    "Qahwa",
			Email:        "hello@qahwa.example",
			Phone:        "+96650000000",
			Whatsapp:     "+96650000001",
			Address:      "Riyadh",
			SiteKeywords: pq.StringArray{"coffee", "events"},
		},
		HeroSection: &models.HeroSection{
			Headline:          "Coffee for",
			HeadlineHighlight: "every occasion",
			Subheadline:       "We come to you",
		},
		AboutSection: &models.AboutSection{
			Label:        "About",
			Title:        "Who we are",
			Description1: "A mobile coffee cart",
			Image:        &image,
		},
		ServicesSection: &models.ServicesSection{
			Label: "Services",
			Title: "What we offer",
			Services: []models.Service{
				{Icon: "coffee", Title: "Coffee corner", Description: "Espresso bar"},
				{Icon: "cake", Title: "Catering", Description: "Sweets and snacks"},
			},
		},
		ContactSection: &models.ContactSection{
			Label: "Contact",
			Title: "Get in touch",
		},
		WhyUsSection: &models.WhyUsSection{
			Label: "Why us",
			Title: "Why choose us",
			Features: []models.WhyUsFeature{
				{Icon: "star", Title: "Experience", Description: "Years of events"},
			},
		},
		GalleryImages: []models.GalleryImage{
			{URL: "https://res.cloudinary.com/demo/image/upload/v1/a.jpg", Alt: &alt},
		},
		Packages: []models.Package{
			{Title: "Basic", Features: pq.StringArray{"50 cups", "1 barista"}, Image: "pkg.jpg"},
			{Title: "Empty features"},
		},
		Ratings: []models.Rating{{Stars: 5}, {Stars: 4}},
	}

	page := BuildPublicPage(project, false)

	assert.Equal(t, "Qahwa", page.Header.BrandName)
	assert.Equal(t, "Qahwa", page.Footer.BrandName)
	assert.Equal(t, "+96650000000", page.Footer.Phone)
	assert.Equal(t, "Riyadh", page.Footer.Address)

	require.NotNil(t, page.Hero)
	assert.Equal(t, "Coffee for", page.Hero.Headline)
	assert.Equal(t, "every occasion", page.Hero.HeadlineHighlight)
	// whatsapp contact rides on the hero block but lives in settings
	assert.Equal(t, "+96650000001", page.Hero.WhatsApp)

	require.NotNil(t, page.About)
	require.NotNil(t, page.About.Image)
	assert.Equal(t, image, *page.About.Image)

	require.NotNil(t, page.Services)
	require.Len(t, page.Services.Items, 2)
	assert.Equal(t, "Coffee corner", page.Services.Items[0].Title)

	require.NotNil(t, page.WhyUs)
	require.Len(t, page.WhyUs.Features, 1)
	assert.Equal(t, "Experience", page.WhyUs.Features[0].Title)

	require.NotNil(t, page.Contact)
	assert.Equal(t, "Get in touch", page.Contact.Title)

	require.Len(t, page.Gallery, 1)
	assert.Equal(t, &alt, page.Gallery[0].Alt)

	require.Len(t, page.Packages, 2)
	assert.Equal(t, []string{"50 cups", "1 barista"}, page.Packages[0].Features)
	assert.NotNil(t, page.Packages[1].Features)
	assert.Empty(t, page.Packages[1].Features)

	assert.Equal(t, 4.5, page.Rating.AverageRating)
	assert.Equal(t, 2, page.Rating.TotalRatings)

	assert.Nil(t, page.Keywords)
}

func TestBuildPublicPageKeywords(t *testing.T) {
	project := &models.Project{
		SiteSettings: &models.SiteSettings{
			BrandName:    "Qahwa",
			SiteKeywords: pq.StringArray{"coffee", "events"},
		},
	}

	page := BuildPublicPage(project, true)
	require.NotNil(t, page.Keywords)
	assert.Equal(t, []string{"coffee", "events"}, *page.Keywords)

	// a nil keyword column still serializes as an empty array on the
	// with-keywords variant, never as a missing key
	project.SiteSettings.SiteKeywords = nil
	page = BuildPublicPage(project, true)
	require.NotNil(t, page.Keywords)
	assert.Empty(t, *page.Keywords)

	raw, err := json.Marshal(page)
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "[]", string(decoded["keywords"]))
}

func TestBuildPublicPageContactEmptyStrings(t *testing.T) {
	// a contact section saved with empty fields is an empty object, not null
	project := &models.Project{ContactSection: &models.ContactSection{}}

	page := BuildPublicPage(project, false)
	require.NotNil(t, page.Contact)
	assert.Empty(t, page.Contact.Title)

	raw, err := json.Marshal(page)
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotEqual(t, "null", string(decoded["contact"]))
}

func TestBuildPublicPageHeroWithoutSettings(t *testing.T) {
	project := &models.Project{
		HeroSection: &models.HeroSection{Headline: "Hi"},
	}

	page := BuildPublicPage(project, false)
	require.NotNil(t, page.Hero)
	assert.Empty(t, page.Hero.WhatsApp)
}

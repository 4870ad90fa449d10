package siteconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeWithDefault_FillsEveryTopLevelField(t *testing.T) {
	def := DefaultConfig()

	tests := []struct {
		name string
		cfg  SiteConfig
	}{
		{name: "empty"},
		{name: "about only", cfg: SiteConfig{About: &AboutSection{Title: "Hi"}}},
		{name: "projects only", cfg: SiteConfig{Projects: []Project{{ID: "x", Title: "X"}}}},
		{name: "contact only", cfg: SiteConfig{Contact: &ContactSection{Email: "a@b.com"}}},
		{name: "resume only", cfg: SiteConfig{Resume: &ResumeSection{FileURL: "/cv.pdf"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeWithDefault(tt.cfg, def)

			assert.NotNil(t, merged.About)
			assert.NotNil(t, merged.Projects)
			assert.NotNil(t, merged.Contact)
			assert.NotNil(t, merged.Resume)
		})
	}
}

func TestMergeWithDefault_ResolvedFieldsWin(t *testing.T) {
	def := DefaultConfig()
	cfg := SiteConfig{About: &AboutSection{Title: "Hi", Intro: "custom intro"}}

	merged := MergeWithDefault(cfg, def)

	assert.Equal(t, "Hi", merged.About.Title)
	assert.Equal(t, "custom intro", merged.About.Intro)
	// absent sections inherit the default
	assert.Equal(t, def.Contact.Email, merged.Contact.Email)
	assert.Equal(t, def.Projects, merged.Projects)
}

func TestMergeWithDefault_PartialSectionInheritsDefaultFields(t *testing.T) {
	def := DefaultConfig()

	tests := []struct {
		name  string
		cfg   SiteConfig
		check func(t *testing.T, merged SiteConfig)
	}{
		{
			name: "about title only keeps default intro",
			cfg:  SiteConfig{About: &AboutSection{Title: "Hi"}},
			check: func(t *testing.T, merged SiteConfig) {
				assert.Equal(t, "Hi", merged.About.Title)
				assert.Equal(t, def.About.Intro, merged.About.Intro)
			},
		},
		{
			name: "contact email only keeps default phone",
			cfg:  SiteConfig{Contact: &ContactSection{Email: "a@b.com"}},
			check: func(t *testing.T, merged SiteConfig) {
				assert.Equal(t, "a@b.com", merged.Contact.Email)
				assert.Equal(t, def.Contact.Phone, merged.Contact.Phone)
			},
		},
		{
			name: "resume file name only keeps default file url",
			cfg:  SiteConfig{Resume: &ResumeSection{FileName: "cv.pdf"}},
			check: func(t *testing.T, merged SiteConfig) {
				assert.Equal(t, "cv.pdf", merged.Resume.FileName)
				assert.Equal(t, def.Resume.FileURL, merged.Resume.FileURL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, MergeWithDefault(tt.cfg, def))
		})
	}
}

func TestMergeWithDefault_ExplicitEmptyProjectsWins(t *testing.T) {
	// a payload that says "projects": [] means no projects, not
	// "use the default ones"
	var cfg SiteConfig
	require.NoError(t, json.Unmarshal([]byte(`{"projects":[]}`), &cfg))

	merged := MergeWithDefault(cfg, DefaultConfig())

	assert.NotNil(t, merged.Projects)
	assert.Len(t, merged.Projects, 0)
}

func TestDefaultConfig_IsFullyPopulated(t *testing.T) {
	def := DefaultConfig()

	require.NotNil(t, def.About)
	require.NotNil(t, def.Contact)
	require.NotNil(t, def.Resume)
	assert.NotEmpty(t, def.About.Title)
	assert.NotEmpty(t, def.About.Intro)
	assert.NotEmpty(t, def.Contact.Email)
	assert.NotEmpty(t, def.Projects)

	seen := map[string]bool{}
	for _, p := range def.Projects {
		assert.False(t, seen[p.ID], "duplicate project id %s", p.ID)
		seen[p.ID] = true
	}
}

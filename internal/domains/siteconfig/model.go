package siteconfig

// ========================================
// SITE CONFIG MODEL
// ========================================
// SiteConfig is the single editable record behind the whole site.
// Top-level sections are pointers (and projects a nil-able slice) so a
// partial payload can be told apart from an explicit empty section:
// the resolver merges whatever was resolved over the compiled default,
// filling absent sections and empty section fields from the default.

type SiteConfig struct {
	About    *AboutSection   `json:"about,omitempty"`
	Projects []Project       `json:"projects,omitempty"`
	Contact  *ContactSection `json:"contact,omitempty"`
	Resume   *ResumeSection  `json:"resume,omitempty"`
}

type AboutSection struct {
	Title     string `json:"title"`
	Intro     string `json:"intro"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	CoverURL  string `json:"coverUrl,omitempty"`
}

type ContactSection struct {
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	LinkedIn           string `json:"linkedin"`
	PreferredChannel   string `json:"preferredChannel,omitempty"`
	ExternalFormConfig string `json:"externalFormConfig,omitempty"`
}

type ResumeSection struct {
	FileURL     string `json:"fileUrl,omitempty"`
	FileDataURL string `json:"fileDataUrl,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	UploadedAt  string `json:"uploadedAt,omitempty"`
	Version     int    `json:"version,omitempty"`
}

// Project statuses
const (
	ProjectStatusDraft     = "draft"
	ProjectStatusPublished = "published"
	ProjectStatusArchived  = "archived"
)

// Project is one portfolio entry. It has no identity outside the
// SiteConfig that embeds it.
type Project struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	PreviewSrc string      `json:"previewSrc"`
	LiveURL    string      `json:"liveUrl,omitempty"`
	Alt        string      `json:"alt,omitempty"`
	Assets     []Asset     `json:"assets,omitempty"`
	CopyBlocks []CopyBlock `json:"copyBlocks,omitempty"`
	Tags       []string    `json:"tags,omitempty"`
	Status     string      `json:"status,omitempty"`
	Order      int         `json:"order,omitempty"`
	Visible    bool        `json:"visible"`
}

// Asset is one media item inside a project. At most one asset per
// project may be the cover.
type Asset struct {
	ID          string `json:"id"`
	Src         string `json:"src"`
	Alt         string `json:"alt,omitempty"`
	Caption     string `json:"caption,omitempty"`
	SizePercent int    `json:"sizePercent,omitempty"`
	IsCover     bool   `json:"isCover,omitempty"`
}

type CopyBlock struct {
	ID      string `json:"id"`
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body"`
}

// ConfigVersion identifies one immutable history snapshot, keyed by
// its write timestamp.
type ConfigVersion struct {
	Timestamp int64  `json:"timestamp"` // unix millis, identity
	Key       string `json:"key"`
	Size      int64  `json:"size"`
}

// MergeWithDefault merges cfg over def. Absent sections inherit the
// default wholesale; present sections merge field by field, so a
// partial section still renders with the default filling the gaps.
// Projects stay section-level: a non-nil slice wins even when empty,
// because an admin who deleted every project meant it.
func MergeWithDefault(cfg, def SiteConfig) SiteConfig {
	out := def
	if cfg.About != nil {
		out.About = mergeAbout(cfg.About, def.About)
	}
	if cfg.Projects != nil {
		out.Projects = cfg.Projects
	}
	if cfg.Contact != nil {
		out.Contact = mergeContact(cfg.Contact, def.Contact)
	}
	if cfg.Resume != nil {
		out.Resume = mergeResume(cfg.Resume, def.Resume)
	}
	return out
}

func mergeAbout(cfg, def *AboutSection) *AboutSection {
	out := AboutSection{}
	if def != nil {
		out = *def
	}
	if cfg.Title != "" {
		out.Title = cfg.Title
	}
	if cfg.Intro != "" {
		out.Intro = cfg.Intro
	}
	if cfg.AvatarURL != "" {
		out.AvatarURL = cfg.AvatarURL
	}
	if cfg.CoverURL != "" {
		out.CoverURL = cfg.CoverURL
	}
	return &out
}

func mergeContact(cfg, def *ContactSection) *ContactSection {
	out := ContactSection{}
	if def != nil {
		out = *def
	}
	if cfg.Email != "" {
		out.Email = cfg.Email
	}
	if cfg.Phone != "" {
		out.Phone = cfg.Phone
	}
	if cfg.LinkedIn != "" {
		out.LinkedIn = cfg.LinkedIn
	}
	if cfg.PreferredChannel != "" {
		out.PreferredChannel = cfg.PreferredChannel
	}
	if cfg.ExternalFormConfig != "" {
		out.ExternalFormConfig = cfg.ExternalFormConfig
	}
	return &out
}

func mergeResume(cfg, def *ResumeSection) *ResumeSection {
	out := ResumeSection{}
	if def != nil {
		out = *def
	}
	if cfg.FileURL != "" {
		out.FileURL = cfg.FileURL
	}
	if cfg.FileDataURL != "" {
		out.FileDataURL = cfg.FileDataURL
	}
	if cfg.FileName != "" {
		out.FileName = cfg.FileName
	}
	if cfg.UploadedAt != "" {
		out.UploadedAt = cfg.UploadedAt
	}
	if cfg.Version != 0 {
		out.Version = cfg.Version
	}
	return &out
}

// DefaultConfig is the compiled-in fallback rendered when neither the
// remote store nor a cached copy is available.
func DefaultConfig() SiteConfig {
	return SiteConfig{
		About: &AboutSection{
			Title: "Hi, I'm Katherine.",
			Intro: "UI/UX and Product Designer rooted in the New York City area, graduating from NYU next year. " +
				"My work blends creativity with strategy, and I'm always eager to collaborate on user-centered projects.",
		},
		Projects: []Project{
			{
				ID:         "p1",
				Title:      "Project 1",
				PreviewSrc: "/project-1.png",
				LiveURL:    "https://example.com/project-1",
				Alt:        "Project 1",
				Status:     ProjectStatusPublished,
				Order:      1,
				Visible:    true,
			},
			{
				ID:         "p2",
				Title:      "Project 2",
				PreviewSrc: "/project-2.png",
				LiveURL:    "https://example.com/project-2",
				Alt:        "Project 2",
				Status:     ProjectStatusPublished,
				Order:      2,
				Visible:    true,
			},
		},
		Contact: &ContactSection{
			Email:    "katherine77778@outlook.com",
			Phone:    "+1 857-272-1995",
			LinkedIn: "https://www.linkedin.com/in/katherine-fang-927523b338/",
		},
		Resume: &ResumeSection{
			FileURL: "/resume.pdf",
		},
	}
}

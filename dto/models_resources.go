package dto

import "time"

// Resource models mirroring the portfolio backend's JSON shapes.

type Project struct {
	ID          string   `json:"_id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tech        []string `json:"tech,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	RepoURL     string   `json:"repoUrl,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
	Order       int      `json:"order,omitempty"`
}

type Certificate struct {
	ID           string     `json:"_id,omitempty"`
	Title        string     `json:"title"`
	Issuer       string     `json:"issuer,omitempty"`
	IssuedAt     *time.Time `json:"issuedAt,omitempty"`
	CredentialID string     `json:"credentialId,omitempty"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	VerifyURL    string     `json:"verifyUrl,omitempty"`
}

type TimelineEntry struct {
	ID          string     `json:"_id,omitempty"`
	Title       string     `json:"title"`
	Company     string     `json:"company,omitempty"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Current     bool       `json:"current,omitempty"`
}

type Skill struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Level    int    `json:"level,omitempty"`
	IconURL  string `json:"iconUrl,omitempty"`
}

type AboutProfile struct {
	ID       string `json:"_id,omitempty"`
	Headline string `json:"headline,omitempty"`
	Bio      string `json:"bio,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
	Resume   string `json:"resumeUrl,omitempty"`
	Active   bool   `json:"active,omitempty"`
}

type ContactMessage struct {
	ID        string     `json:"_id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject,omitempty"`
	Body      string     `json:"message,omitempty"`
	Read      bool       `json:"read,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// UploadedAsset is the backend's record of a stored media file.
type UploadedAsset struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
	Format   string `json:"format,omitempty"`
	Bytes    int64  `json:"bytes,omitempty"`
	Folder   string `json:"folder,omitempty"`
}

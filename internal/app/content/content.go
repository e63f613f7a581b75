/*
Package content holds the platform's read-only catalog and the small amount of
visitor-generated community state.

This file defines the catalog types: motivational quotes, the resource library,
counselors with their booking availability, forum seed posts, the canned AI
response texts, mood check-in options, and the admin analytics snapshot. The
catalog itself is static fixture data; nothing here talks to a backend.
*/
package content

// Quote is a motivational quote shown on the landing and dashboard screens.
type Quote struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Resource is a single library item: a video, guide, or audio exercise.
type Resource struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	URL         string `json:"url"`
}

// ResourceCategory groups library items by concern.
type ResourceCategory struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Color       string     `json:"color"`
	Resources   []Resource `json:"resources"`
}

// Counselor is a bookable counselor profile. Availability maps an ISO date to
// the open time slots on that day.
type Counselor struct {
	ID             int                 `json:"id"`
	Name           string              `json:"name"`
	Specialization string              `json:"specialization"`
	Experience     string              `json:"experience"`
	Avatar         string              `json:"avatar"`
	Rating         float64             `json:"rating"`
	Availability   map[string][]string `json:"availability"`
	Bio            string              `json:"bio"`
}

// HasSlot reports whether the counselor offers the given time slot on the given date.
func (c Counselor) HasSlot(date, slot string) bool {
	for _, open := range c.Availability[date] {
		if open == slot {
			return true
		}
	}
	return false
}

// ForumPost is a peer-support forum entry.
type ForumPost struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Posted   string   `json:"timestamp"`
	Replies  int      `json:"replies"`
	Upvotes  int      `json:"upvotes"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
}

// SeverityResponses holds canned assistant texts graded by severity.
type SeverityResponses struct {
	Mild     string `json:"mild"`
	Moderate string `json:"moderate"`
	Severe   string `json:"severe"`
}

// StressResponses holds canned assistant texts for stress topics.
type StressResponses struct {
	Academic string `json:"academic"`
	General  string `json:"general"`
}

// AIResponses holds the canned assistant texts, including the greeting that
// seeds every chat transcript.
type AIResponses struct {
	Greeting   string            `json:"greeting"`
	Anxiety    SeverityResponses `json:"anxiety"`
	Depression SeverityResponses `json:"depression"`
	Stress     StressResponses   `json:"stress"`
	Crisis     string            `json:"crisis"`
}

// MoodOption is one point on the mood check-in scale.
type MoodOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// UserStats summarizes platform adoption for the admin screen.
type UserStats struct {
	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`
	NewSignups  int `json:"newSignups"`
	GuestUsers  int `json:"guestUsers"`
}

// StressLevel is a per-department stress reading.
type StressLevel struct {
	Department string  `json:"department"`
	Level      float64 `json:"level"`
	Trend      string  `json:"trend"`
}

// MonthlyDatum is one month of aggregate usage.
type MonthlyDatum struct {
	Month     string `json:"month"`
	Users     int    `json:"users"`
	Sessions  int    `json:"sessions"`
	Resources int    `json:"resources"`
}

// Alert is an attention item on the admin screen.
type Alert struct {
	ID         int    `json:"id"`
	Type       string `json:"type"`
	Department string `json:"department,omitempty"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Posted     string `json:"timestamp"`
}

// Analytics is the admin analytics snapshot.
type Analytics struct {
	UserStats    UserStats      `json:"userStats"`
	StressLevels []StressLevel  `json:"stressLevels"`
	MonthlyData  []MonthlyDatum `json:"monthlyData"`
	Alerts       []Alert        `json:"alerts"`
}

// Catalog bundles the static platform content.
type Catalog struct {
	Quotes             []Quote
	ResourceCategories []ResourceCategory
	Counselors         []Counselor
	SeedForumPosts     []ForumPost
	AIResponses        AIResponses
	MoodOptions        []MoodOption
	Analytics          Analytics
}

// NewCatalog returns the platform catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Quotes:             quotes,
		ResourceCategories: resourceCategories,
		Counselors:         counselors,
		SeedForumPosts:     seedForumPosts,
		AIResponses:        aiResponses,
		MoodOptions:        moodOptions,
		Analytics:          analytics,
	}
}

// CounselorByID looks up a counselor. The second return value reports whether
// the counselor exists.
func (c *Catalog) CounselorByID(id int) (Counselor, bool) {
	for _, counselor := range c.Counselors {
		if counselor.ID == id {
			return counselor, true
		}
	}
	return Counselor{}, false
}

// ValidMood reports whether the value is on the mood check-in scale.
func (c *Catalog) ValidMood(value int) bool {
	for _, option := range c.MoodOptions {
		if option.Value == value {
			return true
		}
	}
	return false
}

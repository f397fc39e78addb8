package domain

// Portfolio is the whole site as the admin dashboard edits it: one document
// assembled from every resource. Field names follow the dashboard, not the
// store; see internal/portfolio for the translation.
type Portfolio struct {
	Hero         HeroSection       `json:"hero"`
	About        AboutSection      `json:"about"`
	Experience   []Experience      `json:"experience"`
	Stats        []StatItem        `json:"stats"`
	Projects     []ProjectItem     `json:"projects"`
	Certificates []CertificateItem `json:"certificates"`
	Blogs        []BlogItem        `json:"blogs"`
	Contact      ContactInfo       `json:"contact"`
}

type HeroSection struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	CTAText  string `json:"ctaText"`
}

type AboutSection struct {
	ID     string   `json:"id,omitempty"`
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
}

type StatItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type ProjectItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	ImageURL    string   `json:"imageUrl"`
	DemoURL     string   `json:"demoUrl"`
	RepoURL     string   `json:"repoUrl"`
}

type CertificateItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}

type BlogItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	ReadTime string `json:"readTime"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

package entity

// Post is one published content entry. The slug doubles as the lookup key
// and the remote file name; it never changes once published.
type Post struct {
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Date      string   `json:"date"`
	UpdatedAt string   `json:"updated_at,omitempty"`
	Tags      []string `json:"tags"`
	Cover     string   `json:"cover,omitempty"`
	Content   string   `json:"content"`
	FileName  string   `json:"file_name"`
}

// RemoteFileRef addresses one file revision in the remote content store.
// An empty SHA means the file does not exist at that path/branch.
type RemoteFileRef struct {
	Path   string `json:"path"`
	Branch string `json:"branch"`
	SHA    string `json:"sha,omitempty"`
}

// TocItem is one heading extracted from a post body.
type TocItem struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

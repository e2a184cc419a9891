package entity

// Post is a writing entry. Date and ReadTime are display strings, never parsed.
type Post struct {
	Id       string   `json:"id" yaml:"id" validate:"required"`
	Title    string   `json:"title" yaml:"title"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	Content  string   `json:"content" yaml:"content"`
	Date     string   `json:"date" yaml:"date"`
	ReadTime string   `json:"readTime" yaml:"readTime"`
	Tags     []string `json:"tags" yaml:"tags"`
}

// Clone returns a copy that shares no backing array with p.
func (p Post) Clone() Post {
	out := p
	if p.Tags != nil {
		out.Tags = append(make([]string, 0, len(p.Tags)), p.Tags...)
	}
	return out
}

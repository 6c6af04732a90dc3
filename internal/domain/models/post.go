package model

type Post struct {
	ID      int64  `json:"id" yaml:"id"`
	Author  string `json:"author" yaml:"author"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// PostCollection is ordered by insertion, which is also display order.
type PostCollection []Post

func (c PostCollection) Clone() PostCollection {
	if c == nil {
		return PostCollection{}
	}
	cloned := make(PostCollection, len(c))
	copy(cloned, c)
	return cloned
}

package model

type Student struct {
	ID        int               `json:"id" yaml:"id"`
	Name      string            `json:"name" yaml:"name"`
	ClassYear string            `json:"classYear" yaml:"classYear"`
	Bio       string            `json:"bio" yaml:"bio"`
	Email     string            `json:"email" yaml:"email"`
	Phone     string            `json:"phone" yaml:"phone"`
	Social    map[string]string `json:"social" yaml:"social"`
	Avatar    string            `json:"avatar" yaml:"avatar"` // initials or an image reference
}
